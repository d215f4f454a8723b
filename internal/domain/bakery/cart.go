package bakery

// CartLine is a (product, quantity) pairing in the current transaction.
// The cart holds at most one line per product.
type CartLine struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"qty"`
}

// Cart is the current transaction's line list.
type Cart []CartLine

// Add increments the quantity of an existing line or appends a new line
// with quantity 1. Unknown product IDs are accepted; a line referencing a
// product missing from the catalog simply contributes nothing to totals.
func (c *Cart) Add(productID string) {
	for i := range *c {
		if (*c)[i].ProductID == productID {
			(*c)[i].Quantity++
			return
		}
	}
	*c = append(*c, CartLine{ProductID: productID, Quantity: 1})
}

// Remove deletes the line for the given product. Removing an absent
// product is a no-op.
func (c *Cart) Remove(productID string) {
	out := (*c)[:0]
	for _, line := range *c {
		if line.ProductID != productID {
			out = append(out, line)
		}
	}
	*c = out
}

// Clear empties the cart.
func (c *Cart) Clear() {
	*c = Cart{}
}

// Quantity returns the quantity of the given product in the cart, 0 when
// the product has no line.
func (c Cart) Quantity(productID string) int {
	for _, line := range c {
		if line.ProductID == productID {
			return line.Quantity
		}
	}
	return 0
}
