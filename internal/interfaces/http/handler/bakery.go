package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	bakeryapp "github.com/comptoir/backend/internal/application/bakery"
)

// BakeryHandler exposes the till: catalog, cart, rates, receipt and
// exports.
type BakeryHandler struct {
	BaseHandler
	service *bakeryapp.Service
}

// NewBakeryHandler creates a new BakeryHandler
func NewBakeryHandler(service *bakeryapp.Service) *BakeryHandler {
	return &BakeryHandler{service: service}
}

// RegisterRoutes registers bakery routes
func (h *BakeryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bakery := rg.Group("/bakery")
	{
		bakery.GET("/products", h.ListProducts)
		bakery.POST("/products", h.CreateProduct)
		bakery.POST("/products/import", h.ImportProducts)
		bakery.GET("/products/export", h.ExportProducts)

		bakery.GET("/cart", h.GetCart)
		bakery.POST("/cart/items", h.AddToCart)
		bakery.DELETE("/cart/items/:productId", h.RemoveFromCart)
		bakery.DELETE("/cart", h.ClearCart)
		bakery.GET("/cart/export", h.ExportCart)

		bakery.GET("/rates", h.GetRates)
		bakery.PUT("/rates", h.UpdateRates)

		bakery.GET("/totals", h.GetTotals)
		bakery.GET("/receipt", h.GetReceiptText)
		bakery.GET("/receipt/pdf", h.GetReceiptPDF)
		bakery.GET("/receipt/print", h.GetReceiptPrintView)
	}
}

// ListProducts returns the catalog, optionally filtered by ?search=
func (h *BakeryHandler) ListProducts(c *gin.Context) {
	h.Success(c, h.service.Catalog(c.Request.Context(), c.Query("search")))
}

// CreateProduct adds a product to the catalog
func (h *BakeryHandler) CreateProduct(c *gin.Context) {
	var req bakeryapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.service.AddProduct(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// ImportProducts replaces the catalog with a JSON array payload
func (h *BakeryHandler) ImportProducts(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.BadRequest(c, "Failed to read request body")
		return
	}

	count, err := h.service.ImportCatalog(c.Request.Context(), raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"imported": count})
}

// ExportProducts downloads the catalog as produits.csv
func (h *BakeryHandler) ExportProducts(c *gin.Context) {
	h.CSV(c, "produits.csv", h.service.ExportCatalogCSV(c.Request.Context()))
}

// GetCart returns the cart with its totals
func (h *BakeryHandler) GetCart(c *gin.Context) {
	h.Success(c, h.service.Cart(c.Request.Context()))
}

// AddToCart adds one unit of a product to the cart
func (h *BakeryHandler) AddToCart(c *gin.Context) {
	var req bakeryapp.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	h.service.AddToCart(c.Request.Context(), req.ProductID)
	h.Success(c, h.service.Cart(c.Request.Context()))
}

// RemoveFromCart removes a product's line from the cart
func (h *BakeryHandler) RemoveFromCart(c *gin.Context) {
	h.service.RemoveFromCart(c.Request.Context(), c.Param("productId"))
	h.Success(c, h.service.Cart(c.Request.Context()))
}

// ClearCart empties the cart
func (h *BakeryHandler) ClearCart(c *gin.Context) {
	h.service.ClearCart(c.Request.Context())
	h.NoContent(c)
}

// ExportCart downloads the cart as panier.csv
func (h *BakeryHandler) ExportCart(c *gin.Context) {
	h.CSV(c, "panier.csv", h.service.ExportCartCSV(c.Request.Context()))
}

// GetRates returns the tax configuration
func (h *BakeryHandler) GetRates(c *gin.Context) {
	h.Success(c, h.service.Rates(c.Request.Context()))
}

// UpdateRates replaces the tax configuration
func (h *BakeryHandler) UpdateRates(c *gin.Context) {
	var req bakeryapp.UpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	rates, err := h.service.UpdateRates(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rates)
}

// GetTotals returns the derived totals of the current cart
func (h *BakeryHandler) GetTotals(c *gin.Context) {
	h.Success(c, h.service.Totals(c.Request.Context()))
}

// GetReceiptText returns the receipt as plain text
func (h *BakeryHandler) GetReceiptText(c *gin.Context) {
	c.Data(200, "text/plain; charset=utf-8", []byte(h.service.ReceiptText(c.Request.Context())))
}

// GetReceiptPDF downloads the receipt as ticket.pdf
func (h *BakeryHandler) GetReceiptPDF(c *gin.Context) {
	data, err := h.service.ReceiptPDF(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.PDF(c, "ticket.pdf", data)
}

// GetReceiptPrintView returns an HTML page that opens the browser print
// dialog on load
func (h *BakeryHandler) GetReceiptPrintView(c *gin.Context) {
	html := h.service.ReceiptPrintView(c.Request.Context())
	c.Data(200, "text/html; charset=utf-8", []byte(html))
}
