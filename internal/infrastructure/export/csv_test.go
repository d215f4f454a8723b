package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeEmpty(t *testing.T) {
	assert.Equal(t, "", Encode(nil))
	assert.Equal(t, "", Encode([]Row{}))
}

func TestEncodeHeaderFromFirstRow(t *testing.T) {
	rows := []Row{
		{{Name: "id", Value: "p1"}, {Name: "name", Value: "Baguette"}},
		{{Name: "id", Value: "p2"}, {Name: "name", Value: "Croissant"}},
	}

	out := Encode(rows)
	assert.Equal(t, "id,name\n\"p1\",\"Baguette\"\n\"p2\",\"Croissant\"", out)
}

func TestEncodeValuesAreJSONEncoded(t *testing.T) {
	rows := []Row{
		{{Name: "name", Value: `Pain "spécial", 500g`}, {Name: "price", Value: 2.4}},
	}

	out := Encode(rows)
	// A comma inside a value stays inside its JSON string literal.
	assert.Equal(t, "name,price\n\"Pain \\\"spécial\\\", 500g\",2.4", out)
}

func TestEncodeNumbersAreBare(t *testing.T) {
	rows := []Row{
		{{Name: "quantite", Value: 3}, {Name: "prix_unitaire", Value: 1.3}},
	}

	out := Encode(rows)
	assert.Equal(t, "quantite,prix_unitaire\n3,1.3", out)
}

func TestEncodeAbsentFieldRendersEmptyString(t *testing.T) {
	rows := []Row{
		{{Name: "id", Value: "c1"}, {Name: "note", Value: "présente"}},
		{{Name: "id", Value: "c2"}},
	}

	out := Encode(rows)
	assert.Equal(t, "id,note\n\"c1\",\"présente\"\n\"c2\",\"\"", out)
}

func TestEncodeExtraFieldsIgnored(t *testing.T) {
	// Columns are fixed by the first row; later rows' extra fields drop.
	rows := []Row{
		{{Name: "id", Value: "e1"}},
		{{Name: "id", Value: "e2"}, {Name: "extra", Value: "x"}},
	}

	out := Encode(rows)
	assert.Equal(t, "id\n\"e1\"\n\"e2\"", out)
}
