package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderID(t *testing.T) {
	assert.Equal(t, "ABC-DEF", OrderID("abcdef", 3))
	assert.Equal(t, "ABC-DEF", OrderID("abc-def", 3))
	assert.Equal(t, "ABC-DEF", OrderID("  a b!c@d#e$f  ", 3))
	assert.Equal(t, "ABCD-EF", OrderID("abcdef", 4))
	assert.Equal(t, "AB", OrderID("ab", 3))
	assert.Equal(t, "ABC", OrderID("abc", 3))
	assert.Equal(t, "", OrderID("---", 3))

	// zero/negative prefix falls back to the default
	assert.Equal(t, "ABC-DEF", OrderID("abcdef", 0))
}

func TestValidOrderID(t *testing.T) {
	assert.True(t, ValidOrderID("ABC-DEF"))
	assert.True(t, ValidOrderID(" ABCD-12 "))
	assert.False(t, ValidOrderID("abc-def"))
	assert.False(t, ValidOrderID("ABCDEF"))
	assert.False(t, ValidOrderID("ABC-"))
	assert.False(t, ValidOrderID(""))
}

func TestPriceInput(t *testing.T) {
	assert.Equal(t, "12.34", PriceInput("12.34"))
	assert.Equal(t, "12.34", PriceInput("$12.34"))
	assert.Equal(t, "12.34", PriceInput("1a2.3b4"))
	assert.Equal(t, "12.34", PriceInput("12.345"))
	assert.Equal(t, "12.34", PriceInput("12.3.4"))
	assert.Equal(t, "12.", PriceInput("12."))
	assert.Equal(t, "", PriceInput("abc"))
	assert.Equal(t, "", PriceInput(""))
}

func TestPriceBlur(t *testing.T) {
	assert.Equal(t, "12.30", PriceBlur("12.3"))
	assert.Equal(t, "0.00", PriceBlur("-5"))
	assert.Equal(t, "0.00", PriceBlur("abc"))
	assert.Equal(t, "0.00", PriceBlur(""))
	assert.Equal(t, "7.00", PriceBlur("7"))
}

func TestPrice(t *testing.T) {
	assert.Equal(t, 12.34, Price("12.34"))
	assert.Equal(t, 12.35, Price("12.345"))
	assert.Equal(t, 0.0, Price("-1"))
	assert.Equal(t, 0.0, Price("NaN"))
	assert.Equal(t, 0.0, Price("+Inf"))
	assert.Equal(t, 0.0, Price(""))
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, 3, Quantity("3"))
	assert.Equal(t, 3, Quantity(" 3 "))
	assert.Equal(t, 3, Quantity("3.9"))
	assert.Equal(t, 0, Quantity(""))
	assert.Equal(t, 0, Quantity("-5"))
	assert.Equal(t, 0, Quantity("abc"))
	assert.Equal(t, 0, Quantity("NaN"))
}

func TestCheckSKUs(t *testing.T) {
	assert.Empty(t, CheckSKUs([]string{"A1", "B2"}))

	errs := CheckSKUs([]string{"A1", "a1", "", "A1"})
	assert.Len(t, errs, 3) // lowercase, missing, duplicate
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("fern@example.com"))
	assert.False(t, ValidEmail("fern@example"))
	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("a b@c.d"))
}
