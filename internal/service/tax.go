package service

import (
	"strings"

	"github.com/northcart/northcart/internal/models"

	"github.com/shopspring/decimal"
)

const defaultTaxRate = "0.05"

// TaxLineInput is one product line fed into the tax calculator.
type TaxLineInput struct {
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
	Taxable   bool
}

// PricedLine carries the per-line money snapshots stored on a cart item.
type PricedLine struct {
	ProductID     uint
	Quantity      int
	PurchasePrice models.Money
	PriceWithTax  models.Money
	TotalPrice    models.Money
	TotalTax      models.Money
}

// OrderTaxResult aggregates tax over an order's lines.
type OrderTaxResult struct {
	Lines        []PricedLine
	TotalTax     models.Money
	TotalWithTax models.Money
}

// TaxCalculator applies a flat sales tax rate to taxable products. It is
// pure: no clock, no I/O, same input same output. Arithmetic stays at full
// decimal precision; rounding happens exactly once, at the Money boundary.
type TaxCalculator struct {
	rate decimal.Decimal
}

// NewTaxCalculator parses the configured rate, falling back to the default
// when the value is empty or malformed.
func NewTaxCalculator(rate string) *TaxCalculator {
	parsed, err := decimal.NewFromString(strings.TrimSpace(rate))
	if err != nil || parsed.IsNegative() {
		parsed, _ = decimal.NewFromString(defaultTaxRate)
	}
	return &TaxCalculator{rate: parsed}
}

// Rate returns the active tax rate.
func (c *TaxCalculator) Rate() decimal.Decimal {
	return c.rate
}

// PriceLine prices a single line. Non-taxable products carry zero tax and a
// priceWithTax equal to the bare price.
func (c *TaxCalculator) PriceLine(input TaxLineInput) PricedLine {
	qty := decimal.NewFromInt(int64(input.Quantity))
	line := PricedLine{
		ProductID:     input.ProductID,
		Quantity:      input.Quantity,
		PurchasePrice: models.NewMoneyFromDecimal(input.Price),
		PriceWithTax:  models.NewMoneyFromDecimal(input.Price),
		TotalPrice:    models.NewMoneyFromDecimal(input.Price.Mul(qty)),
		TotalTax:      models.NewMoneyFromDecimal(decimal.Zero),
	}
	if !input.Taxable {
		return line
	}
	tax := input.Price.Mul(c.rate)
	line.PriceWithTax = models.NewMoneyFromDecimal(input.Price.Add(tax))
	line.TotalTax = models.NewMoneyFromDecimal(tax.Mul(qty))
	return line
}

// PriceLines prices every line independently.
func (c *TaxCalculator) PriceLines(inputs []TaxLineInput) []PricedLine {
	lines := make([]PricedLine, 0, len(inputs))
	for _, input := range inputs {
		lines = append(lines, c.PriceLine(input))
	}
	return lines
}

// ApplyOrderTax prices the lines and totals tax across the order. Totals
// accumulate on raw decimals and round once at the end.
func (c *TaxCalculator) ApplyOrderTax(inputs []TaxLineInput) OrderTaxResult {
	result := OrderTaxResult{Lines: make([]PricedLine, 0, len(inputs))}
	totalTax := decimal.Zero
	totalWithTax := decimal.Zero
	for _, input := range inputs {
		qty := decimal.NewFromInt(int64(input.Quantity))
		lineTotal := input.Price.Mul(qty)
		if input.Taxable {
			lineTax := input.Price.Mul(c.rate).Mul(qty)
			totalTax = totalTax.Add(lineTax)
			totalWithTax = totalWithTax.Add(lineTotal).Add(lineTax)
		} else {
			totalWithTax = totalWithTax.Add(lineTotal)
		}
		result.Lines = append(result.Lines, c.PriceLine(input))
	}
	result.TotalTax = models.NewMoneyFromDecimal(totalTax)
	result.TotalWithTax = models.NewMoneyFromDecimal(totalWithTax)
	return result
}
