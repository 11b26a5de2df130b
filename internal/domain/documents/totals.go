package documents

import (
	"github.com/shopspring/decimal"

	"docukit/internal/core/types"
)

// grandTotalWordsSentinel stands in for spelled-out amounts; spelling-out is
// handled by a downstream localization step.
const grandTotalWordsSentinel = "[Amount in words not generated]"

var hundred = decimal.NewFromInt(100)

// Totals is the result of the subtotal -> discount -> VAT -> grand total
// chain. All values keep full decimal precision.
type Totals struct {
	Subtotal       types.Money
	DiscountAmount types.Money
	AfterDiscount  types.Money
	VATAmount      types.Money
	GrandTotal     types.Money
}

// ComputeTotals applies the caller-supplied discount and VAT rates to a
// subtotal. Discount applies before VAT. Negative rates pass through
// unclamped.
func ComputeTotals(subtotal types.Money, discountRatePercent, vatRatePercent float64) Totals {
	discountRate := decimal.NewFromFloat(discountRatePercent).Div(hundred)
	vatRate := decimal.NewFromFloat(vatRatePercent).Div(hundred)

	discountAmount := subtotal.Mul(discountRate)
	afterDiscount := subtotal.Sub(discountAmount)
	vatAmount := afterDiscount.Mul(vatRate)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discountAmount,
		AfterDiscount:  afterDiscount,
		VATAmount:      vatAmount,
		GrandTotal:     afterDiscount.Add(vatAmount),
	}
}

// applyTotals writes raw and formatted totals into the doc context.
func applyTotals(doc *DocContext, t Totals) {
	symbol := doc.CurrencySymbol

	doc.SubtotalAmount = types.FormatMoney(t.Subtotal, symbol, 2)
	doc.DiscountAmount = types.FormatMoney(t.DiscountAmount, symbol, 2)
	doc.VATAmount = types.FormatMoney(t.VATAmount, symbol, 2)
	doc.GrandTotalAmount = types.FormatMoney(t.GrandTotal, symbol, 2)

	doc.RawSubtotalAmount = t.Subtotal.InexactFloat64()
	doc.RawDiscountAmount = t.DiscountAmount.InexactFloat64()
	doc.RawVATAmount = t.VATAmount.InexactFloat64()
	doc.RawGrandTotalAmount = t.GrandTotal.InexactFloat64()

	doc.GrandTotalAmountWords = grandTotalWordsSentinel
}
