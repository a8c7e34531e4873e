package overview

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const invoiceCountKey = "%d facture(s)"

var frenchPrinter = newFrenchPrinter()

func newFrenchPrinter() *message.Printer {
	cat := catalog.NewBuilder()
	if err := cat.Set(language.French, invoiceCountKey, plural.Selectf(1, "%d",
		plural.One, "%d facture",
		plural.Other, "%d factures",
	)); err != nil {
		panic(err)
	}
	return message.NewPrinter(language.French, message.Catalog(cat))
}

var maxGrouped = decimal.NewFromInt(math.MaxInt64)

// FormatEuros renders an amount the French way, dropping cents on whole values.
// Amounts past int64 keep their digits but lose thousands grouping.
func FormatEuros(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	whole := rounded.Truncate(0)
	units := whole.String()
	if whole.LessThanOrEqual(maxGrouped) {
		units = frenchPrinter.Sprintf("%d", whole.IntPart())
	}
	if rounded.Equal(whole) {
		return sign + units + " €"
	}
	cents := rounded.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s%s,%02d €", sign, units, cents)
}

// FormatInvoiceCount pluralises with French rules: 0 and 1 are singular.
func FormatInvoiceCount(n int) string {
	return frenchPrinter.Sprintf(invoiceCountKey, n)
}
