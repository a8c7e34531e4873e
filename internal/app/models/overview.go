package models

import "github.com/shopspring/decimal"

// QuickStat is one line of the sidebar overview block.
type QuickStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}

type InvoiceTotals struct {
	MonthRevenue    decimal.Decimal
	PendingInvoices int
	PaidInvoices    int
}
