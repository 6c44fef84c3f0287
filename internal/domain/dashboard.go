package domain

import "github.com/shopspring/decimal"

// DashboardStats summarizes the business state for the landing page.
type DashboardStats struct {
	TotalProducts  int
	LowStockCount  int
	TotalCustomers int
	OpenInvoices   int
	TotalRevenue   decimal.Decimal
	LowStock       []Product
	RecentInvoices []Invoice
}
