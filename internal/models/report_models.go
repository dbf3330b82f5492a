package models

// ProductSales is one row of the top-products ranking.
type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DashboardOverview holds the key metrics for the overview section.
type DashboardOverview struct {
	TodaySales     float64        `json:"today_sales"`
	TodayOrders    int            `json:"today_orders"`
	OccupiedTables int            `json:"occupied_tables"`
	TotalTables    int            `json:"total_tables"`
	ActiveStaff    int            `json:"active_staff"`
	TopProducts    []ProductSales `json:"top_products"`
}

// SalesReport holds the sales-section figures: the per-method breakdown,
// the cash drawer totals, and the order list sorted most recent first.
type SalesReport struct {
	RegisterOpen  bool    `json:"register_open"`
	InitialCash   float64 `json:"initial_cash"`
	CashSales     float64 `json:"cash_sales"`
	CardSales     float64 `json:"card_sales"`
	TransferSales float64 `json:"transfer_sales"`
	TotalCash     float64 `json:"total_cash"` // initial amount plus cash sales
	Orders        []Order `json:"orders"`
}

// MenuCategory groups remote products under one category label, preserving
// the order categories were first encountered in.
type MenuCategory struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}
