package dashboard

type TopProduct struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Total       string `json:"total"`
}

type StatsResponse struct {
	TotalSalesToday string       `json:"total_sales_today"`
	TotalSalesWeek  string       `json:"total_sales_week"`
	TotalSalesMonth string       `json:"total_sales_month"`
	LowStockItems   int          `json:"low_stock_items"`
	ActiveEmployees int          `json:"active_employees"`
	TopProducts     []TopProduct `json:"top_products"`
}
