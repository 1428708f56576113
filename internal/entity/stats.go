package entity

// AdminStats is the business-wide dashboard rollup. Always computed fresh.
type AdminStats struct {
	TotalEmployees   int   `json:"total_employees"`
	ActiveEmployees  int   `json:"active_employees"`
	TotalCustomers   int   `json:"total_customers"`
	TotalOrders      int   `json:"total_orders"`
	TotalPrices      int   `json:"total_prices"`
	TodayOrders      int   `json:"today_orders"`
	TodayRevenue     int64 `json:"today_revenue"`
	PendingOrders    int   `json:"pending_orders"`
	ProcessingOrders int   `json:"processing_orders"`
	CompletedOrders  int   `json:"completed_orders"`
	TotalRevenue     int64 `json:"total_revenue"`
	MonthRevenue     int64 `json:"month_revenue"`
}

// EmployeeDashboard is the rollup scoped to one employee's own records.
type EmployeeDashboard struct {
	MyCustomers      int   `json:"my_customers"`
	MyOrders         int   `json:"my_orders"`
	TodayOrders      int   `json:"today_orders"`
	TodayRevenue     int64 `json:"today_revenue"`
	PendingOrders    int   `json:"pending_orders"`
	ProcessingOrders int   `json:"processing_orders"`
	CompletedOrders  int   `json:"completed_orders"`
}
