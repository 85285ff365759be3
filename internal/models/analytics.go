package models

// HourlyBucket is one bar of the orders-by-hour chart. Hour is a 12-hour
// label such as "9AM" or "2PM".
type HourlyBucket struct {
	Hour   string `json:"hour"`
	Orders int    `json:"orders"`
}

// OrderAnalytics is the dashboard aggregate. It is derived on every refresh
// and never persisted.
type OrderAnalytics struct {
	TodayRevenue               float64        `json:"todayRevenue"`
	PreviousMonthRevenue       float64        `json:"previousMonthRevenue"`
	MonthlyRevenue             float64        `json:"monthlyRevenue"`
	TodayOrders                int            `json:"todayOrders"`
	MonthlyOrders              int            `json:"monthlyOrders"`
	TodayTransactions          int            `json:"todayTransactions"`
	MonthlyTransactions        int            `json:"monthlyTransactions"`
	TopSellingItem             string         `json:"topSellingItem"`
	TopSellingItemCount        int            `json:"topSellingItemCount"`
	MonthlyTopSellingItem      string         `json:"monthlyTopSellingItem"`
	MonthlyTopSellingItemCount int            `json:"monthlyTopSellingItemCount"`
	HourlyOrders               []HourlyBucket `json:"hourlyOrders"`
}
