package entities

// AggregateSnapshot is the derived summary of the current order store. It is
// never stored: every read recomputes it in full from the live collection.
//
// Averages are zero (not NaN) when TotalOrders is zero, and the maps are
// always non-nil so an empty store serializes as {} rather than null.
type AggregateSnapshot struct {
	TotalOrders       int     `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalProductSales float64 `json:"total_product_sales"`
	TotalDeliveryCost float64 `json:"total_delivery_cost"`
	AvgOrderValue     float64 `json:"avg_order_value"`
	AvgDeliveryCost   float64 `json:"avg_delivery_cost"`
	NetRevenue        float64 `json:"net_revenue"`

	CountByStatus   map[OrderStatus]int     `json:"count_by_status"`
	RevenueByStatus map[OrderStatus]float64 `json:"revenue_by_status"`

	// RevenueByDay has one point per distinct calendar day present in the
	// store, in the order the days first appear when iterating the
	// collection. It is deliberately not sorted chronologically.
	RevenueByDay []RevenuePoint `json:"revenue_by_day"`
}

// RevenuePoint is one calendar-day bucket of the revenue series.
type RevenuePoint struct {
	Day     string  `json:"day"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// PeriodStats is one aggregation window of the upstream dashboard payload.
type PeriodStats struct {
	TotalOrders       int          `json:"totalOrders"`
	TotalRevenue      float64      `json:"totalRevenue"`
	TotalProductSales float64      `json:"totalProductSales"`
	TotalDeliveryCost float64      `json:"totalDeliveryCost"`
	AvgOrderValue     float64      `json:"avgOrderValue"`
	CountByStatus     StatusCounts `json:"countByStatus"`
}

// StatusCounts mirrors the upstream's fixed per-status count object.
type StatusCounts struct {
	New        int `json:"new"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

// TopProduct is one entry of the upstream best-sellers ranking.
type TopProduct struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	TotalRevenue float64 `json:"totalRevenue"`
	ImageURL     string  `json:"imageUrl"`
}

// SalesPoint is one period of the upstream recent-sales series.
type SalesPoint struct {
	Period  string  `json:"period"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// AnalyticsData is the upstream dashboard analytics payload, passed through
// to the dashboard as-is.
type AnalyticsData struct {
	AllTime     PeriodStats  `json:"allTime"`
	Recent      PeriodStats  `json:"recent"`
	TopProducts []TopProduct `json:"topProducts"`
	RecentSales []SalesPoint `json:"recentSales"`
}
