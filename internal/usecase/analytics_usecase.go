package usecase

import (
	"context"

	"tienda_admin/internal/domain/entities"
	"tienda_admin/internal/session"
	"tienda_admin/internal/usecase/interfaces"
)

// dayLayout is the calendar-day bucket key of the revenue series.
const dayLayout = "2006-01-02"

// Aggregate computes the dashboard summary for a collection of orders.
//
// It is a pure, total function: no side effects, no external calls, and an
// empty collection yields a zeroed snapshot with empty (non-nil) maps and
// zero averages rather than NaN.
//
// The revenue series buckets by calendar day in the order days first appear
// in the input, matching how the store iterates. It is intentionally not
// re-sorted chronologically.
func Aggregate(orders []entities.Order) entities.AggregateSnapshot {
	snap := entities.AggregateSnapshot{
		CountByStatus:   map[entities.OrderStatus]int{},
		RevenueByStatus: map[entities.OrderStatus]float64{},
		RevenueByDay:    []entities.RevenuePoint{},
	}

	dayIndex := map[string]int{}
	for _, o := range orders {
		snap.TotalOrders++
		snap.TotalRevenue += o.Payment.Total
		snap.TotalProductSales += o.Payment.ProductPrice
		snap.TotalDeliveryCost += o.Payment.DeliveryCost
		snap.CountByStatus[o.Status]++
		snap.RevenueByStatus[o.Status] += o.Payment.Total

		day := o.CreatedAt.Format(dayLayout)
		i, ok := dayIndex[day]
		if !ok {
			i = len(snap.RevenueByDay)
			dayIndex[day] = i
			snap.RevenueByDay = append(snap.RevenueByDay, entities.RevenuePoint{Day: day})
		}
		snap.RevenueByDay[i].Count++
		snap.RevenueByDay[i].Revenue += o.Payment.Total
	}

	if snap.TotalOrders > 0 {
		snap.AvgOrderValue = snap.TotalRevenue / float64(snap.TotalOrders)
		snap.AvgDeliveryCost = snap.TotalDeliveryCost / float64(snap.TotalOrders)
	}
	snap.NetRevenue = snap.TotalRevenue - snap.TotalDeliveryCost

	return snap
}

// IAnalyticsUseCase serves both analytics sources of the dashboard: the
// locally aggregated store summary and the upstream's precomputed payload.
type IAnalyticsUseCase interface {
	LocalSummary(ctx context.Context) entities.AggregateSnapshot
	Dashboard(ctx context.Context) (entities.AnalyticsData, error)
}

type AnalyticsUseCase struct {
	repo     interfaces.IOrderRepository
	gateway  interfaces.ISyncGateway
	sessions *session.Manager
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(repo interfaces.IOrderRepository, gateway interfaces.ISyncGateway, sessions *session.Manager) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo, gateway: gateway, sessions: sessions}
}

// LocalSummary recomputes the aggregate snapshot from the live store. Never
// cached, never incrementally maintained.
func (u *AnalyticsUseCase) LocalSummary(ctx context.Context) entities.AggregateSnapshot {
	return Aggregate(u.repo.Snapshot())
}

// Dashboard fetches the upstream dashboard analytics for the active session.
func (u *AnalyticsUseCase) Dashboard(ctx context.Context) (entities.AnalyticsData, error) {
	token := u.sessions.Token()
	if token == "" {
		return entities.AnalyticsData{}, ErrNoActiveSession
	}
	return u.gateway.DashboardAnalytics(ctx, token)
}
