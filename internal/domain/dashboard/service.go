package dashboard

import "context"

// DashboardService aggregates ledger, inventory and directory figures
type DashboardService interface {
	// GetStats computes the landing-page statistics as of "now"
	GetStats(ctx context.Context) (StatsResponse, error)
}
