package analytics

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"savora-be/internal/logger"
)

// DashboardStats is the platform-wide snapshot shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers       int64
	TotalRestaurants int64
	TotalOrders      int64
	TotalRevenue     float64
}

type Repository interface {
	DashboardStats(ctx context.Context) (DashboardStats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const dashboardStatsQuery = `
SELECT
  (SELECT COUNT(*) FROM users WHERE role <> 'ADMIN'),
  (SELECT COUNT(*) FROM restaurants),
  (SELECT COUNT(*) FROM orders),
  (SELECT COALESCE(SUM(total_amount), 0) FROM orders)`

func (r *repository) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var s DashboardStats
	err := r.db.QueryRowContext(ctx, dashboardStatsQuery).
		Scan(&s.TotalUsers, &s.TotalRestaurants, &s.TotalOrders, &s.TotalRevenue)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load dashboard stats", zap.Error(err))
		return DashboardStats{}, err
	}
	return s, nil
}
