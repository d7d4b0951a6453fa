package repository

import (
	"context"

	"github.com/ovenlight/bakeshop/internal/domain/model"
)

// StatsRepository aggregates dashboard counters.
type StatsRepository interface {
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
}
