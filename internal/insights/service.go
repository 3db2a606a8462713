package insights

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Range is the inclusive civil-date interval every aggregator call takes.
type Range struct {
	Start time.Time
	End   time.Time
}

// Bounds reports the valid filter range established during normalization.
type Bounds struct {
	MinDate time.Time `json:"min_date"`
	MaxDate time.Time `json:"max_date"`
}

// Overview bundles every derived table for one range in a single response.
type Overview struct {
	DailyOrders   []DailyOrders      `json:"daily_orders"`
	CustomerSpend []DailySpend       `json:"customer_spend"`
	Categories    []CategoryVolume   `json:"categories"`
	Reviews       ReviewDistribution `json:"reviews"`
	States        GeoBreakdown       `json:"states"`
	Cities        GeoBreakdown       `json:"cities"`
	Statuses      StatusBreakdown    `json:"statuses"`
}

// Service exposes one entry point per aggregator plus the table bounds.
// Every derived table is recomputed per call from the immutable normalized
// table; nothing is retained between invocations.
type Service interface {
	Bounds() Bounds
	DailyOrders(ctx context.Context, rng Range) ([]DailyOrders, error)
	CustomerSpend(ctx context.Context, rng Range) ([]DailySpend, error)
	Categories(ctx context.Context, rng Range) ([]CategoryVolume, error)
	Reviews(ctx context.Context, rng Range) (ReviewDistribution, error)
	CustomersByState(ctx context.Context, rng Range) (GeoBreakdown, error)
	CustomersByCity(ctx context.Context, rng Range) (GeoBreakdown, error)
	Statuses(ctx context.Context, rng Range) (StatusBreakdown, error)
	Overview(ctx context.Context, rng Range) (*Overview, error)
}

type service struct {
	table *Table
}

// NewService wraps a normalized table.
func NewService(table *Table) (Service, error) {
	if table == nil {
		return nil, fmt.Errorf("normalized table required")
	}
	return &service{table: table}, nil
}

func (s *service) Bounds() Bounds {
	return Bounds{MinDate: s.table.MinDate, MaxDate: s.table.MaxDate}
}

func (s *service) DailyOrders(_ context.Context, rng Range) ([]DailyOrders, error) {
	filtered, err := s.filtered(rng)
	if err != nil {
		return nil, err
	}
	return DailyOrdersRevenue(filtered), nil
}

func (s *service) CustomerSpend(_ context.Context, rng Range) ([]DailySpend, error) {
	filtered, err := s.filtered(rng)
	if err != nil {
		return nil, err
	}
	return DailyCustomerSpend(filtered), nil
}

func (s *service) Categories(_ context.Context, rng Range) ([]CategoryVolume, error) {
	filtered, err := s.filtered(rng)
	if err != nil {
		return nil, err
	}
	return CategoryVolumes(filtered), nil
}

func (s *service) Reviews(_ context.Context, rng Range) (ReviewDistribution, error) {
	filtered, err := s.filtered(rng)
	if err != nil {
		return ReviewDistribution{}, err
	}
	return ReviewScores(filtered), nil
}

func (s *service) CustomersByState(_ context.Context, rng Range) (GeoBreakdown, error) {
	filtered, err := s.filtered(rng)
	if err != nil {
		return GeoBreakdown{}, err
	}
	return CustomersByState(filtered), nil
}

func (s *service) CustomersByCity(_ context.Context, rng Range) (GeoBreakdown, error) {
	filtered, err := s.filtered(rng)
	if err != nil {
		return GeoBreakdown{}, err
	}
	return CustomersByCity(filtered), nil
}

func (s *service) Statuses(_ context.Context, rng Range) (StatusBreakdown, error) {
	filtered, err := s.filtered(rng)
	if err != nil {
		return StatusBreakdown{}, err
	}
	return OrderStatuses(filtered), nil
}

// Overview runs every aggregator against one filtered table. The aggregators
// are independent pure functions over an immutable input, so they fan out
// without locking.
func (s *service) Overview(ctx context.Context, rng Range) (*Overview, error) {
	filtered, err := s.filtered(rng)
	if err != nil {
		return nil, err
	}

	var out Overview
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		out.DailyOrders = DailyOrdersRevenue(filtered)
		return nil
	})
	g.Go(func() error {
		out.CustomerSpend = DailyCustomerSpend(filtered)
		return nil
	})
	g.Go(func() error {
		out.Categories = CategoryVolumes(filtered)
		return nil
	})
	g.Go(func() error {
		out.Reviews = ReviewScores(filtered)
		return nil
	})
	g.Go(func() error {
		out.States = CustomersByState(filtered)
		return nil
	})
	g.Go(func() error {
		out.Cities = CustomersByCity(filtered)
		return nil
	})
	g.Go(func() error {
		out.Statuses = OrderStatuses(filtered)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) filtered(rng Range) (*Table, error) {
	return FilterRange(s.table, rng.Start, rng.End)
}
