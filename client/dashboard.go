package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

type DashboardAPI struct {
	c *Client
}

// Card is one dashboard panel: its data or the error that kept it empty.
type Card[T any] struct {
	Data T
	Err  error
}

type Dashboard struct {
	Stats        Card[models.DashboardStats]
	RecentOrders Card[[]models.RecentOrder]
	TopProducts  Card[[]models.TopProduct]
}

// Err joins the card errors. Nil when every card loaded.
func (d Dashboard) Err() error {
	return errors.Join(d.Stats.Err, d.RecentOrders.Err, d.TopProducts.Err)
}

// Load fetches the three cards in parallel. A failing card never blanks the
// others.
func (a *DashboardAPI) Load(ctx context.Context, limit int) Dashboard {
	var (
		d Dashboard
		g errgroup.Group
	)
	g.Go(func() error {
		d.Stats.Data, d.Stats.Err = a.Stats(ctx)
		return nil
	})
	g.Go(func() error {
		d.RecentOrders.Data, d.RecentOrders.Err = a.RecentOrders(ctx, limit)
		return nil
	})
	g.Go(func() error {
		d.TopProducts.Data, d.TopProducts.Err = a.TopProducts(ctx, limit)
		return nil
	})
	_ = g.Wait()
	return d
}

func (a *DashboardAPI) Stats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	env, err := a.c.do(ctx, http.MethodGet, "/admin/dashboard/stats", nil)
	if err != nil {
		return stats, err
	}
	raw, ok := env.object("stats")
	if !ok {
		return stats, fmt.Errorf("dashboard stats: response carried no stats")
	}
	if err := json.Unmarshal(raw, &stats); err != nil {
		return stats, fmt.Errorf("dashboard stats: %w", err)
	}
	return stats, nil
}

func (a *DashboardAPI) RecentOrders(ctx context.Context, limit int) ([]models.RecentOrder, error) {
	return dashboardList[models.RecentOrder](ctx, a.c, "/admin/dashboard/recent-orders", limit, "orders")
}

func (a *DashboardAPI) TopProducts(ctx context.Context, limit int) ([]models.TopProduct, error) {
	return dashboardList[models.TopProduct](ctx, a.c, "/admin/dashboard/top-products", limit, "products")
}

func dashboardList[T any](ctx context.Context, c *Client, path string, limit int, key string) ([]T, error) {
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeAll(env.list(key), func(raw json.RawMessage) (T, bool) {
		var v T
		return v, json.Unmarshal(raw, &v) == nil
	}), nil
}
