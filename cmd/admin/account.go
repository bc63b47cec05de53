package main

import (
	"context"
	"errors"
	"strconv"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/client"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
)

func loginCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Sign in and keep the token for later commands",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Sources: cli.EnvVars("FP_ADMIN_PASSWORD"), Usage: "prompted for when empty"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			password := cmd.String("password")
			if password == "" {
				var err error
				if password, err = a.prompt(ctx, "Password: "); err != nil {
					return err
				}
			}
			resp, err := a.api.Auth.Login(ctx, cmd.String("email"), password)
			if err != nil {
				return a.reportAPIError(err)
			}
			if err := a.sess.SaveLogin(resp); err != nil {
				return err
			}
			a.printf("signed in as %s (%s)\n", resp.User.Email, resp.User.Role)
			return nil
		},
	}
}

func logoutCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Sign out and forget the stored token",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// The local session is cleared even when the server call fails.
			if err := a.api.Auth.Logout(ctx); err != nil {
				a.log.Warn("[admin.logout]", zap.Error(err))
			}
			if err := a.sess.Clear(); err != nil {
				return err
			}
			a.printf("signed out\n")
			return nil
		},
	}
}

func whoamiCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "Show the signed in admin",
		Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if a.sess.Token() == "" {
				return client.ErrUnauthorized
			}
			me, err := a.api.Auth.Profile(ctx)
			if errors.Is(err, client.ErrUnauthorized) {
				_ = a.sess.Clear()
				return err
			}
			if err != nil {
				return err
			}
			if cmd.Bool("json") {
				return printJSON(a.out, me)
			}
			last := "-"
			if me.LastLoginAt != nil {
				last = me.LastLoginAt.Local().Format("2006-01-02 15:04:05")
			}
			printKV(a.out, [][2]string{
				{"id", me.ID},
				{"email", me.Email},
				{"name", me.Name},
				{"role", me.Role},
				{"status", me.Status},
				{"last_login", last},
			})
			return nil
		},
	}
}

func dashboardCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Show the summary cards, recent orders and best sellers",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Value: 5, Usage: "rows per list card"},
			&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d := a.api.Dashboard.Load(ctx, cmd.Int("limit"))
			// Each card stands alone; only a fully failed dashboard is an error.
			if d.Stats.Err != nil && d.RecentOrders.Err != nil && d.TopProducts.Err != nil {
				return d.Err()
			}
			if cmd.Bool("json") {
				return printJSON(a.out, map[string]any{
					"stats":        cardJSON(d.Stats),
					"recentOrders": cardJSON(d.RecentOrders),
					"topProducts":  cardJSON(d.TopProducts),
				})
			}

			a.printf("== Summary\n")
			if d.Stats.Err != nil {
				a.printf("unavailable: %s\n", describe(d.Stats.Err))
			} else {
				printStats(a, d.Stats.Data)
			}

			a.printf("\n== Recent orders\n")
			if d.RecentOrders.Err != nil {
				a.printf("unavailable: %s\n", describe(d.RecentOrders.Err))
			} else {
				printRecentOrders(a, d.RecentOrders.Data)
			}

			a.printf("\n== Top products\n")
			if d.TopProducts.Err != nil {
				a.printf("unavailable: %s\n", describe(d.TopProducts.Err))
			} else {
				printTopProducts(a, d.TopProducts.Data)
			}
			return nil
		},
	}
}

func cardJSON[T any](c client.Card[T]) map[string]any {
	if c.Err != nil {
		return map[string]any{"error": describe(c.Err)}
	}
	return map[string]any{"data": c.Data}
}

func printStats(a *app, s models.DashboardStats) {
	printKV(a.out, [][2]string{
		{"products", strconv.FormatInt(s.TotalProducts, 10)},
		{"active products", strconv.FormatInt(s.ActiveProducts, 10)},
		{"low stock", strconv.FormatInt(s.LowStockProducts, 10)},
		{"categories", strconv.FormatInt(s.TotalCategories, 10)},
		{"brands", strconv.FormatInt(s.TotalBrands, 10)},
		{"orders", strconv.FormatInt(s.TotalOrders, 10)},
		{"pending orders", strconv.FormatInt(s.PendingOrders, 10)},
		{"revenue", formatMoney(s.TotalRevenue)},
	})
}

func printRecentOrders(a *app, orders []models.RecentOrder) {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.OrderNumber,
			o.CustomerName,
			o.Status,
			strconv.Itoa(o.ItemCount),
			formatMoney(o.Total),
			formatDate(o.CreatedAt),
		})
	}
	printTable(a.out, []string{"ORDER", "CUSTOMER", "STATUS", "ITEMS", "TOTAL", "DATE"}, rows)
}

func printTopProducts(a *app, products []models.TopProduct) {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ProductName,
			strconv.Itoa(p.UnitsSold),
			formatMoney(p.Revenue),
			formatPercent(p.RevenuePercent),
		})
	}
	printTable(a.out, []string{"PRODUCT", "UNITS", "REVENUE", "SHARE"}, rows)
}
