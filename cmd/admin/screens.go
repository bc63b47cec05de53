package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/listview"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/models"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/reports"
	"github.com/johncarlodelrosariocxp/federalpartsphilippines-frontend-sub000/session"
)

// entityAPI is what a list screen needs from the client.
type entityAPI[T any] interface {
	listview.Source[T]
	listview.Mutator
	Get(ctx context.Context, id string) (T, error)
}

// screen is one admin list page: products, categories or brands.
type screen[T any] struct {
	title  string
	schema listview.Schema[T]
	api    entityAPI[T]
	// columns are the field keys shown in the table view.
	columns []string
	// groupFlag names the flag that filters by Schema.Group, if any.
	groupFlag string
	extra     []*cli.Command
}

func (s screen[T]) command(a *app) *cli.Command {
	return &cli.Command{
		Name:  s.schema.Entity,
		Usage: "Manage " + s.schema.Entity,
		Commands: append([]*cli.Command{
			s.listCommand(a),
			s.showCommand(a),
			s.bulkCommand(a),
			s.exportCommand(a),
			s.viewCommand(a),
			s.showInactiveCommand(a),
		}, s.extra...),
	}
}

func (s screen[T]) filterFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Name: "search", Aliases: []string{"q"}, Usage: "case-insensitive search"},
		&cli.StringFlag{Name: "status", Usage: "all, active or inactive (default from show-inactive)"},
		&cli.StringFlag{Name: "sort", Usage: "field key to sort by"},
		&cli.StringFlag{Name: "order", Value: string(listview.OrderAsc), Usage: "asc or desc"},
	}
	if s.groupFlag != "" {
		flags = append(flags, &cli.StringFlag{Name: s.groupFlag, Usage: "only items in this " + s.groupFlag + " id"})
	}
	return flags
}

func selectionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{Name: "ids", Usage: "comma separated ids to select"},
		&cli.BoolFlag{Name: "all", Usage: "select every item matching the filters"},
	}
}

// controller loads the collection and applies the filter flags. Status falls
// back to the show-inactive preference when --status is not given.
func (s screen[T]) controller(ctx context.Context, a *app, cmd *cli.Command) (*listview.Controller[T], error) {
	ctrl, err := listview.NewController(listview.Config[T]{
		Schema:    s.schema,
		Source:    s.api,
		Mutator:   s.api,
		Confirmer: a.confirmer(),
		Prefs:     a.sess,
		PageSize:  a.cfg.PageSize,
	})
	if err != nil {
		return nil, err
	}
	if err := ctrl.Load(ctx); err != nil {
		return nil, err
	}

	f := ctrl.Filter()
	f.Search = cmd.String("search")
	if cmd.IsSet("status") {
		if f.Status, err = listview.ParseStatus(cmd.String("status")); err != nil {
			return nil, err
		}
	}
	if s.groupFlag != "" && cmd.String(s.groupFlag) != "" {
		f.Group = cmd.String(s.groupFlag)
	}
	if f.SortOrder, err = listview.ParseOrder(cmd.String("order")); err != nil {
		return nil, err
	}
	f.SortKey = cmd.String("sort")
	if err := ctrl.SetFilter(f); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// selectFromFlags applies --ids and --all. With neither, nothing is selected.
func selectFromFlags[T any](ctrl *listview.Controller[T], cmd *cli.Command) error {
	if cmd.Bool("all") {
		return ctrl.SelectAll()
	}
	for _, id := range lo.Uniq(cmd.StringSlice("ids")) {
		if id != "" {
			ctrl.Toggle(id)
		}
	}
	return nil
}

func (s screen[T]) columnFields() []listview.Field[T] {
	if len(s.columns) == 0 {
		return s.schema.Fields
	}
	return lo.FilterMap(s.columns, func(key string, _ int) (listview.Field[T], bool) {
		return s.schema.Field(key)
	})
}

func (s screen[T]) listCommand(a *app) *cli.Command {
	flags := append(s.filterFlags(),
		&cli.IntFlag{Name: "page", Value: 1, Usage: "page number"},
		&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
	)
	return &cli.Command{
		Name:  "list",
		Usage: "List " + s.schema.Entity + " one page at a time",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctrl, err := s.controller(ctx, a, cmd)
			if err != nil {
				return err
			}
			ctrl.SetPage(cmd.Int("page"))
			page, err := ctrl.View()
			if err != nil {
				return err
			}
			stats := ctrl.Stats()
			if cmd.Bool("json") {
				return printJSON(a.out, map[string]any{
					"items": page.Items,
					"meta": models.Pagination{
						Page:       page.Number,
						Limit:      page.Size,
						Total:      page.TotalItems,
						TotalPages: page.TotalPages,
					},
					"stats": stats,
				})
			}

			if ctrl.ViewMode() == session.ViewGrid {
				printCards(a.out, page.Items, s.columnFields())
			} else {
				printItems(a.out, page.Items, s.columnFields())
			}
			a.printf("\npage %d of %d, %d matching\n", page.Number, page.TotalPages, page.TotalItems)
			a.printf("total %d  active %d  inactive %d  featured %d\n", stats.Total, stats.Active, stats.Inactive, stats.Featured)
			return nil
		},
	}
}

func (s screen[T]) showCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show one " + s.title,
		ArgsUsage: "<id>",
		Flags:     []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id := cmd.Args().First()
			if id == "" {
				return fmt.Errorf("%s show: id is required", s.schema.Entity)
			}
			item, err := s.api.Get(ctx, id)
			if err != nil {
				return err
			}
			if cmd.Bool("json") {
				return printJSON(a.out, item)
			}
			printCards(a.out, []T{item}, s.schema.Fields)
			return nil
		},
	}
}

func (s screen[T]) bulkCommand(a *app) *cli.Command {
	flags := append(s.filterFlags(), selectionFlags()...)
	flags = append(flags, &cli.StringFlag{Name: "action", Required: true, Usage: "activate, deactivate or delete"})
	return &cli.Command{
		Name:  "bulk",
		Usage: "Apply an action to several " + s.schema.Entity,
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			action, err := listview.ParseAction(cmd.String("action"))
			if err != nil {
				return err
			}
			if _, ok := action.(listview.Export); ok {
				return fmt.Errorf("use `%s export` to export", s.schema.Entity)
			}
			ctrl, err := s.controller(ctx, a, cmd)
			if err != nil {
				return err
			}
			if err := selectFromFlags(ctrl, cmd); err != nil {
				return err
			}

			res, err := ctrl.Apply(ctx, action)
			if errors.Is(err, listview.ErrNotConfirmed) {
				a.printf("cancelled, nothing was changed\n")
				return nil
			}
			if res.Total > 0 {
				a.printf("%s: %s\n", res.Action, res.Summary())
				for _, f := range res.Failures {
					a.printf("  %s: %s\n", f.ID, describe(f.Err))
				}
			}
			return err
		},
	}
}

func (s screen[T]) exportCommand(a *app) *cli.Command {
	flags := append(s.filterFlags(), selectionFlags()...)
	flags = append(flags,
		&cli.StringFlag{Name: "format", Value: "csv", Usage: "csv or pdf"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "file to write, - for stdout (default {entity}_export_{date}.{format})"},
	)
	return &cli.Command{
		Name:  "export",
		Usage: "Export the selection, or everything matching the filters",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if format != "csv" && format != "pdf" {
				return fmt.Errorf("unknown export format %q", format)
			}
			ctrl, err := s.controller(ctx, a, cmd)
			if err != nil {
				return err
			}
			if err := selectFromFlags(ctrl, cmd); err != nil {
				return err
			}
			items, err := ctrl.ExportItems()
			if err != nil {
				return err
			}
			// Refuse before a file is created.
			if len(items) == 0 {
				return listview.ErrNothingToExport
			}

			name := cmd.String("output")
			if name == "" {
				name = listview.ExportFilename(s.schema.Entity, format, a.now())
			}
			w, closeFn, err := a.openOutput(name)
			if err != nil {
				return err
			}

			rows := len(items)
			if format == "pdf" {
				err = reports.WriteTablePDF(w, s.title+" export", items, s.schema.Fields, a.now())
			} else {
				var res listview.BulkResult
				res, err = ctrl.Apply(ctx, listview.Export{Writer: w})
				rows = res.Total
			}
			if cerr := closeFn(); err == nil {
				err = cerr
			}
			if err != nil {
				return err
			}
			if name != "-" {
				a.printf("wrote %d rows to %s\n", rows, name)
			}
			return nil
		},
	}
}

// openOutput opens name for writing. "-" is the console's own output.
func (a *app) openOutput(name string) (io.Writer, func() error, error) {
	if name == "-" {
		return a.out, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, fmt.Errorf("create export file: %w", err)
	}
	return f, f.Close, nil
}

func (s screen[T]) viewCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "Show or set the view mode (table or grid)",
		ArgsUsage: "[table|grid]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			mode := cmd.Args().First()
			if mode == "" {
				a.printf("%s\n", a.sess.ViewMode(s.schema.Entity))
				return nil
			}
			if err := a.sess.SetViewMode(s.schema.Entity, mode); err != nil {
				return err
			}
			a.printf("%s view: %s\n", s.schema.Entity, mode)
			return nil
		},
	}
}

func (s screen[T]) showInactiveCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:      "show-inactive",
		Usage:     "Show or set whether lists include inactive " + s.schema.Entity,
		ArgsUsage: "[true|false]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			arg := cmd.Args().First()
			if arg == "" {
				a.printf("%t\n", a.sess.ShowInactive(s.schema.Entity))
				return nil
			}
			show, err := strconv.ParseBool(arg)
			if err != nil {
				return fmt.Errorf("show-inactive: %q is not true or false", arg)
			}
			if err := a.sess.SetShowInactive(s.schema.Entity, show); err != nil {
				return err
			}
			a.printf("%s show inactive: %t\n", s.schema.Entity, show)
			return nil
		},
	}
}
