package listview

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/samber/lo"
)

// Source fetches the whole backing collection.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
}

type SourceFunc[T any] func(ctx context.Context) ([]T, error)

func (f SourceFunc[T]) List(ctx context.Context) ([]T, error) { return f(ctx) }

// Preferences is the persisted subset of view state.
type Preferences interface {
	ViewMode(entity string) string
	SetViewMode(entity, mode string) error
	ShowInactive(entity string) bool
	SetShowInactive(entity string, show bool) error
}

// Stats are recomputed from the collection on every call and never stored.
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Featured int `json:"featured"`
	Count    int `json:"count"`
}

type Config[T any] struct {
	Schema      Schema[T]
	Source      Source[T]
	Mutator     Mutator
	Confirmer   Confirmer
	Prefs       Preferences
	PageSize    int
	Concurrency int
}

// Controller holds one admin screen's state: the fetched collection, the
// filter state, the page and the selection. It is not safe for concurrent use.
type Controller[T any] struct {
	schema     Schema[T]
	source     Source[T]
	prefs      Preferences
	dispatcher *Dispatcher

	items     []T
	filter    FilterState
	page      int
	size      int
	selection *Selection
}

func NewController[T any](cfg Config[T]) (*Controller[T], error) {
	if err := cfg.Schema.validate(); err != nil {
		return nil, err
	}
	if cfg.Source == nil {
		return nil, errors.New("listview: controller needs a source")
	}
	size := cfg.PageSize
	if size < 1 {
		size = DefaultPageSize
	}

	c := &Controller[T]{
		schema:    cfg.Schema,
		source:    cfg.Source,
		prefs:     cfg.Prefs,
		page:      1,
		size:      size,
		selection: NewSelection(),
	}
	c.ResetFilter()
	c.dispatcher = NewDispatcher(cfg.Mutator, cfg.Confirmer,
		WithConcurrency(cfg.Concurrency),
		WithExport(c.exportIDs),
	)
	return c, nil
}

// ResetFilter restores the mount-time defaults. The status default comes from
// the showInactive preference when one is configured.
func (c *Controller[T]) ResetFilter() {
	c.filter = DefaultFilterState()
	if c.prefs != nil && !c.prefs.ShowInactive(c.schema.Entity) {
		c.filter.Status = StatusActiveOnly
	}
	c.page = 1
}

// Load refetches the collection. On failure the previous collection is kept.
func (c *Controller[T]) Load(ctx context.Context) error {
	items, err := c.source.List(ctx)
	if err != nil {
		return fmt.Errorf("load %s list: %w", c.schema.Entity, err)
	}
	c.items = items
	c.selection.Retain(lo.Map(items, func(it T, _ int) string { return c.schema.ID(it) }))
	c.clampPage()
	return nil
}

func (c *Controller[T]) Entity() string      { return c.schema.Entity }
func (c *Controller[T]) Schema() Schema[T]   { return c.schema }
func (c *Controller[T]) Items() []T          { return slices.Clone(c.items) }
func (c *Controller[T]) Filter() FilterState { return c.filter }
func (c *Controller[T]) Page() int           { return c.page }
func (c *Controller[T]) PageSize() int       { return c.size }

func (c *Controller[T]) SetSearch(term string) {
	c.filter.Search = term
	c.page = 1
}

func (c *Controller[T]) SetStatus(s Status) {
	c.filter.Status = s
	c.page = 1
}

func (c *Controller[T]) SetGroup(group string) {
	c.filter.Group = group
	c.page = 1
}

func (c *Controller[T]) SetSort(key string, order Order) error {
	if key != "" {
		if _, ok := c.schema.Field(key); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
		}
	}
	c.filter.SortKey = key
	c.filter.SortOrder = order
	c.page = 1
	return nil
}

// SetFilter replaces the whole filter state at once.
func (c *Controller[T]) SetFilter(f FilterState) error {
	if f.SortKey != "" {
		if _, ok := c.schema.Field(f.SortKey); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSortKey, f.SortKey)
		}
	}
	c.filter = f
	c.page = 1
	return nil
}

// SetShowInactive is the two-state toggle some screens expose. It maps onto
// the status filter and is persisted.
func (c *Controller[T]) SetShowInactive(show bool) error {
	if show {
		c.SetStatus(StatusAll)
	} else {
		c.SetStatus(StatusActiveOnly)
	}
	if c.prefs == nil {
		return nil
	}
	return c.prefs.SetShowInactive(c.schema.Entity, show)
}

func (c *Controller[T]) ViewMode() string {
	if c.prefs == nil {
		return ""
	}
	return c.prefs.ViewMode(c.schema.Entity)
}

func (c *Controller[T]) SetViewMode(mode string) error {
	if c.prefs == nil {
		return nil
	}
	return c.prefs.SetViewMode(c.schema.Entity, mode)
}

func (c *Controller[T]) Derived() ([]T, error) {
	return Derive(c.items, c.schema, c.filter)
}

// View is the current page of the derived view.
func (c *Controller[T]) View() (Page[T], error) {
	view, err := c.Derived()
	if err != nil {
		return Page[T]{}, err
	}
	p := Paginate(view, c.page, c.size)
	c.page = p.Number
	return p, nil
}

func (c *Controller[T]) SetPage(n int) {
	c.page = n
	c.clampPage()
}

func (c *Controller[T]) NextPage() { c.SetPage(c.page + 1) }
func (c *Controller[T]) PrevPage() { c.SetPage(c.page - 1) }

func (c *Controller[T]) clampPage() {
	view, err := c.Derived()
	if err != nil {
		c.page = 1
		return
	}
	c.page = ClampPage(c.page, TotalPages(len(view), c.size))
}

func (c *Controller[T]) Toggle(id string)          { c.selection.Toggle(id) }
func (c *Controller[T]) IsSelected(id string) bool { return c.selection.IsSelected(id) }
func (c *Controller[T]) ClearSelection()           { c.selection.Clear() }
func (c *Controller[T]) SelectedIDs() []string     { return c.selection.IDs() }
func (c *Controller[T]) SelectedCount() int        { return c.selection.Len() }

// SelectAll selects the whole derived view, or clears when it already is.
func (c *Controller[T]) SelectAll() error {
	view, err := c.Derived()
	if err != nil {
		return err
	}
	c.selection.SelectAll(lo.Map(view, func(it T, _ int) string { return c.schema.ID(it) }))
	return nil
}

// Apply dispatches action over the current selection. Mutating actions
// refetch afterwards; a refetch failure is returned together with the result
// of the mutations that already happened.
func (c *Controller[T]) Apply(ctx context.Context, action Action) (BulkResult, error) {
	res, err := c.dispatcher.Apply(ctx, action, c.selection.IDs())
	if err != nil {
		return res, err
	}
	if _, ok := action.(Export); ok {
		return res, nil
	}
	if _, ok := action.(Delete); ok {
		c.selection.Remove(res.Succeeded...)
	}
	if err := c.Load(ctx); err != nil {
		return res, err
	}
	return res, nil
}

// ExportItems returns what an export would contain: the selected entities when
// there is a selection, else the derived view.
func (c *Controller[T]) ExportItems() ([]T, error) {
	return c.scoped(c.selection.IDs())
}

// Export writes the export scope as CSV and returns the number of rows.
func (c *Controller[T]) Export(w io.Writer) (int, error) {
	written, err := c.exportIDs(w, c.selection.IDs())
	return len(written), err
}

func (c *Controller[T]) exportIDs(w io.Writer, ids []string) ([]string, error) {
	items, err := c.scoped(ids)
	if err != nil {
		return nil, err
	}
	if err := WriteCSV(w, items, c.schema.Fields); err != nil {
		return nil, err
	}
	return lo.Map(items, func(it T, _ int) string { return c.schema.ID(it) }), nil
}

func (c *Controller[T]) scoped(ids []string) ([]T, error) {
	view, err := c.Derived()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return view, nil
	}

	want := lo.SliceToMap(ids, func(id string) (string, struct{}) { return id, struct{}{} })
	seen := make(map[string]struct{}, len(ids))
	out := make([]T, 0, len(ids))
	// Selected rows in view order first, then selected rows the filter hides.
	for _, src := range [][]T{view, c.items} {
		for _, it := range src {
			id := c.schema.ID(it)
			if _, ok := want[id]; !ok {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, it)
		}
	}
	return out, nil
}

func (c *Controller[T]) Stats() Stats {
	return ComputeStats(c.items, c.schema)
}

// ComputeStats counts over the whole collection, not the derived view.
func ComputeStats[T any](items []T, schema Schema[T]) Stats {
	var s Stats
	s.Total = len(items)
	for _, it := range items {
		if schema.Active(it) {
			s.Active++
		}
		if schema.Featured != nil && schema.Featured(it) {
			s.Featured++
		}
		if schema.Count != nil {
			s.Count += schema.Count(it)
		}
	}
	s.Inactive = s.Total - s.Active
	return s
}
