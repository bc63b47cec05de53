package listview

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Action is one of Activate, Deactivate, Delete or Export. The set is closed:
// only this package can add variants.
type Action interface {
	Name() string
	sealed()
}

type (
	Activate   struct{}
	Deactivate struct{}
	Delete     struct{}
	// Export writes the scoped entities to Writer. It never mutates anything.
	Export struct {
		Writer io.Writer
	}
)

func (Activate) Name() string   { return "activate" }
func (Deactivate) Name() string { return "deactivate" }
func (Delete) Name() string     { return "delete" }
func (Export) Name() string     { return "export" }

func (Activate) sealed()   {}
func (Deactivate) sealed() {}
func (Delete) sealed()     {}
func (Export) sealed()     {}

// ParseAction maps a command name to its action. Export comes back without a
// writer; the caller fills it in.
func ParseAction(name string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "activate":
		return Activate{}, nil
	case "deactivate":
		return Deactivate{}, nil
	case "delete":
		return Delete{}, nil
	case "export":
		return Export{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Mutator is the singular mutation collaborator a bulk action fans out over.
type Mutator interface {
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// Confirmer asks a human before a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Failure records one ID whose mutation failed.
type Failure struct {
	ID  string
	Err error
}

type BulkResult struct {
	Action    string
	Total     int
	Succeeded []string
	Failures  []Failure
}

func (r BulkResult) SucceededCount() int { return len(r.Succeeded) }

// Summary reads "K of N succeeded".
func (r BulkResult) Summary() string {
	return fmt.Sprintf("%d of %d succeeded", len(r.Succeeded), r.Total)
}

// ExportFunc writes the export for the given selection and returns the IDs of
// the rows it wrote.
type ExportFunc func(w io.Writer, ids []string) ([]string, error)

const DefaultBulkConcurrency = 4

type Dispatcher struct {
	mutator     Mutator
	confirmer   Confirmer
	export      ExportFunc
	concurrency int
}

type DispatcherOption func(*Dispatcher)

func WithConcurrency(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.concurrency = n
		}
	}
}

func WithExport(fn ExportFunc) DispatcherOption {
	return func(d *Dispatcher) { d.export = fn }
}

func NewDispatcher(m Mutator, c Confirmer, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{mutator: m, confirmer: c, concurrency: DefaultBulkConcurrency}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Apply runs action over ids. A failing ID never stops the others; failures
// land in BulkResult.Failures. The returned error is only for problems that
// stop the whole action: nothing selected, a declined delete, a failed export.
func (d *Dispatcher) Apply(ctx context.Context, action Action, ids []string) (BulkResult, error) {
	res := BulkResult{Action: action.Name(), Total: len(ids)}
	if _, isExport := action.(Export); !isExport && d.mutator == nil {
		return res, fmt.Errorf("%s: no mutator configured", action.Name())
	}

	switch a := action.(type) {
	case Activate:
		return d.fanOut(ctx, res, ids, func(ctx context.Context, id string) error {
			return d.mutator.SetActive(ctx, id, true)
		})
	case Deactivate:
		return d.fanOut(ctx, res, ids, func(ctx context.Context, id string) error {
			return d.mutator.SetActive(ctx, id, false)
		})
	case Delete:
		if len(ids) == 0 {
			return res, ErrEmptySelection
		}
		if d.confirmer == nil {
			return res, ErrNotConfirmed
		}
		ok, err := d.confirmer.Confirm(ctx, fmt.Sprintf("Delete %d selected item(s)? This cannot be undone.", len(ids)))
		if err != nil {
			return res, fmt.Errorf("confirm delete: %w", err)
		}
		if !ok {
			return res, ErrNotConfirmed
		}
		return d.fanOut(ctx, res, ids, d.mutator.Delete)
	case Export:
		if d.export == nil || a.Writer == nil {
			return res, fmt.Errorf("export: no destination configured")
		}
		written, err := d.export(a.Writer, ids)
		if err != nil {
			return res, err
		}
		res.Total = len(written)
		res.Succeeded = written
		return res, nil
	default:
		return res, fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
}

func (d *Dispatcher) fanOut(ctx context.Context, res BulkResult, ids []string, op func(context.Context, string) error) (BulkResult, error) {
	if len(ids) == 0 {
		return res, ErrEmptySelection
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(d.concurrency)
	failed := make(map[string]error)

	for _, id := range ids {
		g.Go(func() error {
			err := op(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed[id] = err
			}
			return nil
		})
	}
	_ = g.Wait()

	// Report in input order so results are reproducible.
	for _, id := range ids {
		if err, ok := failed[id]; ok {
			res.Failures = append(res.Failures, Failure{ID: id, Err: err})
			continue
		}
		res.Succeeded = append(res.Succeeded, id)
	}
	return res, nil
}
