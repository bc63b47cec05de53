// Package listview implements the collection view state machine shared by the
// Products, Categories and Brands admin screens: derive a filtered and sorted
// view, paginate it, track a selection and dispatch bulk actions over it.
package listview

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrUnknownSortKey  = errors.New("unknown sort key")
	ErrInvalidStatus   = errors.New("invalid status filter")
	ErrInvalidOrder    = errors.New("invalid sort order")
	ErrNothingToExport = errors.New("nothing to export: the list is empty")
	ErrEmptySelection  = errors.New("no items selected")
	ErrNotConfirmed    = errors.New("action was not confirmed")
	ErrUnknownAction   = errors.New("unknown bulk action")
)

// FieldKind decides how a field compares when sorting.
type FieldKind int

const (
	KindString FieldKind = iota
	KindNumber
	KindTime
)

// Field is a named, typed accessor over an entity. Fields double as sort keys
// and as export columns.
type Field[T any] struct {
	Key    string
	Label  string
	Kind   FieldKind
	Text   func(T) string
	Number func(T) float64
	Time   func(T) time.Time
}

// TextField is a string column read by fn.
func TextField[T any](key, label string, fn func(T) string) Field[T] {
	return Field[T]{Key: key, Label: label, Kind: KindString, Text: fn}
}

// NumberField is a numeric column. Sorting compares it numerically.
func NumberField[T any](key, label string, fn func(T) float64) Field[T] {
	return Field[T]{Key: key, Label: label, Kind: KindNumber, Number: fn}
}

// TimeField is a timestamp column. Sorting compares it chronologically.
func TimeField[T any](key, label string, fn func(T) time.Time) Field[T] {
	return Field[T]{Key: key, Label: label, Kind: KindTime, Time: fn}
}

// Format renders the field value as a plain string for export.
func (f Field[T]) Format(item T) string {
	switch f.Kind {
	case KindNumber:
		return strconv.FormatFloat(f.Number(item), 'f', -1, 64)
	case KindTime:
		t := f.Time(item)
		if t.IsZero() {
			return ""
		}
		return t.UTC().Format(time.RFC3339)
	default:
		return f.Text(item)
	}
}

// Schema describes one entity type to the engine.
type Schema[T any] struct {
	// Entity is the lower-case collection name used in export filenames and
	// preference keys, e.g. "products".
	Entity string
	ID     func(T) string
	Active func(T) bool
	// Featured and Count are optional and only feed Stats.
	Featured func(T) bool
	Count    func(T) int
	// Group is the optional foreign key matched by FilterState.Group.
	Group  func(T) string
	Search []func(T) string
	Fields []Field[T]
}

// Field looks up a field by key.
func (s Schema[T]) Field(key string) (Field[T], bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field[T]{}, false
}

func (s Schema[T]) validate() error {
	if s.ID == nil {
		return errors.New("listview: schema needs an ID accessor")
	}
	if s.Active == nil {
		return errors.New("listview: schema needs an Active accessor")
	}
	for _, f := range s.Fields {
		ok := (f.Kind == KindString && f.Text != nil) ||
			(f.Kind == KindNumber && f.Number != nil) ||
			(f.Kind == KindTime && f.Time != nil)
		if !ok {
			return fmt.Errorf("listview: field %q has no accessor for its kind", f.Key)
		}
	}
	return nil
}

// Status is the unified active/inactive filter.
type Status string

const (
	StatusAll          Status = "all"
	StatusActiveOnly   Status = "active"
	StatusInactiveOnly Status = "inactive"
)

// ParseStatus reads a status filter name, case-insensitively. Empty means all.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusAll:
		return StatusAll, nil
	case StatusActiveOnly:
		return StatusActiveOnly, nil
	case StatusInactiveOnly:
		return StatusInactiveOnly, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// Order is the sort direction.
type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

// ParseOrder reads a sort direction, case-insensitively. Empty means ascending.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOrder, s)
}

// AllGroups disables the group filter, same as an empty Group.
const AllGroups = "all"

// FilterState drives Derive.
type FilterState struct {
	Search    string
	Status    Status
	Group     string
	SortKey   string
	SortOrder Order
}

func DefaultFilterState() FilterState {
	return FilterState{Status: StatusAll, Group: AllGroups, SortOrder: OrderAsc}
}
