package listview

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Derive returns the filtered and sorted view of items. The input slice is
// never modified. Sorting is stable, so equal keys keep collection order.
func Derive[T any](items []T, schema Schema[T], f FilterState) ([]T, error) {
	var sortBy *Field[T]
	if f.SortKey != "" {
		field, ok := schema.Field(f.SortKey)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, f.SortKey)
		}
		sortBy = &field
	}

	fold := cases.Fold()
	term := fold.String(strings.TrimSpace(f.Search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !matchStatus(schema, item, f.Status) {
			continue
		}
		if !matchGroup(schema, item, f.Group) {
			continue
		}
		if term != "" && !matchSearch(schema, item, term, fold) {
			continue
		}
		out = append(out, item)
	}

	if sortBy != nil {
		desc := f.SortOrder == OrderDesc
		slices.SortStableFunc(out, func(a, b T) int {
			c := compareField(*sortBy, a, b, fold)
			if desc {
				return -c
			}
			return c
		})
	}
	return out, nil
}

func matchStatus[T any](schema Schema[T], item T, status Status) bool {
	switch status {
	case StatusActiveOnly:
		return schema.Active(item)
	case StatusInactiveOnly:
		return !schema.Active(item)
	default:
		return true
	}
}

func matchGroup[T any](schema Schema[T], item T, group string) bool {
	if group == "" || group == AllGroups || schema.Group == nil {
		return true
	}
	return schema.Group(item) == group
}

func matchSearch[T any](schema Schema[T], item T, term string, fold cases.Caser) bool {
	for _, field := range schema.Search {
		if strings.Contains(fold.String(field(item)), term) {
			return true
		}
	}
	return false
}

func compareField[T any](f Field[T], a, b T, fold cases.Caser) int {
	switch f.Kind {
	case KindNumber:
		return cmp.Compare(f.Number(a), f.Number(b))
	case KindTime:
		return cmp.Compare(f.Time(a).UnixMilli(), f.Time(b).UnixMilli())
	default:
		return strings.Compare(fold.String(f.Text(a)), fold.String(f.Text(b)))
	}
}
