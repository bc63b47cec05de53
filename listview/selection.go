package listview

import (
	"slices"

	"github.com/samber/lo"
)

// Selection is a set of entity IDs. IDs are not dropped when a filter change
// hides them; only Remove and Retain shrink the set.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

func (s *Selection) Toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return
	}
	s.ids[id] = struct{}{}
}

func (s *Selection) IsSelected(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int { return len(s.ids) }

func (s *Selection) Clear() { clear(s.ids) }

// SelectAll selects exactly viewIDs, every page of the filtered view. When the
// selection is already as large as the view it clears instead.
func (s *Selection) SelectAll(viewIDs []string) {
	viewIDs = lo.Uniq(viewIDs)
	if len(s.ids) == len(viewIDs) {
		s.Clear()
		return
	}
	s.Clear()
	for _, id := range viewIDs {
		s.ids[id] = struct{}{}
	}
}

// IDs returns the selected IDs in sorted order.
func (s *Selection) IDs() []string {
	out := lo.Keys(s.ids)
	slices.Sort(out)
	return out
}

func (s *Selection) Remove(ids ...string) {
	for _, id := range ids {
		delete(s.ids, id)
	}
}

// Retain drops every selected ID that is not in existing.
func (s *Selection) Retain(existing []string) {
	keep := lo.SliceToMap(existing, func(id string) (string, struct{}) { return id, struct{}{} })
	for id := range s.ids {
		if _, ok := keep[id]; !ok {
			delete(s.ids, id)
		}
	}
}
