package listview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

type part struct {
	ID          string
	Name        string
	Description string
	SKU         string
	Category    string
	Price       float64
	Stock       int
	Active      bool
	Featured    bool
	CreatedAt   time.Time
}

func partSchema() Schema[part] {
	return Schema[part]{
		Entity:   "product",
		ID:       func(p part) string { return p.ID },
		Active:   func(p part) bool { return p.Active },
		Featured: func(p part) bool { return p.Featured },
		Count:    func(p part) int { return p.Stock },
		Group:    func(p part) string { return p.Category },
		Search: []func(part) string{
			func(p part) string { return p.Name },
			func(p part) string { return p.Description },
			func(p part) string { return p.SKU },
		},
		Fields: []Field[part]{
			TextField("id", "ID", func(p part) string { return p.ID }),
			TextField("name", "Name", func(p part) string { return p.Name }),
			TextField("description", "Description", func(p part) string { return p.Description }),
			NumberField("price", "Price", func(p part) float64 { return p.Price }),
			NumberField("stock", "Stock", func(p part) float64 { return float64(p.Stock) }),
			TimeField("createdAt", "Created", func(p part) time.Time { return p.CreatedAt }),
		},
	}
}

var categories = []string{"engine", "brakes", "body", "electrical"}

func fakeParts(seed uint64, n int) []part {
	f := gofakeit.New(seed)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]part, n)
	for i := range out {
		out[i] = part{
			ID:          fmt.Sprintf("p-%03d", i),
			Name:        f.ProductName(),
			Description: f.Sentence(10),
			SKU:         fmt.Sprintf("SKU-%05d", f.Number(0, 99999)),
			Category:    categories[f.Number(0, len(categories)-1)],
			Price:       f.Price(10, 999),
			Stock:       f.Number(0, 500),
			Active:      f.Bool(),
			Featured:    f.Bool(),
			CreatedAt:   base.Add(time.Duration(f.Number(0, 10000)) * time.Hour),
		}
	}
	return out
}

func partIDs(items []part) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

// memStore is an in-memory Source and Mutator.
type memStore struct {
	mu       sync.Mutex
	items    []part
	failIDs  map[string]bool
	listErr  error
	listCall int
}

func newMemStore(items []part) *memStore {
	return &memStore{items: append([]part(nil), items...), failIDs: map[string]bool{}}
}

func (s *memStore) List(context.Context) ([]part, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCall++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]part(nil), s.items...), nil
}

func (s *memStore) SetActive(_ context.Context, id string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failIDs[id] {
		return errors.New("rejected by server")
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Active = active
			return nil
		}
	}
	return fmt.Errorf("%s not found", id)
}

func (s *memStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failIDs[id] {
		return errors.New("rejected by server")
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%s not found", id)
}

type memPrefs struct {
	viewMode     map[string]string
	showInactive map[string]bool
}

func newMemPrefs() *memPrefs {
	return &memPrefs{viewMode: map[string]string{}, showInactive: map[string]bool{}}
}

func (p *memPrefs) ViewMode(entity string) string { return p.viewMode[entity] }
func (p *memPrefs) SetViewMode(entity, mode string) error {
	p.viewMode[entity] = mode
	return nil
}

func (p *memPrefs) ShowInactive(entity string) bool {
	v, ok := p.showInactive[entity]
	return !ok || v
}

func (p *memPrefs) SetShowInactive(entity string, show bool) error {
	p.showInactive[entity] = show
	return nil
}

type recordingConfirmer struct {
	answer  bool
	prompts []string
}

func (r *recordingConfirmer) Confirm(_ context.Context, prompt string) (bool, error) {
	r.prompts = append(r.prompts, prompt)
	return r.answer, nil
}
