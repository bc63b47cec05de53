package listview

const (
	DefaultPageSize = 10
	// WindowWidth is the most page buttons PageWindow ever returns.
	WindowWidth = 5
)

// Page is one slice of a derived view plus the numbers needed to render
// navigation around it.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
	TotalPages int
}

func (p Page[T]) HasPrev() bool { return p.Number > 1 }
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

// Window is the page-number strip for this page.
func (p Page[T]) Window() []int { return PageWindow(p.Number, p.TotalPages) }

// TotalPages never reports fewer than one page, even for an empty view.
func TotalPages(n, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	if n <= 0 {
		return 1
	}
	q := n / size
	if n%size != 0 {
		q++
	}
	return q
}

// ClampPage pulls page into [1, total].
func ClampPage(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// Paginate returns page number page of view. Out-of-range pages are clamped
// rather than rejected.
func Paginate[T any](view []T, page, size int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}
	total := TotalPages(len(view), size)
	page = ClampPage(page, total)

	start := (page - 1) * size
	end := min(start+size, len(view))
	items := make([]T, 0, end-start)
	if start < end {
		items = append(items, view[start:end]...)
	}
	return Page[T]{
		Items:      items,
		Number:     page,
		Size:       size,
		TotalItems: len(view),
		TotalPages: total,
	}
}

// PageWindow returns the numbered buttons to show: [1..5] near the start,
// [n-4..n] near the end and [p-2..p+2] otherwise.
func PageWindow(current, total int) []int {
	if total < 1 {
		total = 1
	}
	current = ClampPage(current, total)

	start, end := 1, total
	if total > WindowWidth {
		start = current - WindowWidth/2
		if start < 1 {
			start = 1
		}
		end = start + WindowWidth - 1
		if end > total {
			end = total
			start = end - WindowWidth + 1
		}
	}

	out := make([]int, 0, end-start+1)
	for n := start; n <= end; n++ {
		out = append(out, n)
	}
	return out
}
