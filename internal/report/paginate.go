package report

// DefaultPageSize matches the archive view's fixed page length.
const DefaultPageSize = 50

// Page is one fixed-size slice of an ordered record set. Pages are
// recomputed whenever the filtered set or requested page changes and
// are never mutated in place.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Paginate slices records (already in display order) into the requested
// page. Page numbers outside [1, totalPages] clamp to the nearest valid
// page; an empty set yields a single empty page.
func Paginate[T any](records []T, pageSize, pageNumber int) Page[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	total := len(records)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]T, end-start)
	copy(items, records[start:end])

	return Page[T]{
		Items:      items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// Window returns up to 5 page-button numbers around the current page.
// Near the edges the window pins to the first or last 5 pages so it
// stays full width.
func (p Page[T]) Window() []int {
	const width = 5

	if p.TotalPages <= width {
		out := make([]int, p.TotalPages)
		for i := range out {
			out[i] = i + 1
		}
		return out
	}

	start := p.PageNumber - width/2
	switch {
	case p.PageNumber <= 3:
		start = 1
	case p.PageNumber >= p.TotalPages-2:
		start = p.TotalPages - width + 1
	}

	out := make([]int, width)
	for i := range out {
		out[i] = start + i
	}
	return out
}
