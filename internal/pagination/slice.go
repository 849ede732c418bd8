package pagination

// Page is one client-side page of an in-memory list. Page numbers are 1-indexed.
type Page[T any] struct {
	Items       []T   `json:"items"`
	Page        int   `json:"page"`
	Size        int   `json:"size"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
	// StartIndex and EndIndex are the 1-based positions of the first and last item shown,
	// both 0 for an empty page.
	StartIndex  int   `json:"startIndex"`
	EndIndex    int   `json:"endIndex"`
	PageNumbers []int `json:"pageNumbers"`
}

// Slice returns items[(page-1)*size : page*size], bounded to the list.
// A page below 1 is treated as 1 and a size below 1 as DefaultSize.
func Slice[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = DefaultSize
	}
	if page < 1 {
		page = 1
	}

	total := len(items)
	totalPages := TotalPages(int64(total), size)

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := page * size
	if end > total {
		end = total
	}

	out := Page[T]{
		Items:       make([]T, 0, end-start),
		Page:        page,
		Size:        size,
		TotalItems:  int64(total),
		TotalPages:  totalPages,
		HasNext:     HasNext(page-1, totalPages),
		HasPrevious: HasPrevious(page - 1),
		PageNumbers: PageNumbers(page, totalPages, DefaultVisiblePages),
	}
	out.Items = append(out.Items, items[start:end]...)
	if end > start {
		out.StartIndex = start + 1
		out.EndIndex = end
	}
	return out
}

// DefaultVisiblePages is the width of the page-number strip
const DefaultVisiblePages = 5

// Ellipsis marks a gap in the page-number strip
const Ellipsis = 0

// PageNumbers builds the 1-indexed page-number strip for current out of total pages.
// Gaps are marked with Ellipsis.
func PageNumbers(current, total, maxVisible int) []int {
	if total <= 0 {
		return []int{}
	}
	if total <= maxVisible {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	switch {
	case current <= 3:
		return []int{1, 2, 3, 4, Ellipsis, total}
	case current >= total-2:
		return []int{1, Ellipsis, total - 3, total - 2, total - 1, total}
	default:
		return []int{1, Ellipsis, current - 1, current, current + 1, Ellipsis, total}
	}
}
