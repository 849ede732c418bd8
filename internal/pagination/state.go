// Package pagination holds the pagination state of server-paginated screens (0-indexed)
// and the client-side slicer used by screens that load a plain list (1-indexed).
package pagination

import (
	"errors"
	"fmt"

	"kas-dashboard-svc/internal/models"
)

// DefaultSize is the page size a screen starts with
const DefaultSize = 10

// SizeOptions are the page sizes offered by the dashboard
var SizeOptions = []int{5, 10, 20, 50, 100}

var (
	// ErrPageOutOfRange is returned when a requested page is outside [0, TotalPages)
	ErrPageOutOfRange = errors.New("page out of range")
	// ErrInvalidSize is returned for a page size below 1
	ErrInvalidSize = errors.New("page size must be at least 1")
)

// ValidSize reports whether size is one of SizeOptions
func ValidSize(size int) bool {
	for _, s := range SizeOptions {
		if s == size {
			return true
		}
	}
	return false
}

// TotalPages returns ceil(totalItems/size); size must be at least 1
func TotalPages(totalItems int64, size int) int {
	if size < 1 || totalItems <= 0 {
		return 0
	}
	return int((totalItems + int64(size) - 1) / int64(size))
}

// HasNext reports whether a page follows page
func HasNext(page, totalPages int) bool {
	return page+1 < totalPages
}

// HasPrevious reports whether a page precedes page
func HasPrevious(page int) bool {
	return page > 0
}

// State is the pagination state of one server-paginated screen. The zero value is not
// usable; create it with NewState.
type State struct {
	Page        int   `json:"page"`
	Size        int   `json:"size"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
	HasNext     bool  `json:"hasNext"`
	HasPrevious bool  `json:"hasPrevious"`
}

// NewState returns the state of a screen that has not loaded anything yet
func NewState(size int) State {
	if size < 1 {
		size = DefaultSize
	}
	return State{Size: size}
}

// SetSize replaces the page size and always goes back to the first page
func (s *State) SetSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	s.Size = size
	s.Page = 0
	return nil
}

// SetPage moves to page p when it exists
func (s *State) SetPage(p int) error {
	if p == 0 && s.TotalPages == 0 {
		s.Page = 0
		return nil
	}
	if p < 0 || p >= s.TotalPages {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrPageOutOfRange, p, s.TotalPages)
	}
	s.Page = p
	return nil
}

// Next moves forward one page when HasNext is set
func (s *State) Next() error {
	if !s.HasNext {
		return fmt.Errorf("%w: no next page after %d", ErrPageOutOfRange, s.Page)
	}
	s.Page++
	return nil
}

// Previous moves back one page when HasPrevious is set
func (s *State) Previous() error {
	if !s.HasPrevious {
		return fmt.Errorf("%w: no previous page before %d", ErrPageOutOfRange, s.Page)
	}
	s.Page--
	return nil
}

// Apply overwrites the page metadata from a server response. The server is the only
// source of truth for it; nothing is recomputed here. Size stays the client's choice.
func (s *State) Apply(meta models.PageMeta) {
	*s = State{
		Page:        meta.Page,
		Size:        s.Size,
		TotalItems:  meta.TotalItems,
		TotalPages:  meta.TotalPages,
		HasNext:     meta.HasNext,
		HasPrevious: meta.HasPrevious,
	}
}
