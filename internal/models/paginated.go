package models

// PageMeta is the pagination metadata of a server-paginated response. Page is 0-indexed.
type PageMeta struct {
	Page        int   `json:"page" example:"0"`
	Size        int   `json:"size" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"42"`
	TotalPages  int   `json:"totalPages" example:"5"`
	HasNext     bool  `json:"hasNext" example:"true"`
	HasPrevious bool  `json:"hasPrevious" example:"false"`
}

// PaginatedResponse is one page of a server-paginated resource
type PaginatedResponse[T any] struct {
	Data []T `json:"data"`
	PageMeta
}

// Meta returns the pagination metadata without the data
func (p *PaginatedResponse[T]) Meta() PageMeta {
	return p.PageMeta
}
