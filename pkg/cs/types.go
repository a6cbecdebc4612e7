package cs

// Record is one opaque resource returned by the API. Its fields are not
// interpreted by this package.
type Record map[string]any

// Page is one batch of list results.
type Page[T any] struct {
	Items []T
	// Total is the server-side result count when the response carries one.
	Total *int
}

// ListResponse is the object form of a list payload.
type ListResponse[T any] struct {
	Items      []T                 `json:"items"                yaml:"items"`
	Pagination *ResponsePagination `json:"pagination,omitempty" yaml:"pagination,omitempty"`
}

// ResponsePagination is the pagination block of a list payload.
type ResponsePagination struct {
	Offset int  `json:"offset"          yaml:"offset"`
	Limit  int  `json:"limit"           yaml:"limit"`
	Total  *int `json:"total,omitempty" yaml:"total,omitempty"`
}
