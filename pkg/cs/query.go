package cs

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// Defaults for paginated list operations.
const (
	DefaultLimit  = 50
	DefaultOffset = 0
)

// Query keys understood by the repositories list endpoint.
const (
	QueryKeyOffset       = "offset"
	QueryKeyLimit        = "limit"
	QueryKeyNameContains = "nameContains"
	QueryKeyImageName    = "imageName"
)

// RepositoryQuery holds the options of a repositories list call. Nil fields
// are left out of the request.
type RepositoryQuery struct {
	Contains *string
	Image    *string
	Limit    *int
	Offset   *int
	Pages    *int
}

// NewRepositoryQuery creates an empty query.
func NewRepositoryQuery() *RepositoryQuery {
	return &RepositoryQuery{}
}

// WithContains limits results to repositories whose name contains s.
func (q *RepositoryQuery) WithContains(s string) *RepositoryQuery {
	q.Contains = &s

	return q
}

// WithImage limits results to repositories containing the image name.
func (q *RepositoryQuery) WithImage(s string) *RepositoryQuery {
	q.Image = &s

	return q
}

// WithLimit sets the page size.
func (q *RepositoryQuery) WithLimit(limit int) *RepositoryQuery {
	q.Limit = &limit

	return q
}

// WithOffset sets the starting offset.
func (q *RepositoryQuery) WithOffset(offset int) *RepositoryQuery {
	q.Offset = &offset

	return q
}

// WithPages caps the number of pages fetched.
func (q *RepositoryQuery) WithPages(pages int) *RepositoryQuery {
	q.Pages = &pages

	return q
}

// Validate checks the numeric options.
func (q *RepositoryQuery) Validate() error {
	if q == nil {
		return nil
	}

	if q.Limit != nil {
		if _, err := CheckPositive("limit", *q.Limit); err != nil {
			return err
		}
	}

	if q.Offset != nil {
		if _, err := CheckNonNegative("offset", *q.Offset); err != nil {
			return err
		}
	}

	if q.Pages != nil {
		if _, err := CheckPositive("pages", *q.Pages); err != nil {
			return err
		}
	}

	return nil
}

// IteratorOptions returns the pagination settings, applying defaults.
func (q *RepositoryQuery) IteratorOptions() IteratorOptions {
	opts := IteratorOptions{Offset: DefaultOffset, Limit: DefaultLimit}
	if q == nil {
		return opts
	}

	if q.Limit != nil {
		opts.Limit = *q.Limit
	}

	if q.Offset != nil {
		opts.Offset = *q.Offset
	}

	if q.Pages != nil {
		opts.MaxPages = *q.Pages
	}

	return opts
}

// ToValues returns the filter part of the query. Offset and limit are set
// by the iterator on every page fetch.
func (q *RepositoryQuery) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	if q.Contains != nil {
		values.Set(QueryKeyNameContains, *q.Contains)
	}

	if q.Image != nil {
		values.Set(QueryKeyImageName, *q.Image)
	}

	return values
}

// RepositoryQueryFromMap builds a query from loosely typed options such as
// those read from a config file. Keys are contains, image, limit, offset and
// pages; values must already have the exact expected type.
func RepositoryQueryFromMap(options map[string]any) (*RepositoryQuery, error) {
	query := NewRepositoryQuery()

	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		value := options[key]

		switch key {
		case "contains", "image":
			s, err := Check[string](key, value)
			if err != nil {
				return nil, err
			}

			if key == "contains" {
				query.WithContains(s)
			} else {
				query.WithImage(s)
			}
		case QueryKeyLimit, QueryKeyOffset, "pages":
			n, err := Check[int](key, value)
			if err != nil {
				return nil, err
			}

			switch key {
			case QueryKeyLimit:
				query.WithLimit(n)
			case QueryKeyOffset:
				query.WithOffset(n)
			default:
				query.WithPages(n)
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownParameter, key)
		}
	}

	err := query.Validate()
	if err != nil {
		return nil, err
	}

	return query, nil
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
