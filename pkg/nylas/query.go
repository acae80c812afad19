package nylas

import (
	"net/url"
	"strconv"
)

// View is a query modifier changing the response shape instead of filtering.
type View string

// Supported views.
const (
	// ViewCount makes the server return only the total item count.
	ViewCount View = "count"

	// ViewIDs makes the server return bare id strings.
	ViewIDs View = "ids"

	// ViewExpanded makes the server inline nested objects.
	ViewExpanded View = "expanded"
)

// QueryParams represents query parameters for API requests. Offset and Limit
// position a single request; during collection traversal the engine manages
// them itself and the caller's Limit bounds the total instead.
type QueryParams struct {
	View     View
	Offset   int
	Limit    int
	Expanded bool
	Filters  url.Values
}

// NewQueryParams creates a new QueryParams instance.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Filters: url.Values{},
	}
}

// WithView sets the response view.
func (q *QueryParams) WithView(view View) *QueryParams {
	q.View = view

	return q
}

// WithOffset sets the item offset.
func (q *QueryParams) WithOffset(offset int) *QueryParams {
	q.Offset = offset

	return q
}

// WithLimit sets the item limit.
func (q *QueryParams) WithLimit(limit int) *QueryParams {
	q.Limit = limit

	return q
}

// WithExpanded requests the expanded view. It is shorthand for
// WithView(ViewExpanded) kept for parity with the wire-level `expanded` flag.
func (q *QueryParams) WithExpanded() *QueryParams {
	q.Expanded = true

	return q
}

// WithFilter adds a resource-specific filter, passed through unmodified.
func (q *QueryParams) WithFilter(key, value string) *QueryParams {
	if q.Filters == nil {
		q.Filters = url.Values{}
	}

	q.Filters.Add(key, value)

	return q
}

// Values converts QueryParams to url.Values. The Expanded convenience flag is
// rewritten to view=expanded; an explicit View always wins.
func (q *QueryParams) Values() url.Values {
	values := url.Values{}

	if q == nil {
		return values
	}

	for key, vals := range q.Filters {
		for _, val := range vals {
			values.Add(key, val)
		}
	}

	switch {
	case q.View != "":
		values.Set("view", string(q.View))
	case q.Expanded:
		values.Set("view", string(ViewExpanded))
	}

	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}

	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}

	return values
}

// effectiveView resolves the view the server would see, including the
// Expanded rewrite. Nil-safe.
func (q *QueryParams) effectiveView() View {
	if q == nil {
		return ""
	}

	if q.View != "" {
		return q.View
	}

	if q.Expanded {
		return ViewExpanded
	}

	return ""
}

// clone returns a copy the traversal engine can mutate without touching the
// caller's params. Nil-safe.
func (q *QueryParams) clone() *QueryParams {
	out := NewQueryParams()

	if q == nil {
		return out
	}

	out.View = q.View
	out.Offset = q.Offset
	out.Limit = q.Limit
	out.Expanded = q.Expanded

	for key, vals := range q.Filters {
		for _, val := range vals {
			out.Filters.Add(key, val)
		}
	}

	return out
}
