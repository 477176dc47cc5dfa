package rest

// Pagination is the common page/limit pair accepted by list endpoints.
// Limit is a pointer so an explicit `limit=0` is distinguishable from an
// absent parameter: absent falls back to the endpoint default, explicit
// sub-1 values are clamped to 1.
type Pagination struct {
	Page  int  `form:"page"`
	Limit *int `form:"limit"`
}

// Window is a sanitized page/limit pair ready to drive a store query.
type Window struct {
	Page  int
	Limit int
}

// Sanitize clamps the pagination to sane bounds: page is at least 1,
// limit falls back to defaultLimit when absent and is clamped to
// [1, maxLimit] when provided.
func (p Pagination) Sanitize(defaultLimit, maxLimit int) Window {
	w := Window{Page: p.Page, Limit: defaultLimit}
	if w.Page < 1 {
		w.Page = 1
	}
	if p.Limit != nil {
		w.Limit = *p.Limit
	}
	if w.Limit < 1 {
		w.Limit = 1
	}
	if w.Limit > maxLimit {
		w.Limit = maxLimit
	}
	return w
}

// Skip returns the document offset of the current page.
func (w Window) Skip() int64 {
	return int64(w.Page-1) * int64(w.Limit)
}

// Paged is the envelope of paginated list responses.
// Total counts all documents matching the filter before pagination.
type Paged struct {
	Items any   `json:"items"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// OkResponse is returned by delete endpoints.
type OkResponse struct {
	Ok bool `json:"ok"`
}
