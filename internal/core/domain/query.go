package domain

// OrderListQuery carries the paging, sorting and filtering parameters for
// order list retrieval. Filter holds a textual predicate in the dashboard
// filter syntax, e.g. `client~"acme" && approved=true`.
type OrderListQuery struct {
	Page    int
	PerPage int
	Sort    string
	Filter  string
}

// Offset returns the row offset implied by Page and PerPage.
func (q OrderListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PerPage
}
