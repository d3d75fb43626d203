package dashboard

// PageSize is the fixed number of rows per listing page
const PageSize = 6

// PageRequest carries a free-text filter and a 1-based page index in the
// form the remote invoice service understands
type PageRequest struct {
	Query string
	Page  int
}

// PlanQuery turns UI-level listing arguments into a page request.
// Page values below 1 are treated as the first page.
func PlanQuery(query string, page int) PageRequest {
	if page < 1 {
		page = 1
	}
	return PageRequest{Query: query, Page: page}
}

// TotalPages computes the page count for a row count. Zero rows yield
// zero pages; callers must treat that as "no results", not an error.
func TotalPages(rowCount int64) int {
	if rowCount <= 0 {
		return 0
	}
	return int((rowCount + PageSize - 1) / PageSize)
}
