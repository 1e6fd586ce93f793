package search

// PageSize is fixed for every worker listing call.
const PageSize = 20

// ClampPage normalises a 1-based page number.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// BackendIndex converts a 1-based page into the backend's 0-based index.
func BackendIndex(page int) int {
	return ClampPage(page) - 1
}

// HasMore guesses whether another page exists from the size of the current
// one. A full last page is reported as having more.
func HasMore(n, pageSize int) bool {
	return pageSize > 0 && n == pageSize
}
