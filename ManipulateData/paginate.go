package ManipulateData

// TotalPages returns ceil(totalItems / itemsPerPage).
func TotalPages(totalItems, itemsPerPage int) int {
	if itemsPerPage <= 0 {
		return 0
	}
	return (totalItems + itemsPerPage - 1) / itemsPerPage
}

// ClampPage bounds a 1-based page number to the valid range so a filter
// change that shrinks the result set never leaves the view on an empty page.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if totalPages > 0 && page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the 1-based page slice [(page-1)*size, page*size). The
// page number is clamped first, so the last page holds between 1 and size
// items whenever there is anything to show.
func Paginate[T any](items []T, page, itemsPerPage int) []T {
	if itemsPerPage <= 0 {
		return []T{}
	}
	page = ClampPage(page, TotalPages(len(items), itemsPerPage))

	start := (page - 1) * itemsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := start + itemsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
