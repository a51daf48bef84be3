package posts

// DefaultPageSize is the page size of post and nippo listings.
const DefaultPageSize = 10

// ClampPage normalizes a 1-based page number; zero and negative pages
// read as the first page.
func ClampPage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// PageOffset converts a 1-based page number into a row offset.
func PageOffset(page, pageSize int) int {
	return (ClampPage(page) - 1) * pageSize
}

// TotalPages computes the page count shown by list views.
// Historical formula: integer division plus one, which reports one
// extra empty page when count divides pageSize evenly. Callers depend
// on the exact values, so the formula stays as-is.
func TotalPages(count, pageSize int) int {
	return count/pageSize + 1
}

// newListing assembles the pagination frame around one page of posts.
func newListing(items []*Post, count, page, pageSize int) *Listing {
	page = ClampPage(page)
	return &Listing{
		Posts:       items,
		TotalCount:  count,
		CurrentPage: page,
		TotalPages:  TotalPages(count, pageSize),
		NextPage:    page + 1,
		PrevPage:    page - 1,
	}
}
