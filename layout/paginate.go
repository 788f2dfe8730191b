package layout

// Paginate splits items into consecutive, order-preserving pages of perPage
// items each. The last page may be shorter. Zero items yields zero pages.
// perPage must be positive; callers validate the grid before paginating
func Paginate[T any](items []T, perPage int) [][]T {
	var pages [][]T
	for i := 0; i < len(items); i += perPage {
		end := i + perPage
		if end > len(items) {
			end = len(items)
		}
		pages = append(pages, items[i:end])
	}
	return pages
}
