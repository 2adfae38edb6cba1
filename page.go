package gotable

const (
	DefaultActivePage = 1
	DefaultRowsOnPage = 1000
)

// PageSpec defines the requested page window over the dataset.
type PageSpec struct {
	// ActivePage is the 1-based index of the displayed page.
	ActivePage int
	// RowsOnPage is the number of records per page.
	RowsOnPage int
}

func DefaultPageSpec() PageSpec {
	return PageSpec{
		ActivePage: DefaultActivePage,
		RowsOnPage: DefaultRowsOnPage,
	}
}

// Offset returns the 0-based index of the first record in the page window.
func (p PageSpec) Offset() int {
	return (p.ActivePage - 1) * p.RowsOnPage
}

func IsNormalizedRowsOnPage(rowsOnPage int) (int, bool) {
	if rowsOnPage <= 0 {
		return DefaultRowsOnPage, false
	}

	return rowsOnPage, true
}

func NormalizeRowsOnPage(rowsOnPage int) int {
	ret, _ := IsNormalizedRowsOnPage(rowsOnPage)
	return ret
}

// LastPage returns the index of the last page of a dataset of dataLength
// records, never less than 1. An empty dataset still has page 1.
func LastPage(dataLength, rowsOnPage int) int {
	rowsOnPage = NormalizeRowsOnPage(rowsOnPage)

	last := (dataLength + rowsOnPage - 1) / rowsOnPage
	if last < 1 {
		last = 1
	}

	return last
}

// ClampActivePage bounds the active page into [1, LastPage]. Out-of-range
// pages are silently clamped, never rejected.
func ClampActivePage(dataLength int, page PageSpec) PageSpec {
	page.RowsOnPage = NormalizeRowsOnPage(page.RowsOnPage)

	last := LastPage(dataLength, page.RowsOnPage)
	if page.ActivePage > last {
		page.ActivePage = last
	}
	if page.ActivePage < 1 {
		page.ActivePage = 1
	}

	return page
}

// PreservedActivePage returns the active page that keeps the first visible
// record of the old window visible after a page-size change.
//
// Example: ActivePage=3, RowsOnPage=10 shows records 21..30; changing the
// page size to 20 yields page 2, which still starts at record 21.
func PreservedActivePage(old PageSpec, newRowsOnPage int) int {
	newRowsOnPage = NormalizeRowsOnPage(newRowsOnPage)

	firstRowOnPage := old.Offset() + 1
	return (firstRowOnPage + newRowsOnPage - 1) / newRowsOnPage
}

// PageEvent is a value snapshot of the table's page state, broadcast to
// subscribers on every page change.
type PageEvent struct {
	ActivePage int
	RowsOnPage int
	// DataLength is the full dataset length, before pagination.
	DataLength int
}

// LastPage returns the index of the last page described by the snapshot.
func (e PageEvent) LastPage() int {
	return LastPage(e.DataLength, e.RowsOnPage)
}
