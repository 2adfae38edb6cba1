package gotable

import "fmt"

// Paginator mirrors a table's page state for rendering page controls. It
// subscribes to the table's page-change stream at attachment and primes
// itself from GetPage, so the mirrored state is never stale on first render.
// The table stays the sole source of truth: SetPage and SetRowsOnPage only
// delegate, carrying the cached other half of the page window.
type Paginator[T any] struct {
	table *Table[T]

	activePage int
	rowsOnPage int
	dataLength int
	lastPage   int

	unsubscribe func()
}

// NewPaginator attaches a paginator to its table. The table reference is
// required; there is no ambient lookup.
func NewPaginator[T any](table *Table[T]) (*Paginator[T], error) {
	if table == nil {
		return nil, fmt.Errorf("cannot attach paginator: table is nil")
	}

	p := &Paginator[T]{table: table}
	p.unsubscribe = table.PageChanged().Subscribe(p.apply)
	p.apply(table.GetPage())

	return p, nil
}

// apply refreshes the mirrored fields from a snapshot. Redundant snapshots
// are expected after dataset changes and are harmless here.
func (p *Paginator[T]) apply(event PageEvent) {
	p.activePage = event.ActivePage
	p.rowsOnPage = event.RowsOnPage
	p.dataLength = event.DataLength
	p.lastPage = event.LastPage()
}

// Detach unsubscribes the paginator from its table. Further table changes no
// longer update the mirror.
func (p *Paginator[T]) Detach() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// SetPage requests a jump to page n, keeping the current page size.
func (p *Paginator[T]) SetPage(n int) {
	p.table.SetPage(n, p.rowsOnPage)
}

// SetRowsOnPage requests a page-size change, keeping the current page. The
// table re-derives the active page so the first visible record stays put.
func (p *Paginator[T]) SetRowsOnPage(n int) {
	p.table.SetPage(p.activePage, n)
}

func (p *Paginator[T]) ActivePage() int {
	return p.activePage
}

func (p *Paginator[T]) RowsOnPage() int {
	return p.rowsOnPage
}

func (p *Paginator[T]) DataLength() int {
	return p.dataLength
}

func (p *Paginator[T]) LastPage() int {
	return p.lastPage
}
