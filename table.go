package gotable

import "slices"

// Table is the view-state store of a data table. It owns the sort
// specification, the page window, a reference to the source dataset and the
// derived View, and broadcasts state changes through typed Signals.
//
// Mutations (SetData, SetSort, SetPage, SetAttributes) are cheap: they update
// the authoritative fields and mark the view stale. The sort-and-slice
// recomputation runs on Flush, so a batch of mutations costs a single
// recomputation.
//
// The table holds the dataset by reference and never mutates it. Only the
// external owner may replace or change the dataset, and signals either kind
// of change by calling SetData again.
type Table[T any] struct {
	data       []T
	sortSpec   SortSpec
	page       PageSpec
	attributes []string

	dirty bool
	view  View[T]

	sortKeysChanged  *Signal[[]string]
	sortOrderChanged *Signal[Order]
	pageChanged      *Signal[PageEvent]
	dataChanged      *Signal[View[T]]
}

// NewTable creates a table with default state: unsorted, page 1,
// DefaultRowsOnPage records per page, no projection, empty dataset. The
// fresh table is stale, so the first Flush broadcasts a view.
func NewTable[T any]() *Table[T] {
	return &Table[T]{
		sortSpec: SortSpec{Order: OrderAsc},
		page:     DefaultPageSpec(),
		dirty:    true,

		sortKeysChanged:  NewSignal[[]string](),
		sortOrderChanged: NewSignal[Order](),
		pageChanged:      NewSignal[PageEvent](),
		dataChanged:      NewSignal[View[T]](),
	}
}

// WithData sets the source dataset. See SetData.
func (t *Table[T]) WithData(rows []T) *Table[T] {
	t.SetData(rows)
	return t
}

// WithSort sets the sort specification. See SetSort.
func (t *Table[T]) WithSort(order Order, keys ...string) *Table[T] {
	t.SetSort(order, keys...)
	return t
}

// WithPage sets the page window. See SetPage.
func (t *Table[T]) WithPage(activePage, rowsOnPage int) *Table[T] {
	t.SetPage(activePage, rowsOnPage)
	return t
}

// WithAttributes sets the projection attributes. See SetAttributes.
func (t *Table[T]) WithAttributes(attributes ...string) *Table[T] {
	t.SetAttributes(attributes...)
	return t
}

// GetSort returns the current sort specification. No side effects.
func (t *Table[T]) GetSort() SortSpec {
	return t.sortSpec
}

// SetSort updates the sort specification. An invalid order is coerced to
// OrderAsc with a diagnostic, never rejected. Input identical to the current
// state is a no-op: nothing is marked stale and nothing is broadcast.
func (t *Table[T]) SetSort(order Order, keys ...string) {
	next := SortSpec{
		Keys:  keys,
		Order: NormalizeOrder(order),
	}
	if next.Equal(t.sortSpec) {
		return
	}

	t.sortSpec = next
	t.dirty = true

	t.sortKeysChanged.Emit(append([]string(nil), keys...))
	t.sortOrderChanged.Emit(next.Order)
}

// GetPage returns a snapshot of the current page state. DataLength is the
// raw dataset length.
func (t *Table[T]) GetPage() PageEvent {
	return PageEvent{
		ActivePage: t.page.ActivePage,
		RowsOnPage: t.page.RowsOnPage,
		DataLength: len(t.data),
	}
}

// SetPage updates the page window. Input identical to the current state is a
// no-op. When only the page size changes, the active page is recomputed so
// that the first visible record stays visible; an explicit active-page
// change uses the caller's value, clamped to the dataset.
func (t *Table[T]) SetPage(activePage, rowsOnPage int) {
	rowsOnPage = NormalizeRowsOnPage(rowsOnPage)
	if activePage == t.page.ActivePage && rowsOnPage == t.page.RowsOnPage {
		return
	}

	if activePage == t.page.ActivePage {
		activePage = PreservedActivePage(t.page, rowsOnPage)
	}

	t.page = ClampActivePage(len(t.data), PageSpec{
		ActivePage: activePage,
		RowsOnPage: rowsOnPage,
	})
	t.dirty = true

	t.pageChanged.Emit(t.GetPage())
}

// SetData replaces the source dataset reference and re-derives the
// dataset-length-dependent page clamp. The owner calls SetData again after
// any membership change; the table itself never mutates the slice.
func (t *Table[T]) SetData(rows []T) {
	t.data = rows
	t.dirty = true
	t.recalculatePage()
}

// recalculatePage clamps the active page to the current dataset and always
// broadcasts the resulting snapshot, even when the clamp changed nothing.
// Unlike SetPage there is no equality gate: paginator mirrors rely on the
// redundant snapshot to refresh their dataLength after the dataset grows or
// shrinks.
func (t *Table[T]) recalculatePage() {
	t.page = ClampActivePage(len(t.data), t.page)
	t.pageChanged.Emit(t.GetPage())
}

// GetAttributes returns the configured projection attributes, nil when
// projection is off.
func (t *Table[T]) GetAttributes() []string {
	return t.attributes
}

// SetAttributes configures projection: every row of the derived view is
// additionally mapped to a Record holding only the named attributes. No
// attributes turns projection off. Identical input is a no-op.
func (t *Table[T]) SetAttributes(attributes ...string) {
	if slices.Equal(attributes, t.attributes) {
		return
	}

	t.attributes = attributes
	t.dirty = true
}

// Len returns the raw dataset length.
func (t *Table[T]) Len() int {
	return len(t.data)
}

// Flush recomputes the derived view if any mutation marked it stale and
// broadcasts it. The host calls Flush on its own cadence, typically after a
// batch of mutations or before a render.
func (t *Table[T]) Flush() {
	if !t.dirty {
		return
	}

	t.view = fillData(t.data, t.sortSpec, t.page, t.attributes)
	t.dirty = false

	t.dataChanged.Emit(t.view)
}

// View returns the derived view, recomputing it first if stale.
func (t *Table[T]) View() View[T] {
	t.Flush()
	return t.view
}

// SortKeysChanged streams the sort keys on every effective SetSort.
func (t *Table[T]) SortKeysChanged() *Signal[[]string] {
	return t.sortKeysChanged
}

// SortOrderChanged streams the sort order on every effective SetSort.
func (t *Table[T]) SortOrderChanged() *Signal[Order] {
	return t.sortOrderChanged
}

// PageChanged streams page-state snapshots. Late subscribers immediately
// receive the latest snapshot.
func (t *Table[T]) PageChanged() *Signal[PageEvent] {
	return t.pageChanged
}

// DataChanged streams the derived view recomputed by Flush.
func (t *Table[T]) DataChanged() *Signal[View[T]] {
	return t.dataChanged
}
