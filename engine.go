package gotable

import (
	"sort"

	"github.com/samber/lo"
)

// View is the derived projection of the source dataset: the sorted, paged
// slice plus the full pre-pagination length. It is replaced wholesale on
// every recomputation, never mutated in place.
type View[T any] struct {
	// Rows is the visible slice after sorting and paging.
	Rows []T
	// Projected carries attribute-projected rows when the table is
	// configured with projection attributes, nil otherwise.
	Projected []Record
	// Total is the full dataset length before pagination. Consumers derive
	// the total page count from it.
	Total int
}

// fillData computes the derived view: stable sort, crop to the page window,
// project configured attributes. The source slice is never mutated.
func fillData[T any](data []T, sortSpec SortSpec, page PageSpec, attributes []string) View[T] {
	rows := cropRows(sortRows(data, sortSpec), page)

	view := View[T]{
		Rows:  rows,
		Total: len(data),
	}
	if len(attributes) > 0 {
		view.Projected = projectRows(rows, attributes)
	}

	return view
}

// sortRows returns a sorted copy of data. The sort is stable: ties keep their
// source order. An unsorted spec returns data as-is.
func sortRows[T any](data []T, spec SortSpec) []T {
	if !spec.IsSorted() {
		return data
	}

	rows := make([]T, len(data))
	copy(rows, data)

	fold := spec.caseFold()
	sort.SliceStable(rows, func(i, j int) bool {
		for _, key := range spec.Keys {
			vi, _ := Resolve(rows[i], key)
			vj, _ := Resolve(rows[j], key)

			cmp := compareValues(vi, vj, fold)
			if cmp == 0 {
				continue
			}
			if spec.Order == OrderDesc {
				return cmp > 0
			}

			return cmp < 0
		}

		return false
	})

	return rows
}

// cropRows bounds the page window to the dataset. A window past the end
// yields an empty slice, not an error.
func cropRows[T any](rows []T, page PageSpec) []T {
	start := page.Offset()
	if start < 0 || start >= len(rows) {
		return []T{}
	}

	end := start + page.RowsOnPage
	if end > len(rows) {
		end = len(rows)
	}

	return rows[start:end]
}

// projectRows maps each row to a Record holding only the named attributes.
// Attributes that do not resolve on a row are omitted from its Record.
func projectRows[T any](rows []T, attributes []string) []Record {
	return lo.Map(rows, func(row T, _ int) Record {
		record := make(Record, len(attributes))
		for _, attribute := range attributes {
			if value, ok := Resolve(row, attribute); ok {
				record[attribute] = value
			}
		}

		return record
	})
}
