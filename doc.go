package gotable

// Package gotable provides client-side sorting and pagination primitives for
// in-memory datasets.
//
// Overview
//
// gotable keeps the authoritative view state of a data table: the sort
// specification, the page window and the derived visible slice. Mutations are
// cheap and synchronous; the expensive sort-and-slice recomputation is
// deferred until Flush, so several mutations within one host tick collapse
// into a single recomputation.
//
// Key concepts
//   - Table: the view-state store. Owns SortSpec, PageSpec and the derived
//     View, and broadcasts changes through typed Signals.
//   - Paginator: a read-model for page controls. Mirrors the table's page
//     snapshots and delegates page mutations back to the table.
//   - Resolve: dotted-path access into arbitrary records, used by sorting
//     and projection.
//
// See README for examples and usage details.
