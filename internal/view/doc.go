// Package view derives the rendered employee table page from the record
// store and the user's view state.
//
// Controller follows a state.Store and holds a State (filter text, sort
// column and direction, page index, page size). Whenever any of these
// inputs changes it recomputes the page from scratch:
//
//  1. Filter: keep records whose lowercased id+name+salary text contains
//     the lowercased filter. Age is not searched.
//  2. Sort: when a column and direction are set, compare that column
//     numerically if both values parse as numbers, as text otherwise.
//     The sort is not stable.
//  3. Paginate: take up to PageSize records from PageIndex*PageSize. An
//     index past the last page yields an empty page; it is not clamped.
//
// Changing the filter always returns to the first page. None of the
// operations fail.
//
// Derive is the pure function behind the controller and can be used on its
// own.
package view
