// Package dataset provides the tabular data charts are drawn from.
//
// # Overview
//
// A [Dataset] is a column-oriented table: rows are entities such as players,
// columns are named statistics (wOBA, xwOBA, PA, Team, ...). Columns keep
// their textual form and are parsed to numbers on demand, so the same table
// can feed a numeric axis and a hover label.
//
// Chart builders only read datasets; nothing in this module mutates a table
// it did not create.
//
// # Missing Values
//
// Empty cells and the usual spreadsheet placeholders (NA, N/A, NaN, null)
// read as NaN. Summary statistics skip them, matching how baseball exports
// are normally analysed.
//
// # Import
//
// [ReadCSV] and [ReadXLSX] decode tables from readers; [Load] picks the
// decoder from a file extension:
//
//	ds, err := dataset.Load("batting_2024.csv", dataset.LoadOptions{})
//	mean, err := ds.Mean("wOBA")
//	p90, err := ds.Quantile("xwOBA", 0.9)
package dataset
