// Package table holds the tabular model shared by the dashboard: parsing
// uploaded CSV and XLSX results, merging them into one combined table,
// canonicalising column labels, keyword filtering, and export.
//
// Cells are kept as strings exactly as they appeared in the upload. An
// empty string marks a missing value, both for blank cells in the source
// and for columns a table did not have when tables are combined.
package table
