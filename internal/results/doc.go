// Package results keeps the files uploaded during one dashboard session.
//
// A Store maps an upload's file name to its parsed table and the plot
// color assigned when it was first ingested. Ingestion is keyed by name:
// a file that was already ingested is never parsed again, even when the
// same name is uploaded with different content. Colors are drawn from
// Palette in ingestion order and wrap around after the last entry.
//
// A Registry hands out one Store per session id.
package results
