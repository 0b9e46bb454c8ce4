// Package report writes a Markdown summary of a dashboard session: which
// files are loaded, the color each was given, how many rows it holds and
// whether its spectrum could be plotted.
package report
