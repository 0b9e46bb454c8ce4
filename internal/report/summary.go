package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// FileSummary describes one loaded file.
type FileSummary struct {
	Name       string
	Color      string
	Rows       int
	Wavenumber string
	Intensity  string
	// Problem is empty for plottable files and holds the reason otherwise.
	Problem string
}

// Summary is the input to WriteSummary.
type Summary struct {
	Researcher   string
	GeneratedAt  time.Time
	Keyword      string
	Files        []FileSummary
	TotalRows    int
	FilteredRows int
	Columns      []string
}

// WriteSummary renders s as GitHub flavored Markdown.
func WriteSummary(w io.Writer, s Summary) error {
	md := markdown.NewMarkdown(w)

	title := "FTIR Results Summary"
	if s.Researcher != "" {
		title += ": " + s.Researcher
	}
	md.H1(title)
	md.PlainText("")

	keyword := s.Keyword
	if keyword == "" {
		keyword = "(none)"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", s.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Files", strconv.Itoa(len(s.Files))},
			{"Rows", strconv.Itoa(s.TotalRows)},
			{"Filter", keyword},
			{"Rows after filter", strconv.Itoa(s.FilteredRows)},
		},
	})
	md.PlainText("")

	writeFiles(md, s.Files)
	writeColumns(md, s.Columns)

	return md.Build()
}

func writeFiles(md *markdown.Markdown, files []FileSummary) {
	md.H2("Files")
	md.PlainText("")

	if len(files) == 0 {
		md.Note("No results uploaded yet.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(files))
	plottable := 0
	for i, f := range files {
		status := "plottable"
		if f.Problem != "" {
			status = f.Problem
		} else {
			plottable++
		}
		rows[i] = []string{
			"`" + f.Name + "`",
			f.Color,
			strconv.Itoa(f.Rows),
			orDash(f.Wavenumber),
			orDash(f.Intensity),
			status,
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"File", "Color", "Rows", "Wavenumber column", "%T column", "Status"},
		Rows:   rows,
	})
	md.PlainText("")

	if plottable < len(files) {
		md.Warningf("%d of %d file(s) could not be plotted.", len(files)-plottable, len(files))
		md.PlainText("")
	}

	if len(files) > 1 {
		chart := piechart.NewPieChart(
			io.Discard,
			piechart.WithTitle("Rows per file"),
			piechart.WithShowData(true),
		)
		for _, f := range files {
			chart.LabelAndIntValue(f.Name, uint64(f.Rows))
		}
		md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
		md.PlainText("")
	}
}

func writeColumns(md *markdown.Markdown, columns []string) {
	if len(columns) == 0 {
		return
	}
	md.H2("Columns")
	md.PlainText("")
	md.BulletList(columns...)
	md.PlainText("")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
