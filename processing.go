// processing.go
package main

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"

	"go.uber.org/zap"

	"ftirdash/internal/plot"
	"ftirdash/internal/results"
	"ftirdash/internal/table"
)

// readUploads reads every multipart file into memory. A file that cannot be
// read is passed on with Err set so the store reports it as failed.
func readUploads(headers []*multipart.FileHeader) []results.Upload {
	uploads := make([]results.Upload, 0, len(headers))
	for _, h := range headers {
		u := results.Upload{Name: h.Filename}
		f, err := h.Open()
		if err != nil {
			u.Err = fmt.Errorf("open upload: %w", err)
			uploads = append(uploads, u)
			continue
		}
		u.Data, err = io.ReadAll(f)
		f.Close()
		if err != nil {
			u.Err = fmt.Errorf("read upload: %w", err)
		}
		uploads = append(uploads, u)
	}
	return uploads
}

// recordOutcomes logs and counts every batch outcome and turns it into a
// view row.
func (a *app) recordOutcomes(session string, outcomes []results.Outcome) []UploadOutcome {
	views := make([]UploadOutcome, 0, len(outcomes))
	for _, o := range outcomes {
		v := UploadOutcome{Name: o.Name, Status: o.Status.String(), Color: o.Color, Rows: o.Rows}
		switch o.Status {
		case results.StatusIngested:
			a.metrics.FilesIngested.Inc()
			a.logger.Info("file ingested",
				zap.String("session", session),
				zap.String("file", o.Name),
				zap.String("color", o.Color),
				zap.Int("rows", o.Rows),
			)
		case results.StatusDuplicate:
			a.metrics.DuplicateFiles.Inc()
			a.logger.Debug("duplicate file skipped", zap.String("session", session), zap.String("file", o.Name))
		case results.StatusFailed:
			a.metrics.ParseErrors.Inc()
			v.Error = o.Err.Error()
			a.logger.Warn("failed to parse upload",
				zap.String("session", session),
				zap.String("file", o.Name),
				zap.Error(o.Err),
			)
		}
		views = append(views, v)
	}
	return views
}

// buildDashboard assembles the page for the store's current contents.
func (a *app) buildDashboard(store *results.Store, keyword string) DashboardPage {
	page := DashboardPage{
		Profile:       a.cfg.Profile,
		Keyword:       keyword,
		MaxUploadSize: a.cfg.MaxUploadSize,
		Operations:    operations,
		CombinedName:  plot.CombinedFileName,
	}

	entries := store.Snapshot()
	if len(entries) == 0 {
		return page
	}
	page.HasResults = true

	tables := make([]table.Table, len(entries))
	for i, e := range entries {
		tables[i] = e.Table
	}
	raw := table.Concat(tables...)
	combined := table.NormalizeColumns(raw)
	filtered := table.Filter(combined, keyword)

	page.RawColumns = raw.Columns
	page.Table = DisplayData{
		Headers:     filtered.Columns,
		Rows:        filtered.Rows,
		NumericCols: detectNumericColumns(filtered),
		RowCount:    filtered.Len(),
		TotalRows:   combined.Len(),
	}
	page.HasYearColumn = combined.ColumnIndex("year") >= 0
	page.Files = a.fileViews(entries)
	page.ShowCombined = len(entries) > 1
	return page
}

func (a *app) fileViews(entries []results.Entry) []FileView {
	views := make([]FileView, 0, len(entries))
	for _, e := range entries {
		v := FileView{
			Name:         e.Name,
			Color:        e.Color,
			Rows:         e.Table.Len(),
			PlotURL:      "/plots/file?name=" + url.QueryEscape(e.Name),
			DownloadURL:  "/plots/file?download=1&name=" + url.QueryEscape(e.Name),
			DownloadName: plot.FileName(e.Name),
		}
		if _, err := a.detector.Extract(e.Name, e.Color, e.Table); err != nil {
			v.Problem = err.Error()
		} else {
			v.Plottable = true
		}
		views = append(views, v)
	}
	return views
}

func detectNumericColumns(data table.Table) []int {
	var numericCols []int
	for col := range data.Columns {
		if isColumnNumeric(data, col) {
			numericCols = append(numericCols, col)
		}
	}
	return numericCols
}

// isColumnNumeric reports whether at least 80% of the non-empty cells in
// the column parse as numbers.
func isColumnNumeric(data table.Table, colIndex int) bool {
	numericCount := 0
	totalCount := 0
	for _, row := range data.Rows {
		if colIndex >= len(row) || row[colIndex] == "" {
			continue
		}
		totalCount++
		if _, ok := table.ParseNumber(row[colIndex]); ok {
			numericCount++
		}
	}
	if totalCount == 0 {
		return false
	}
	return float64(numericCount)/float64(totalCount) >= 0.8
}
