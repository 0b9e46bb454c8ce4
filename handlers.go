// handlers.go
package main

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ftirdash/internal/plot"
	"ftirdash/internal/report"
	"ftirdash/internal/results"
	"ftirdash/internal/spectra"
	"ftirdash/internal/table"
)

const (
	filteredCSVName  = "filtered_results.csv"
	filteredXLSXName = "filtered_results.xlsx"
	summaryName      = "summary.md"
	trendFileName    = "Year_Trends.png"
)

func (a *app) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	_, store := a.currentStore(r)
	a.renderDashboard(w, a.buildDashboard(store, r.URL.Query().Get("q")))
}

func (a *app) renderDashboard(w http.ResponseWriter, page DashboardPage) {
	w.Header().Set("Cache-Control", "no-cache")
	if err := dashboardTemplate.Execute(w, page); err != nil {
		a.logger.Error("template error", zap.String("template", "dashboard"), zap.Error(err))
		http.Error(w, "Failed to display data", http.StatusInternalServerError)
	}
}

func (a *app) uploadHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(a.cfg.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "File too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Failed to read upload", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		http.Error(w, "No files uploaded", http.StatusBadRequest)
		return
	}

	id, store := a.session(w, r)
	outcomes := store.IngestBatch(readUploads(headers))
	page := a.buildDashboard(store, r.FormValue("q"))
	page.Uploads = a.recordOutcomes(id, outcomes)
	a.renderDashboard(w, page)
}

func (a *app) resetHandler(w http.ResponseWriter, r *http.Request) {
	if id, _ := a.currentStore(r); id != "" {
		a.sessions.Reset(id)
		a.logger.Info("session reset", zap.String("session", id))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// filteredResults returns the combined table filtered by the q parameter.
// It writes a 404 and reports false when nothing has been uploaded.
func (a *app) filteredResults(w http.ResponseWriter, r *http.Request) (*results.Store, table.Table, bool) {
	_, store := a.currentStore(r)
	if store.Len() == 0 {
		http.Error(w, "No results uploaded yet", http.StatusNotFound)
		return nil, table.Table{}, false
	}
	return store, table.Filter(store.Combined(), r.URL.Query().Get("q")), true
}

func (a *app) exportCSVHandler(w http.ResponseWriter, r *http.Request) {
	_, filtered, ok := a.filteredResults(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := table.WriteCSV(&buf, filtered); err != nil {
		a.logger.Error("csv export failed", zap.Error(err))
		http.Error(w, "Failed to export results", http.StatusInternalServerError)
		return
	}
	a.metrics.Exports.WithLabelValues("csv").Inc()
	a.sendFile(w, "text/csv; charset=utf-8", filteredCSVName, true, buf.Bytes())
}

func (a *app) exportXLSXHandler(w http.ResponseWriter, r *http.Request) {
	_, filtered, ok := a.filteredResults(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := table.WriteXLSX(&buf, filtered); err != nil {
		a.logger.Error("xlsx export failed", zap.Error(err))
		http.Error(w, "Failed to export results", http.StatusInternalServerError)
		return
	}
	a.metrics.Exports.WithLabelValues("xlsx").Inc()
	a.sendFile(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filteredXLSXName, true, buf.Bytes())
}

func (a *app) summaryHandler(w http.ResponseWriter, r *http.Request) {
	store, filtered, ok := a.filteredResults(w, r)
	if !ok {
		return
	}
	entries := store.Snapshot()
	combined := store.Combined()

	s := report.Summary{
		Researcher:   a.cfg.Profile.Name,
		GeneratedAt:  time.Now(),
		Keyword:      r.URL.Query().Get("q"),
		TotalRows:    combined.Len(),
		FilteredRows: filtered.Len(),
		Columns:      combined.Columns,
	}
	for _, e := range entries {
		fs := report.FileSummary{Name: e.Name, Color: e.Color, Rows: e.Table.Len()}
		det := a.detector.Detect(e.Table.Columns)
		fs.Wavenumber, _ = det.Wavenumber()
		fs.Intensity, _ = det.Intensity()
		if _, err := a.detector.Extract(e.Name, e.Color, e.Table); err != nil {
			fs.Problem = err.Error()
		}
		s.Files = append(s.Files, fs)
	}

	var buf bytes.Buffer
	if err := report.WriteSummary(&buf, s); err != nil {
		a.logger.Error("summary export failed", zap.Error(err))
		http.Error(w, "Failed to export summary", http.StatusInternalServerError)
		return
	}
	a.metrics.Exports.WithLabelValues("markdown").Inc()
	a.sendFile(w, "text/markdown; charset=utf-8", summaryName, true, buf.Bytes())
}

func (a *app) filePlotHandler(w http.ResponseWriter, r *http.Request) {
	_, store := a.currentStore(r)
	name := r.URL.Query().Get("name")
	entry, ok := store.Lookup(name)
	if !ok {
		http.Error(w, "Unknown file", http.StatusNotFound)
		return
	}

	s, err := a.detector.Extract(entry.Name, entry.Color, entry.Table)
	if err != nil {
		if errors.Is(err, spectra.ErrDetectionMiss) {
			a.metrics.DetectionMisses.Inc()
		}
		a.logger.Warn("cannot plot file", zap.String("file", name), zap.Error(err))
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	opts := a.plotOptions()
	var buf bytes.Buffer
	if err := plot.RenderSpectrum(&buf, s, opts); err != nil {
		a.logger.Warn("spectrum render failed", zap.String("file", name), zap.Error(err))
		if !a.placeholder(w, &buf, fmt.Sprintf("Cannot plot %s: %v", name, err)) {
			return
		}
	}
	a.metrics.PlotsRendered.WithLabelValues("file").Inc()
	a.sendFile(w, "image/png", plot.FileName(name), r.URL.Query().Get("download") != "", buf.Bytes())
}

func (a *app) combinedPlotHandler(w http.ResponseWriter, r *http.Request) {
	_, store := a.currentStore(r)
	entries := store.Snapshot()
	if len(entries) < 2 {
		http.Error(w, "The combined plot needs at least two files", http.StatusNotFound)
		return
	}

	var series []spectra.Spectrum
	for _, e := range entries {
		s, err := a.detector.Extract(e.Name, e.Color, e.Table)
		if err != nil {
			a.logger.Debug("file left out of combined plot", zap.String("file", e.Name), zap.Error(err))
			continue
		}
		series = append(series, s)
	}

	var buf bytes.Buffer
	if len(series) == 0 {
		if !a.placeholder(w, &buf, "No uploaded file has plottable FTIR columns") {
			return
		}
	} else if err := plot.RenderCombined(&buf, series, a.plotOptions()); err != nil {
		a.logger.Warn("combined render failed", zap.Error(err))
		if !a.placeholder(w, &buf, fmt.Sprintf("Cannot plot combined spectra: %v", err)) {
			return
		}
	}
	a.metrics.PlotsRendered.WithLabelValues("combined").Inc()
	a.sendFile(w, "image/png", plot.CombinedFileName, r.URL.Query().Get("download") != "", buf.Bytes())
}

func (a *app) trendHandler(w http.ResponseWriter, r *http.Request) {
	_, store := a.currentStore(r)
	counts, ok := table.ValueCounts(store.Combined(), "year")
	if !ok {
		http.Error(w, "The results do not have a 'Year' column to visualize trends.", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := plot.RenderTrend(&buf, counts, a.plotOptions()); err != nil {
		a.logger.Warn("trend render failed", zap.Error(err))
		if !a.placeholder(w, &buf, "No year values to chart") {
			return
		}
	}
	a.metrics.PlotsRendered.WithLabelValues("trend").Inc()
	a.sendFile(w, "image/png", trendFileName, false, buf.Bytes())
}

func (a *app) calculateHandler(w http.ResponseWriter, r *http.Request) {
	_, store := a.currentStore(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	cols := r.Form["cols"]
	op := r.FormValue("operation")
	keyword := r.FormValue("q")

	if len(cols) == 0 || op == "" || store.Len() == 0 {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	filtered := table.Filter(store.Combined(), keyword)
	var calcResults []CalculationResult
	for _, colName := range cols {
		colIndex := filtered.ColumnIndex(colName)
		if colIndex == -1 {
			continue
		}
		result, err := performCalculation(filtered, colIndex, op)
		if err != nil {
			a.logger.Debug("calculation skipped", zap.String("column", colName), zap.String("operation", op), zap.Error(err))
			continue
		}
		calcResults = append(calcResults, CalculationResult{Col: colName, Value: result})
	}

	if len(calcResults) == 0 {
		http.Error(w, "No valid calculations", http.StatusBadRequest)
		return
	}

	page := ResultPage{
		Operation: cases.Title(language.English).String(op),
		Results:   calcResults,
		Keyword:   keyword,
		RowCount:  filtered.Len(),
		Timestamp: time.Now().Format("January 2, 2006 at 3:04 PM"),
	}
	if err := resultTemplate.Execute(w, page); err != nil {
		a.logger.Error("template error", zap.String("template", "results"), zap.Error(err))
		http.Error(w, "Failed to display results", http.StatusInternalServerError)
	}
}

// placeholder replaces buf with a message image. It writes a 500 and
// reports false when even that fails.
func (a *app) placeholder(w http.ResponseWriter, buf *bytes.Buffer, message string) bool {
	buf.Reset()
	if err := plot.Placeholder(buf, a.plotOptions(), message); err != nil {
		a.logger.Error("placeholder render failed", zap.Error(err))
		http.Error(w, "Failed to render image", http.StatusInternalServerError)
		return false
	}
	return true
}

func (a *app) sendFile(w http.ResponseWriter, contentType, name string, download bool, body []byte) {
	disposition := "inline"
	if download {
		disposition = "attachment"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": name}))
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := w.Write(body); err != nil {
		a.logger.Debug("write response failed", zap.String("file", name), zap.Error(err))
	}
}
