// api.go
package main

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"ftirdash/internal/table"
)

const version = "1.0.0"

func (a *app) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   version,
		"sessions":  a.sessions.Len(),
	})
}

// resultsAPIHandler lists the files held by the caller's session.
func (a *app) resultsAPIHandler(w http.ResponseWriter, r *http.Request) {
	_, store := a.currentStore(r)
	entries := store.Snapshot()
	files := make([]FileSummary, 0, len(entries))
	for _, e := range entries {
		files = append(files, a.summarize(e.Name, e.Color, e.Table))
	}
	a.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: files})
}

// validateFileHandler parses the "file" field without storing it and
// reports whether it can be plotted.
func (a *app) validateFileHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(a.cfg.MaxUploadSize); err != nil {
		a.writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: "File too large or malformed upload"})
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		a.writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: "Failed to read file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		a.writeJSON(w, http.StatusBadRequest, APIResponse{Success: false, Error: "Failed to read file"})
		return
	}

	t, err := table.Parse(header.Filename, data, a.cfg.MaxRows)
	if err != nil {
		a.writeJSON(w, http.StatusUnprocessableEntity, APIResponse{Success: false, Error: err.Error()})
		return
	}
	a.writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: a.summarize(header.Filename, "", t)})
}

func (a *app) summarize(name, color string, t table.Table) FileSummary {
	fs := FileSummary{
		Name:    name,
		Color:   color,
		Rows:    t.Len(),
		Columns: t.Columns,
	}
	det := a.detector.Detect(t.Columns)
	fs.WavenumberColumn, _ = det.Wavenumber()
	fs.IntensityColumn, _ = det.Intensity()
	if _, err := a.detector.Extract(name, color, t); err != nil {
		fs.Problem = err.Error()
	} else {
		fs.Plottable = true
	}
	return fs
}

func (a *app) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Error("failed to encode response", zap.Error(err))
	}
}
