// types.go
package main

import "ftirdash/internal/config"

type DisplayData struct {
	Headers     []string
	Rows        [][]string
	NumericCols []int
	RowCount    int
	TotalRows   int
}

type FileView struct {
	Name         string
	Color        string
	Rows         int
	Plottable    bool
	Problem      string
	PlotURL      string
	DownloadURL  string
	DownloadName string
}

type UploadOutcome struct {
	Name   string
	Status string
	Color  string
	Rows   int
	Error  string
}

type DashboardPage struct {
	Profile       config.Profile
	Keyword       string
	MaxUploadSize int64
	Uploads       []UploadOutcome
	HasResults    bool
	Files         []FileView
	RawColumns    []string
	Table         DisplayData
	HasYearColumn bool
	ShowCombined  bool
	CombinedName  string
	Operations    []string
}

type CalculationResult struct {
	Col   string
	Value float64
}

type ResultPage struct {
	Operation string
	Results   []CalculationResult
	Keyword   string
	RowCount  int
	Timestamp string
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type FileSummary struct {
	Name             string   `json:"name"`
	Color            string   `json:"color,omitempty"`
	Rows             int      `json:"rows"`
	Columns          []string `json:"columns"`
	WavenumberColumn string   `json:"wavenumber_column,omitempty"`
	IntensityColumn  string   `json:"intensity_column,omitempty"`
	Plottable        bool     `json:"plottable"`
	Problem          string   `json:"problem,omitempty"`
}
