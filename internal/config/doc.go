// Package config holds the dashboard settings: where to listen, upload
// limits, chart size and the researcher profile shown on the page.
//
// Settings start from NewConfig defaults and may be overlaid by a YAML
// file. FindConfigFile looks for an explicit path first, then
// ftirdash.yaml in the working directory, then config.yaml under the XDG
// config directory.
package config
