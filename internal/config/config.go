package config

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
)

// Default configuration values.
const (
	// AppName names the XDG directories.
	AppName = "ftirdash"

	// DefaultListenAddress serves on all interfaces, port 8080.
	DefaultListenAddress = ":8080"

	// DefaultMaxUploadSize caps one upload request at 10MB.
	DefaultMaxUploadSize = 10 << 20

	// DefaultMaxRows caps the rows accepted per file.
	DefaultMaxRows = 10000

	// DefaultSessionCookie names the cookie that carries the session id.
	DefaultSessionCookie = "ftirdash_session"

	// DefaultSessionTTL drops sessions after 30 minutes without a request.
	DefaultSessionTTL = 30 * time.Minute

	// DefaultPlotWidth and DefaultPlotHeight size rendered charts in pixels.
	DefaultPlotWidth  = 800
	DefaultPlotHeight = 500

	// DefaultDotWidth is the radius of point markers on spectra.
	DefaultDotWidth = 3
)

// Profile is the researcher shown in the overview and contact sections.
type Profile struct {
	Name        string `yaml:"name" validate:"required"`
	Field       string `yaml:"field"`
	Institution string `yaml:"institution"`
	Email       string `yaml:"email" validate:"omitempty,email"`
}

// Plot sizes the rendered charts.
type Plot struct {
	Width    int     `yaml:"width" validate:"min=200,max=4000"`
	Height   int     `yaml:"height" validate:"min=150,max=4000"`
	DotWidth float64 `yaml:"dot_width" validate:"gte=0,lte=20"`
}

// Config holds every dashboard setting.
type Config struct {
	ListenAddress string        `yaml:"listen_address" validate:"required"`
	MaxUploadSize int64         `yaml:"max_upload_size" validate:"gt=0"`
	MaxRows       int           `yaml:"max_rows" validate:"gte=0"`
	SessionCookie string        `yaml:"session_cookie" validate:"required"`
	SessionTTL    time.Duration `yaml:"session_ttl" validate:"gte=0"` // zero never expires
	Verbose       bool          `yaml:"verbose"`
	Profile       Profile       `yaml:"profile"`
	Plot          Plot          `yaml:"plot"`
}

// NewConfig returns a Config filled with defaults.
func NewConfig() *Config {
	return &Config{
		ListenAddress: DefaultListenAddress,
		MaxUploadSize: DefaultMaxUploadSize,
		MaxRows:       DefaultMaxRows,
		SessionCookie: DefaultSessionCookie,
		SessionTTL:    DefaultSessionTTL,
		Profile: Profile{
			Name: "Researcher",
		},
		Plot: Plot{
			Width:    DefaultPlotWidth,
			Height:   DefaultPlotHeight,
			DotWidth: DefaultDotWidth,
		},
	}
}

// XDGConfigDir returns the per-user config directory, e.g. ~/.config/ftirdash.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors maps struct fields to the sentinel reported when they fail.
var fieldErrors = map[string]error{
	"ListenAddress": ErrInvalidListenAddress,
	"MaxUploadSize": ErrInvalidMaxUploadSize,
	"MaxRows":       ErrInvalidMaxRows,
	"SessionCookie": ErrInvalidSessionCookie,
	"SessionTTL":    ErrInvalidSessionTTL,
	"Name":          ErrMissingProfileName,
	"Email":         ErrInvalidEmail,
	"Width":         ErrInvalidPlotSize,
	"Height":        ErrInvalidPlotSize,
	"DotWidth":      ErrInvalidPlotSize,
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	if sentinel, ok := fieldErrors[verrs[0].StructField()]; ok {
		return sentinel
	}
	return verrs[0]
}
