package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/taskfmt/internal/input"
	"github.com/nao1215/taskfmt/internal/report"
	"github.com/nao1215/taskfmt/internal/tabulate"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "taskfmt"

	// DefaultMode renders tables with the requested headers.
	DefaultMode = "true"

	// DefaultHeaders lets the table columns follow the record keys.
	DefaultHeaders = tabulate.KeysSentinel

	// DefaultTableFormat underlines the header and draws no borders.
	DefaultTableFormat = report.FormatSimple

	// OutputJSON writes serialized results as JSON.
	OutputJSON = "json"

	// OutputYAML writes serialized results as YAML.
	OutputYAML = "yaml"

	// DefaultOutputFormat is the serialized output format.
	DefaultOutputFormat = OutputJSON

	// DefaultConcurrency is the number of input files decoded at once.
	DefaultConcurrency = input.DefaultConcurrency
)

// Config holds all configuration options for taskfmt.
// It is populated from CLI flags and the configuration file and passed to
// the commands explicitly rather than kept in global state.
type Config struct {
	// Inputs lists the files to read. "-" reads standard input.
	Inputs []string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// File is the loaded configuration file, nil when none was found.
	File *File

	// Profile names the table profile from File to render with.
	Profile string

	// Mode is the table mode name, see tabulate.ParseMode.
	Mode string

	// Headers is a comma-separated column list or "keys".
	Headers string

	// HeadersExclude is a comma-separated list of fields to drop.
	HeadersExclude string

	// TableFormat is the table style, see report.Formats.
	TableFormat string

	// ShowIndex adds a row number column.
	ShowIndex bool

	// AddDetails adds diff, changed, failed and exception to serialized
	// records.
	AddDetails bool

	// ToDict selects the dictionary shape for serialized output.
	ToDict bool

	// OutputFormat is json or yaml.
	OutputFormat string

	// OutputFile is the destination file. Empty writes to stdout.
	OutputFile string

	// Concurrency is the number of input files decoded at once.
	Concurrency int
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:         DefaultMode,
		Headers:      DefaultHeaders,
		TableFormat:  DefaultTableFormat,
		ToDict:       true,
		OutputFormat: DefaultOutputFormat,
		Concurrency:  DefaultConcurrency,
	}
}

// XDGConfigDir returns the XDG config directory for taskfmt.
// On Linux: ~/.config/taskfmt
// On macOS: ~/Library/Application Support/taskfmt
// On Windows: %APPDATA%\taskfmt
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		return ErrNoInput
	}

	if _, err := tabulate.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}

	if c.OutputFormat != OutputJSON && c.OutputFormat != OutputYAML {
		return fmt.Errorf("%w: %q", ErrInvalidOutputFormat, c.OutputFormat)
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.Profile != "" {
		if _, ok := c.File.GetProfile(c.Profile); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownProfile, c.Profile)
		}
	}

	return nil
}

// ApplyDefaults fills options from the file's defaults section.
// changed reports whether the user set an option on the command line;
// those options are left alone.
func (c *Config) ApplyDefaults(changed func(option string) bool) {
	if c.File == nil {
		return
	}
	d := c.File.Defaults

	if d.TableFormat != "" && !changed("format") {
		c.TableFormat = d.TableFormat
	}
	if d.ShowIndex != nil && !changed("show-index") {
		c.ShowIndex = *d.ShowIndex
	}
	if len(d.Headers) > 0 && !changed("headers") {
		c.Headers = d.HeadersString()
	}
	if len(d.HeadersExclude) > 0 && !changed("exclude") {
		c.HeadersExclude = d.HeadersExcludeString()
	}
}

// Request builds the tabulate request. A selected profile becomes a custom
// mode whose exclusions are added to the command line ones.
func (c *Config) Request() (tabulate.Request, error) {
	mode, err := tabulate.ParseMode(c.Mode)
	if err != nil {
		return tabulate.Request{}, fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}

	req := tabulate.Request{
		Mode:           mode,
		Headers:        tabulate.ParseHeaders(c.Headers),
		HeadersExclude: tabulate.ParseFieldList(c.HeadersExclude),
		TableFormat:    c.TableFormat,
		ShowIndex:      c.ShowIndex,
	}

	if c.Profile == "" || mode.IsDisabled() {
		return req, nil
	}

	p, ok := c.File.GetProfile(c.Profile)
	if !ok {
		return tabulate.Request{}, fmt.Errorf("%w: %q", ErrUnknownProfile, c.Profile)
	}
	req.Mode = tabulate.Custom(p.TableConfig())
	req.HeadersExclude = appendMissing(req.HeadersExclude, p.HeadersExclude...)
	return req, nil
}

// appendMissing appends the values not yet in list.
func appendMissing(list []string, values ...string) []string {
	seen := make(map[string]struct{}, len(list))
	for _, v := range list {
		seen[v] = struct{}{}
	}
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		list = append(list, v)
	}
	return list
}
