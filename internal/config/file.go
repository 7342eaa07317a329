package config

import (
	"strings"

	"github.com/nao1215/taskfmt/internal/tabulate"
)

// Profile is a named table configuration in the configuration file.
type Profile struct {
	// TableFormat overrides the table style.
	TableFormat string `yaml:"table_format,omitempty"`

	// ShowIndex overrides the index column setting. Nil keeps the
	// inherited value.
	ShowIndex *bool `yaml:"show_index,omitempty"`

	// Headers lists the columns. A single "keys" entry selects the keys
	// sentinel; no entries keep the headers given on the command line.
	Headers []string `yaml:"headers,omitempty"`

	// HeadersExclude lists fields dropped from every record.
	HeadersExclude []string `yaml:"headers_exclude,omitempty"`
}

// HeadersString returns Headers in command line form.
func (p Profile) HeadersString() string {
	return strings.Join(p.Headers, ",")
}

// HeadersExcludeString returns HeadersExclude in command line form.
func (p Profile) HeadersExcludeString() string {
	return strings.Join(p.HeadersExclude, ",")
}

// TableConfig converts the profile into a renderer configuration.
func (p Profile) TableConfig() tabulate.Config {
	cfg := tabulate.Config{TableFormat: p.TableFormat}
	if len(p.Headers) > 0 {
		cfg.Headers = tabulate.ParseHeaders(p.HeadersString())
	}
	if p.ShowIndex != nil {
		cfg.ShowIndex = *p.ShowIndex
	}
	return cfg
}

// File represents the structure of the .taskfmt configuration file.
type File struct {
	// Defaults applies to every run unless overridden on the command line
	// or by a profile.
	Defaults Profile `yaml:"defaults,omitempty"`

	// Profiles maps profile names to table configurations.
	Profiles map[string]Profile `yaml:"profiles,omitempty"`
}

// GetProfile returns the named profile merged over the defaults.
// It reports false when the profile does not exist.
func (f *File) GetProfile(name string) (Profile, bool) {
	if f == nil {
		return Profile{}, false
	}
	p, ok := f.Profiles[name]
	if !ok {
		return Profile{}, false
	}

	result := f.Defaults
	if p.TableFormat != "" {
		result.TableFormat = p.TableFormat
	}
	if p.ShowIndex != nil {
		result.ShowIndex = p.ShowIndex
	}
	if len(p.Headers) > 0 {
		result.Headers = p.Headers
	}
	if len(p.HeadersExclude) > 0 {
		result.HeadersExclude = p.HeadersExclude
	}
	return result, true
}

// ProfileNames returns the defined profile names.
func (f *File) ProfileNames() []string {
	if f == nil {
		return nil
	}
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	return names
}
