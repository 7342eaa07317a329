package tabulate

import (
	"fmt"
	"strings"
)

type modeKind int

const (
	modeInvalid modeKind = iota
	modeDisabled
	modeEnabled
	modeBrief
	modeExtend
	modeCustom
)

// Mode selects how records are turned into a table.
// The zero Mode is invalid.
type Mode struct {
	kind   modeKind
	config Config
}

// Disabled returns the mode that passes input through without rendering.
func Disabled() Mode { return Mode{kind: modeDisabled} }

// Enabled returns the mode that renders with the requested headers.
func Enabled() Mode { return Mode{kind: modeEnabled} }

// Brief returns the mode that renders the fixed brief preset.
func Brief() Mode { return Mode{kind: modeBrief} }

// Extend returns the mode that expands list-valued results into one row
// per element before rendering.
func Extend() Mode { return Mode{kind: modeExtend} }

// Custom returns the mode that renders with cfg. When cfg has no headers,
// the requested headers are used.
func Custom(cfg Config) Mode { return Mode{kind: modeCustom, config: cfg} }

// IsDisabled reports whether m passes input through unchanged.
func (m Mode) IsDisabled() bool { return m.kind == modeDisabled }

// Config returns the configuration of a Custom mode.
func (m Mode) Config() (Config, bool) {
	if m.kind != modeCustom {
		return Config{}, false
	}
	return m.config, true
}

// String returns the mode name.
func (m Mode) String() string {
	switch m.kind {
	case modeDisabled:
		return "disabled"
	case modeEnabled:
		return "enabled"
	case modeBrief:
		return "brief"
	case modeExtend:
		return "extend"
	case modeCustom:
		return "custom"
	default:
		return "invalid"
	}
}

// ParseMode parses a mode name. "true" and "false" are accepted as aliases
// of enabled and disabled. Custom modes cannot be parsed; build them with
// Custom.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "false", "disabled":
		return Disabled(), nil
	case "true", "enabled":
		return Enabled(), nil
	case "brief":
		return Brief(), nil
	case "extend":
		return Extend(), nil
	default:
		return Mode{}, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
}
