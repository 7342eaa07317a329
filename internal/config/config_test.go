package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/taskfmt/internal/tabulate"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default Mode is true", func(t *testing.T) {
		t.Parallel()
		if cfg.Mode != "true" {
			t.Errorf("expected Mode to be 'true', got '%s'", cfg.Mode)
		}
	})

	t.Run("default Headers is keys", func(t *testing.T) {
		t.Parallel()
		if cfg.Headers != "keys" {
			t.Errorf("expected Headers to be 'keys', got '%s'", cfg.Headers)
		}
	})

	t.Run("default TableFormat is simple", func(t *testing.T) {
		t.Parallel()
		if cfg.TableFormat != "simple" {
			t.Errorf("expected TableFormat to be 'simple', got '%s'", cfg.TableFormat)
		}
	})

	t.Run("default output is dictionary JSON without details", func(t *testing.T) {
		t.Parallel()
		if !cfg.ToDict || cfg.AddDetails || cfg.OutputFormat != OutputJSON {
			t.Errorf("unexpected output defaults: dict=%v details=%v format=%s", cfg.ToDict, cfg.AddDetails, cfg.OutputFormat)
		}
	})

	t.Run("default Concurrency is positive", func(t *testing.T) {
		t.Parallel()
		if cfg.Concurrency <= 0 {
			t.Errorf("expected positive Concurrency, got %d", cfg.Concurrency)
		}
	})
}

// TestConfigValidate tests the Validate method with various configurations.
// Each test case is designed to test one specific validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	validConfig := func() *Config {
		cfg := NewConfig()
		cfg.Inputs = []string{"results.json"}
		return cfg
	}

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{name: "valid config returns nil", modify: func(*Config) {}},
		{name: "stdin input is valid", modify: func(c *Config) { c.Inputs = []string{"-"} }},
		{name: "brief mode is valid", modify: func(c *Config) { c.Mode = "brief" }},
		{name: "yaml output is valid", modify: func(c *Config) { c.OutputFormat = OutputYAML }},
		{name: "empty inputs returns ErrNoInput", modify: func(c *Config) { c.Inputs = nil }, want: ErrNoInput},
		{name: "unknown mode returns ErrInvalidMode", modify: func(c *Config) { c.Mode = "fancy" }, want: ErrInvalidMode},
		{name: "unknown output returns ErrInvalidOutputFormat", modify: func(c *Config) { c.OutputFormat = "xml" }, want: ErrInvalidOutputFormat},
		{name: "zero concurrency returns ErrInvalidConcurrency", modify: func(c *Config) { c.Concurrency = 0 }, want: ErrInvalidConcurrency},
		{name: "profile without file returns ErrUnknownProfile", modify: func(c *Config) { c.Profile = "brief" }, want: ErrUnknownProfile},
		{
			name: "defined profile is valid",
			modify: func(c *Config) {
				c.Profile = "wide"
				c.File = &File{Profiles: map[string]Profile{"wide": {}}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.want == nil && err != nil {
				t.Fatalf("expected nil, got: %v", err)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got: %v", tt.want, err)
			}
		})
	}
}

func boolPtr(b bool) *bool { return &b }

// TestFileGetProfile tests profile lookup and merging over defaults.
func TestFileGetProfile(t *testing.T) {
	t.Parallel()

	file := &File{
		Defaults: Profile{
			TableFormat:    "grid",
			ShowIndex:      boolPtr(true),
			HeadersExclude: []string{"diff"},
		},
		Profiles: map[string]Profile{
			"wide":  {Headers: []string{"host", "name", "result"}},
			"plain": {TableFormat: "plain", ShowIndex: boolPtr(false), HeadersExclude: []string{"changed"}},
		},
	}

	t.Run("unknown profile", func(t *testing.T) {
		t.Parallel()
		if _, ok := file.GetProfile("missing"); ok {
			t.Error("expected missing profile to be reported")
		}
	})

	t.Run("profile inherits defaults", func(t *testing.T) {
		t.Parallel()

		p, ok := file.GetProfile("wide")
		if !ok {
			t.Fatal("expected wide profile")
		}
		if p.TableFormat != "grid" || p.ShowIndex == nil || !*p.ShowIndex {
			t.Errorf("expected inherited defaults, got %+v", p)
		}
		if diff := cmp.Diff([]string{"diff"}, p.HeadersExclude); diff != "" {
			t.Errorf("exclude mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("profile overrides defaults", func(t *testing.T) {
		t.Parallel()

		p, _ := file.GetProfile("plain")
		if p.TableFormat != "plain" || *p.ShowIndex {
			t.Errorf("expected overrides, got %+v", p)
		}
		if diff := cmp.Diff([]string{"changed"}, p.HeadersExclude); diff != "" {
			t.Errorf("exclude mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("nil file", func(t *testing.T) {
		t.Parallel()

		var f *File
		if _, ok := f.GetProfile("wide"); ok {
			t.Error("expected nil file to have no profiles")
		}
		if f.ProfileNames() != nil {
			t.Error("expected no profile names")
		}
	})

	t.Run("profile names", func(t *testing.T) {
		t.Parallel()

		names := file.ProfileNames()
		slices.Sort(names)
		if diff := cmp.Diff([]string{"plain", "wide"}, names); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
	})
}

// TestProfileTableConfig tests the conversion into a renderer configuration.
func TestProfileTableConfig(t *testing.T) {
	t.Parallel()

	cfg := Profile{}.TableConfig()
	if !cfg.Headers.IsZero() {
		t.Error("expected unset headers for a profile without headers")
	}

	cfg = Profile{Headers: []string{"keys"}}.TableConfig()
	if cfg.Headers.IsZero() || !cfg.Headers.IsKeys() {
		t.Error("expected keys sentinel")
	}

	cfg = Profile{TableFormat: "rounded", ShowIndex: boolPtr(true), Headers: []string{"host", "name"}}.TableConfig()
	if diff := cmp.Diff([]string{"host", "name"}, cfg.Headers.Names()); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}
	if cfg.TableFormat != "rounded" || !cfg.ShowIndex {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

// TestConfigApplyDefaults tests that file defaults never override flags the user set.
func TestConfigApplyDefaults(t *testing.T) {
	t.Parallel()

	newCfg := func() *Config {
		cfg := NewConfig()
		cfg.File = &File{Defaults: Profile{
			TableFormat:    "grid",
			ShowIndex:      boolPtr(true),
			Headers:        []string{"host", "result"},
			HeadersExclude: []string{"diff", "changed"},
		}}
		return cfg
	}

	t.Run("unset flags take file defaults", func(t *testing.T) {
		t.Parallel()

		cfg := newCfg()
		cfg.ApplyDefaults(func(string) bool { return false })
		if cfg.TableFormat != "grid" || !cfg.ShowIndex || cfg.Headers != "host,result" || cfg.HeadersExclude != "diff,changed" {
			t.Errorf("expected file defaults, got %+v", cfg)
		}
	})

	t.Run("changed flags win", func(t *testing.T) {
		t.Parallel()

		cfg := newCfg()
		cfg.TableFormat = "plain"
		cfg.ApplyDefaults(func(option string) bool { return option == "format" })
		if cfg.TableFormat != "plain" {
			t.Errorf("expected flag value to win, got %q", cfg.TableFormat)
		}
		if !cfg.ShowIndex {
			t.Error("expected other defaults to apply")
		}
	})

	t.Run("no file is a no-op", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.ApplyDefaults(func(string) bool { return false })
		if diff := cmp.Diff(NewConfig(), cfg); diff != "" {
			t.Errorf("config changed (-want +got):\n%s", diff)
		}
	})
}

// TestConfigRequest tests the translation into a tabulate request.
func TestConfigRequest(t *testing.T) {
	t.Parallel()

	t.Run("flags only", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Mode = "extend"
		cfg.Headers = "host, name"
		cfg.HeadersExclude = "diff"
		cfg.TableFormat = "github"

		req, err := cfg.Request()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Mode.String() != "extend" {
			t.Errorf("expected extend mode, got %s", req.Mode)
		}
		if diff := cmp.Diff([]string{"host", "name"}, req.Headers.Names()); diff != "" {
			t.Errorf("headers mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]string{"diff"}, req.HeadersExclude); diff != "" {
			t.Errorf("exclude mismatch (-want +got):\n%s", diff)
		}
		if req.TableFormat != "github" {
			t.Errorf("expected github format, got %q", req.TableFormat)
		}
	})

	t.Run("profile becomes custom mode", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.HeadersExclude = "diff"
		cfg.Profile = "ops"
		cfg.File = &File{Profiles: map[string]Profile{
			"ops": {TableFormat: "rounded", HeadersExclude: []string{"changed", "diff"}},
		}}

		req, err := cfg.Request()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mc, ok := req.Mode.Config()
		if !ok {
			t.Fatalf("expected custom mode, got %s", req.Mode)
		}
		if mc.TableFormat != "rounded" || !mc.Headers.IsZero() {
			t.Errorf("unexpected profile config: %+v", mc)
		}
		if diff := cmp.Diff([]string{"diff", "changed"}, req.HeadersExclude); diff != "" {
			t.Errorf("exclude mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("disabled mode ignores profile", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Mode = "false"
		cfg.Profile = "missing"

		req, err := cfg.Request()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !req.Mode.IsDisabled() {
			t.Errorf("expected disabled mode, got %s", req.Mode)
		}
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.Mode = "sometimes"
		if _, err := cfg.Request(); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("expected ErrInvalidMode, got %v", err)
		}

		cfg = NewConfig()
		cfg.Profile = "missing"
		if _, err := cfg.Request(); !errors.Is(err, ErrUnknownProfile) {
			t.Errorf("expected ErrUnknownProfile, got %v", err)
		}
	})

	t.Run("keys headers", func(t *testing.T) {
		t.Parallel()

		req, err := NewConfig().Request()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !req.Headers.IsKeys() || req.Mode.String() != tabulate.Enabled().String() {
			t.Errorf("expected enabled mode with keys headers, got %s %s", req.Mode, req.Headers)
		}
	})
}

// TestLoadConfigFile tests the LoadConfigFile function.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfigFile("/nonexistent/path/.taskfmt")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("expected ErrConfigNotFound, got: %v", err)
		}
		if cfg != nil {
			t.Error("expected nil config when file not found")
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".taskfmt")
		content := `defaults:
  table_format: grid
  headers_exclude: [diff]
profiles:
  brief:
    show_index: true
    headers:
      - host
      - name
      - result
      - exception
`
		if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Defaults.TableFormat != "grid" {
			t.Errorf("expected default format grid, got %q", cfg.Defaults.TableFormat)
		}

		p, ok := cfg.GetProfile("brief")
		if !ok {
			t.Fatal("expected brief profile")
		}
		if p.ShowIndex == nil || !*p.ShowIndex || len(p.Headers) != 4 || p.TableFormat != "grid" {
			t.Errorf("unexpected profile: %+v", p)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".taskfmt")
		if err := os.WriteFile(configPath, []byte(`invalid: yaml: content: [}`), 0o600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if _, err := LoadConfigFile(configPath); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})

	t.Run("initializes nil Profiles map", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), ".taskfmt")
		if err := os.WriteFile(configPath, []byte("defaults:\n  table_format: plain\n"), 0o600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		cfg, err := LoadConfigFile(configPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Profiles == nil {
			t.Error("expected Profiles map to be initialized")
		}
	})
}

// TestFindConfigFile tests the FindConfigFile function.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()

		configPath := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(configPath, []byte("defaults: {}"), 0o600); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		if result := FindConfigFile(configPath); result != configPath {
			t.Errorf("expected %q, got %q", configPath, result)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()

		if result := FindConfigFile("/nonexistent/path/config.yaml"); result != "" {
			t.Errorf("expected empty string, got %q", result)
		}
	})
}

// TestXDGConfigDir tests the XDG config directory.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if dir == "" {
		t.Fatal("expected non-empty path")
	}
	if !strings.HasSuffix(dir, AppName) {
		t.Errorf("expected path to end with %q, got %q", AppName, dir)
	}
}
