package config

import (
	"bytes"
	"errors"
	"testing"

	fenerrors "github.com/lgbarn/fen-board-go/internal/errors"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
	if cfg.OutputFormat != Text {
		t.Errorf("OutputFormat = %v, want text", cfg.OutputFormat)
	}
	if cfg.StopOnError || cfg.Verify {
		t.Error("StopOnError and Verify should be off by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"board", Text, false},
		{"JSON", JSON, false},
		{"yaml", YAML, false},
		{"yml", YAML, false},
		{"xml", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, fenerrors.ErrInvalidConfig) {
				t.Errorf("error %v does not match ErrInvalidConfig", err)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputFormatString(t *testing.T) {
	for _, f := range []OutputFormat{Text, JSON, YAML} {
		got, err := ParseOutputFormat(f.String())
		if err != nil || got != f {
			t.Errorf("ParseOutputFormat(%q) = %v, %v; want %v", f.String(), got, err, f)
		}
	}
	if got := OutputFormat(7).String(); got != "OutputFormat(7)" {
		t.Errorf("OutputFormat(7).String() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }},
		{"no output", func(c *Config) { c.OutputFile = nil }},
		{"no log", func(c *Config) { c.LogFile = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, fenerrors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogFile = &buf

	cfg.Logf(1, "parsed %d records", 3)
	cfg.Logf(2, "hidden at verbosity 1")

	if got := buf.String(); got != "parsed 3 records\n" {
		t.Errorf("log = %q, want %q", got, "parsed 3 records\n")
	}

	cfg.Verbosity = 0
	buf.Reset()
	cfg.Logf(1, "quiet")
	if buf.Len() != 0 {
		t.Errorf("log at verbosity 0 = %q, want empty", buf.String())
	}
}
