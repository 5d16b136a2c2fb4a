package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/zvinowanda/catch/dlb"
)

func TestVariantForPath(t *testing.T) {
	tests := []struct {
		path string
		want dlb.Variant
	}{
		{"store.dqb", dlb.Quantum},
		{"/tmp/archive.dqb", dlb.Quantum},
		{"store.dlb", dlb.Standard},
		{"store.DQB", dlb.Standard},
		{"store", dlb.Standard},
		{"dqb", dlb.Standard},
	}
	for _, tt := range tests {
		if got := variantForPath(tt.path); got != tt.want {
			t.Errorf("variantForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestInitializeConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catch.toml")
	conf := `[global]
database = "~/archives/main.dlb"
ping_count = 8
quiet = true
`
	if err := os.WriteFile(path, []byte(conf), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CATCH_CONFIG", path)

	config, err := InitializeConfig()
	if err != nil {
		t.Fatal(err)
	}
	if config.Global.Database != "~/archives/main.dlb" {
		t.Errorf("database = %q", config.Global.Database)
	}
	if config.Global.PingCount != 8 {
		t.Errorf("ping_count = %d, want 8", config.Global.PingCount)
	}
	if !config.Global.Quiet {
		t.Error("quiet should be true")
	}
}

func TestInitializeConfigMissingFile(t *testing.T) {
	t.Setenv("CATCH_CONFIG", filepath.Join(t.TempDir(), "no-such.toml"))

	config, err := InitializeConfig()
	if err != nil {
		t.Fatal(err)
	}
	if config.Global.PingCount != 4 {
		t.Errorf("default ping_count = %d, want 4", config.Global.PingCount)
	}
}
