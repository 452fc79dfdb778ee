package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "muskox.toml")
	if err := os.WriteFile(path, []byte("tt_size_mb = 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TableMB != 64 {
		t.Errorf("TableMB = %d, want 64", cfg.TableMB)
	}
	if cfg.Workers != Default().Workers {
		t.Errorf("Workers = %d, want default %d", cfg.Workers, Default().Workers)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []string{
		"tt_size_mb = 0\n",
		"workers = -1\n",
		"default_depth = 26\n",
	}
	for _, content := range tests {
		path := filepath.Join(t.TempDir(), "muskox.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("config %q should be rejected", content)
		}
	}
}
