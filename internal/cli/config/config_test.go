package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg := &Config{
		Servers: []Server{
			{URL: "https://api.sevenplus-app.com.br", Alias: "production"},
			{URL: "http://localhost:3000", Alias: "local"},
		},
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(loaded.Servers) != 2 {
		t.Fatalf("got %d servers, want 2", len(loaded.Servers))
	}
	if loaded.Servers[1].Alias != "local" || loaded.Servers[1].URL != "http://localhost:3000" {
		t.Errorf("unexpected server: %+v", loaded.Servers[1])
	}
}

func TestGetServerByAlias(t *testing.T) {
	cfg := &Config{
		Servers: []Server{
			{URL: "https://api.sevenplus-app.com.br", Alias: "production"},
			{URL: "http://localhost:3000", Alias: "local"},
		},
	}

	server, err := cfg.GetServerByAlias("local")
	if err != nil {
		t.Fatalf("GetServerByAlias() error = %v", err)
	}
	if server.URL != "http://localhost:3000" {
		t.Errorf("URL = %q", server.URL)
	}

	if _, err := cfg.GetServerByAlias("staging"); err == nil {
		t.Error("expected error for unknown alias")
	}
}

func TestGetDefaultServer(t *testing.T) {
	cfg := DefaultConfig()

	server, err := cfg.GetDefaultServer()
	if err != nil {
		t.Fatalf("GetDefaultServer() error = %v", err)
	}
	if server.Alias != "production" {
		t.Errorf("alias = %q, want production", server.Alias)
	}

	empty := &Config{}
	if _, err := empty.GetDefaultServer(); err == nil {
		t.Error("expected error for empty config")
	}
}

func TestFindConfigFileSearchesParents(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	if err := Save(filepath.Join(root, ConfigFileName), DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(cwd) })
	if err := os.Chdir(nested); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfigFile()
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	// compare resolved paths, macOS tempdirs are symlinked
	wantDir, _ := filepath.EvalSymlinks(root)
	gotDir, _ := filepath.EvalSymlinks(filepath.Dir(found))
	if gotDir != wantDir {
		t.Errorf("found %q, want file under %q", found, root)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), ConfigFileName)); err == nil {
		t.Error("expected error for missing file")
	}
}
