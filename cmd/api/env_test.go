package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvReadsNamedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.env")
	if err := os.WriteFile(path, []byte("CALC_TEST_DOTENV=from-file\n"), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	t.Setenv(envFileVar, path)
	t.Setenv("CALC_TEST_DOTENV", "")
	os.Unsetenv("CALC_TEST_DOTENV")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("CALC_TEST_DOTENV"); got != "from-file" {
		t.Fatalf("expected %q, got %q", "from-file", got)
	}
}

func TestLoadDotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.env")
	if err := os.WriteFile(path, []byte("CALC_TEST_DOTENV=from-file\n"), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	t.Setenv(envFileVar, path)
	t.Setenv("CALC_TEST_DOTENV", "from-process")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("CALC_TEST_DOTENV"); got != "from-process" {
		t.Fatalf("expected %q, got %q", "from-process", got)
	}
}

func TestLoadDotEnvMissingNamedFileFails(t *testing.T) {
	t.Setenv(envFileVar, filepath.Join(t.TempDir(), "missing.env"))

	if err := loadDotEnv(); err == nil {
		t.Fatal("expected error for missing named env file")
	}
}

func TestLoadDotEnvMissingDefaultFileIsIgnored(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(envFileVar, "")
	os.Unsetenv(envFileVar)

	if err := loadDotEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadDotEnvEmptyNameFallsBackToDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(envFileVar, "")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
