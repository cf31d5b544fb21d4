package appdirs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestEnsureConfigDirUsesPrivatePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not portable on windows")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := EnsureConfigDir()
	if err != nil {
		t.Fatalf("EnsureConfigDir failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat config dir failed: %v", err)
	}
	if perms := info.Mode().Perm(); perms&0o077 != 0 {
		t.Fatalf("expected private config dir permissions, got %o", perms)
	}
}

func TestPromptFileLivesBesideConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", "")

	configPath, err := ConfigFilePath()
	if err != nil {
		t.Fatalf("ConfigFilePath failed: %v", err)
	}
	promptPath, err := PromptFilePath()
	if err != nil {
		t.Fatalf("PromptFilePath failed: %v", err)
	}
	if filepath.Dir(configPath) != filepath.Dir(promptPath) {
		t.Fatalf("expected shared directory, got %q and %q", configPath, promptPath)
	}
	if filepath.Base(promptPath) != "commit-prompt" {
		t.Fatalf("unexpected prompt file name: %q", promptPath)
	}
}
