package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huchen/gitie/internal/appdirs"
	"github.com/pelletier/go-toml/v2"
)

// Placeholder shipped in the seeded config; treated the same as no key.
const apiKeyPlaceholder = "YOUR_API_KEY_IF_NEEDED"

func floatPtr(v float64) *float64 { return &v }

type AIConfig struct {
	APIURL    string `toml:"api_url"`
	ModelName string `toml:"model_name"`
	// Temperature is a pointer so an explicit 0.0 (deterministic sampling)
	// is distinguishable from the field being absent.
	Temperature    *float64 `toml:"temperature"`
	APIKey         string   `toml:"api_key,omitempty"`
	TimeoutSeconds int      `toml:"timeout_seconds,omitempty"`
}

type CommitConfig struct {
	// Confirm asks for interactive review of the generated message before
	// committing. Off by default: gitie stays non-interactive unless asked.
	Confirm bool `toml:"confirm"`
}

type UIConfig struct {
	Backend string `toml:"backend"`
}

type Config struct {
	AI     AIConfig     `toml:"ai"`
	Commit CommitConfig `toml:"commit"`
	UI     UIConfig     `toml:"ui"`
}

func Default() Config {
	return Config{
		AI: AIConfig{
			APIURL:         "http://localhost:11434/v1/chat/completions",
			ModelName:      "qwen3:32b-q8_0",
			Temperature:    floatPtr(0.7),
			TimeoutSeconds: 60,
		},
		Commit: CommitConfig{Confirm: false},
		UI:     UIConfig{Backend: "auto"},
	}
}

// LoadOrCreate reads the config file, seeding the config and the commit
// prompt on first run. A missing or partial file degrades to defaults; a
// field with no sane default only fails later, at the point of use.
func LoadOrCreate() (Config, string, error) {
	path, err := appdirs.ConfigFilePath()
	if err != nil {
		return Config{}, "", err
	}

	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if _, err := appdirs.EnsureConfigDir(); err != nil {
			return Config{}, "", err
		}
		if err := Save(path, cfg); err != nil {
			return Config{}, "", err
		}
		if err := seedPromptFile(); err != nil {
			return Config{}, "", err
		}
		return cfg, path, nil
	}
	if err != nil {
		return Config{}, "", fmt.Errorf("could not stat config path: %w", err)
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, "", fmt.Errorf("could not read config file: %w", err)
	}
	if err := toml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, "", fmt.Errorf("could not parse config file: %w", err)
	}
	cfg.normalize()
	return cfg, path, nil
}

func Save(path string, cfg Config) error {
	cfg.normalize()
	payload, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("could not serialize config: %w", err)
	}
	if _, err := appdirs.EnsureConfigDir(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tempFile, err := os.CreateTemp(dir, ".gitie-config-*.toml")
	if err != nil {
		return fmt.Errorf("could not create temp config file: %w", err)
	}
	tempPath := tempFile.Name()
	cleanup := func() {
		_ = os.Remove(tempPath)
	}

	if _, err := tempFile.Write(payload); err != nil {
		_ = tempFile.Close()
		cleanup()
		return fmt.Errorf("could not write temp config file: %w", err)
	}
	if err := tempFile.Chmod(0o600); err != nil {
		_ = tempFile.Close()
		cleanup()
		return fmt.Errorf("could not secure temp config file permissions: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		cleanup()
		return fmt.Errorf("could not close temp config file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		cleanup()
		return fmt.Errorf("could not atomically replace config file: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("could not secure config file permissions: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	defaults := Default()
	c.AI.APIURL = strings.TrimSpace(c.AI.APIURL)
	c.AI.ModelName = strings.TrimSpace(c.AI.ModelName)
	// Valid range is the inclusive [0, 2]; only an absent or out-of-range
	// value falls back to the default.
	if c.AI.Temperature == nil || *c.AI.Temperature < 0 || *c.AI.Temperature > 2 {
		c.AI.Temperature = floatPtr(*defaults.AI.Temperature)
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = defaults.AI.TimeoutSeconds
	}
	key := strings.TrimSpace(c.AI.APIKey)
	if key == apiKeyPlaceholder {
		key = ""
	}
	c.AI.APIKey = key
	if strings.TrimSpace(c.UI.Backend) == "" {
		c.UI.Backend = defaults.UI.Backend
	}
}

// RequireAI checks the fields an AI action cannot run without. Passthrough
// never calls this, so a broken config cannot break plain git usage.
func (c Config) RequireAI() error {
	if c.AI.APIURL == "" {
		return &MissingFieldError{Field: "ai.api_url"}
	}
	if c.AI.ModelName == "" {
		return &MissingFieldError{Field: "ai.model_name"}
	}
	return nil
}

// MissingFieldError names the configuration field an AI action needed but
// could not find.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("configuration field %q is required for AI actions; set it in the config file", e.Field)
}

// PromptMissingError reports an absent or unreadable commit prompt file. It
// only ever surfaces when commit-message generation is dispatched.
type PromptMissingError struct {
	Path string
	Err  error
}

func (e *PromptMissingError) Error() string {
	return fmt.Sprintf("commit prompt file %q is missing or unreadable: %v", e.Path, e.Err)
}

func (e *PromptMissingError) Unwrap() error { return e.Err }

// CommitPrompt loads the commit-message system prompt from the user's config
// directory.
func CommitPrompt() (string, error) {
	path, err := appdirs.PromptFilePath()
	if err != nil {
		return "", err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return "", &PromptMissingError{Path: path, Err: err}
	}
	prompt := strings.TrimSpace(string(payload))
	if prompt == "" {
		return "", &PromptMissingError{Path: path, Err: errors.New("file is empty")}
	}
	return prompt, nil
}

func seedPromptFile() error {
	path, err := appdirs.PromptFilePath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(defaultCommitPrompt), 0o600); err != nil {
		return fmt.Errorf("could not seed commit prompt file: %w", err)
	}
	return nil
}

const defaultCommitPrompt = `You are an assistant that writes git commit messages from staged changes.

You will receive the output of "git diff --staged". Reply with the commit
message only: a concise summary line in the imperative mood (for example
"Fix", "Add", "Update", "Remove"), optionally followed by a blank line and a
short body explaining what changed and why. Do not wrap the message in code
fences and do not add commentary around it.
`
