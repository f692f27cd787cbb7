package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/sethvargo/go-retry"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	configName = ".gitship"
	configType = "yaml"

	filePermissions = 0600

	lockRetryInterval = 100 * time.Millisecond
	lockRetryCount    = 50
)

var errLockHeld = errors.New("config file lock is held by another process")

// Config holds the persisted settings. The token is optional; its absence
// is only an error at the point a release is published.
type Config struct {
	GithubToken string `mapstructure:"github_token"`
}

// HasToken reports whether a GitHub token is configured.
func (c *Config) HasToken() bool {
	return strings.TrimSpace(c.GithubToken) != ""
}

// Store loads and saves the configuration file. Reads go through viper
// (file plus environment); writes go through afero with an advisory file
// lock and an atomic temp-file rename.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a Store rooted at the user's home directory.
func NewStore(fs afero.Fs) (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine home directory: %w", err)
	}
	return &Store{fs: fs, path: filepath.Join(home, configName+"."+configType)}, nil
}

// NewStoreAt creates a Store with an explicit file path.
func NewStoreAt(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the location of the configuration file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration. A missing file is not an error; the
// environment (GITHUB_TOKEN or GITSHIP_GITHUB_TOKEN) still applies.
func (s *Store) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType(configType)
	v.SetFs(s.fs)
	v.SetEnvPrefix("GITSHIP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("github_token", "GITHUB_TOKEN", "GITSHIP_GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind github_token env: %w", err)
	}
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file %s: %w", s.path, err)
			}
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", s.path, err)
	}
	return &cfg, nil
}

// Save persists the configuration atomically under an advisory lock.
func (s *Store) Save(ctx context.Context, cfg *Config) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	lock := flock.New(s.path + ".lock")
	if err := s.acquireLock(ctx, lock); err != nil {
		return fmt.Errorf("failed to lock config file: %w", err)
	}
	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to unlock config file: %v\n", unlockErr)
		}
	}()

	data := fmt.Sprintf("github_token: %q\n", cfg.GithubToken)
	tempFile := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tempFile, []byte(data), filePermissions); err != nil {
		return fmt.Errorf("failed to write temp config file: %w", err)
	}
	if err := s.fs.Rename(tempFile, s.path); err != nil {
		if removeErr := s.fs.Remove(tempFile); removeErr != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove temp config file: %v\n", removeErr)
		}
		return fmt.Errorf("failed to replace config file: %w", err)
	}
	return nil
}

// acquireLock retries TryLock on a constant backoff until it succeeds or
// the retry budget runs out.
func (s *Store) acquireLock(ctx context.Context, lock *flock.Flock) error {
	backoff := retry.WithMaxRetries(lockRetryCount, retry.NewConstant(lockRetryInterval))
	return retry.Do(ctx, backoff, func(_ context.Context) error {
		locked, err := lock.TryLock()
		if err != nil {
			return err
		}
		if !locked {
			return retry.RetryableError(errLockHeld)
		}
		return nil
	})
}
