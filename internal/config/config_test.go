package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()

	require.Equal(t, 3, cfg.MaxPages)
	require.Equal(t, time.Second, cfg.Delay)
	require.Equal(t, 10*time.Second, cfg.Timeout)
	require.Equal(t, 1, cfg.Workers)
	require.Equal(t, FetcherResty, cfg.Fetcher)
	require.Contains(t, cfg.UserAgent, "Mozilla/5.0")
	require.Equal(t, Output{CSV: "quotes.csv", JSON: "quotes.json"}, cfg.Output)
	require.Equal(t, "http://quotes.toscrape.com/page/%d/", cfg.PagePattern())
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{name: "zero max pages is valid", modify: func(c *Config) { c.MaxPages = 0 }},
		{name: "negative max pages is valid", modify: func(c *Config) { c.MaxPages = -2 }},
		{name: "zero delay is valid", modify: func(c *Config) { c.Delay = 0 }},
		{name: "colly fetcher", modify: func(c *Config) { c.Fetcher = FetcherColly }},
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }, want: ErrInvalidTimeout},
		{name: "negative delay", modify: func(c *Config) { c.Delay = -time.Millisecond }, want: ErrInvalidDelay},
		{name: "zero workers", modify: func(c *Config) { c.Workers = 0 }, want: ErrInvalidWorkers},
		{name: "unknown fetcher", modify: func(c *Config) { c.Fetcher = "curl" }, want: ErrUnknownFetcher},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	abs := filepath.Join(t.TempDir(), "abs.csv")

	require.Equal(t, "quotes.csv", Output{}.Path("quotes.csv"))
	require.Equal(t, filepath.Join("out", "quotes.csv"), Output{Dir: "out"}.Path("quotes.csv"))
	require.Equal(t, abs, Output{Dir: "out"}.Path(abs))
	require.Empty(t, Output{Dir: "out"}.Path(""))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quotes.yaml")
	data := `max_pages: 10
delay: 250ms
fetcher: colly
output:
  dir: out
  sqlite: quotes.db
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.MaxPages = 10
	want.Delay = 250 * time.Millisecond
	want.Fetcher = FetcherColly
	want.Output.Dir = "out"
	want.Output.SQLite = "quotes.db"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quotes.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(dir, "nope.yaml"))
		require.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "unknown.yaml")
		require.NoError(t, os.WriteFile(path, []byte("max_page: 4\n"), 0600))
		_, err := Load(path)
		require.Error(t, err)
		require.False(t, errors.Is(err, ErrConfigNotFound))
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "duration.yaml")
		require.NoError(t, os.WriteFile(path, []byte("delay: soon\n"), 0600))
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := Marshal(Default())
	require.NoError(t, err)
	require.Contains(t, string(data), "delay: 1s")

	path := filepath.Join(t.TempDir(), "quotes.yaml")
	require.NoError(t, os.WriteFile(path, data, 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		EnvMaxPages:  "7",
		EnvDelay:     "0s",
		EnvTimeout:   "3s",
		EnvUserAgent: "test-agent",
		EnvWorkers:   "4",
		EnvFetcher:   FetcherColly,
		EnvOutputDir: "exports",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, lookup))

	require.Equal(t, 7, cfg.MaxPages)
	require.Zero(t, cfg.Delay)
	require.Equal(t, 3*time.Second, cfg.Timeout)
	require.Equal(t, "test-agent", cfg.UserAgent)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, FetcherColly, cfg.Fetcher)
	require.Equal(t, "exports", cfg.Output.Dir)
}

func TestApplyEnvUnsetKeepsValues(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, ApplyEnv(cfg, func(string) (string, bool) { return "", false }))
	require.Equal(t, Default(), cfg)
}

func TestApplyEnvInvalid(t *testing.T) {
	t.Parallel()

	for _, key := range []string{EnvMaxPages, EnvDelay, EnvTimeout, EnvWorkers} {
		key := key
		t.Run(key, func(t *testing.T) {
			t.Parallel()
			err := ApplyEnv(Default(), func(k string) (string, bool) {
				if k == key {
					return "lots", true
				}
				return "", false
			})
			require.ErrorContains(t, err, key)
		})
	}
}

// FindConfigFile depends on the working directory and XDG variables, so
// these subtests run sequentially.
func TestFindConfigFile(t *testing.T) {
	t.Cleanup(xdg.Reload)
	xdgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdgHome)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Run("explicit path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		require.NoError(t, os.WriteFile(path, nil, 0600))

		got, err := FindConfigFile(path)
		require.NoError(t, err)
		require.Equal(t, path, got)
	})

	t.Run("explicit path missing", func(t *testing.T) {
		_, err := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("nothing found", func(t *testing.T) {
		got, err := FindConfigFile("")
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("xdg config dir", func(t *testing.T) {
		path := filepath.Join(xdgHome, XDGConfigFile())
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
		require.NoError(t, os.WriteFile(path, nil, 0600))

		got, err := FindConfigFile("")
		require.NoError(t, err)
		require.Equal(t, path, got)
	})

	t.Run("working directory wins over xdg", func(t *testing.T) {
		require.NoError(t, os.WriteFile(DefaultConfigFile, nil, 0600))

		got, err := FindConfigFile("")
		require.NoError(t, err)
		require.Equal(t, DefaultConfigFile, got)
	})
}
