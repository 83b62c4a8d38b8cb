package cli

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"web_validator/domain/entities"
	"web_validator/infrastructure/config"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, err := parseFlags(nil, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, defaultEnvFile, opts.envFile)
	assert.Nil(t, opts.headless)
	assert.Nil(t, opts.install)
}

func TestParseFlagsOverrides(t *testing.T) {
	opts, err := parseFlags([]string{
		"-url", "https://example.com",
		"-browser", "firefox",
		"-headless=false",
		"-install",
		"-output", "/tmp/run",
		"-selectors", "sel.yaml",
	}, &bytes.Buffer{})
	require.NoError(t, err)

	s := config.Default()
	opts.apply(s)

	assert.Equal(t, "https://example.com", s.TargetURL)
	assert.Equal(t, "firefox", s.BrowserType)
	assert.False(t, s.Headless)
	assert.True(t, s.InstallBrowsers)
	assert.Equal(t, "sel.yaml", s.SelectorsFile)
	assert.Equal(t, filepath.Join("/tmp/run", "screenshots"), s.ScreenshotDir)
	assert.Equal(t, filepath.Join("/tmp/run", "reports"), s.ReportsDir)
}

func TestUnsetFlagsKeepSettings(t *testing.T) {
	opts, err := parseFlags(nil, &bytes.Buffer{})
	require.NoError(t, err)

	s := config.Default()
	s.Headless = false
	s.TargetURL = "https://kept.example"
	opts.apply(s)

	assert.False(t, s.Headless)
	assert.Equal(t, "https://kept.example", s.TargetURL)
}

func TestParseFlagsErrors(t *testing.T) {
	_, err := parseFlags([]string{"-h"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = parseFlags([]string{"extra"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unexpected arguments")

	_, err = parseFlags([]string{"-nope"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing default file only warns", func(t *testing.T) {
		chdir(t, t.TempDir())
		var stderr bytes.Buffer

		require.NoError(t, loadEnvFile(defaultEnvFile, &stderr))
		assert.Contains(t, stderr.String(), "Warning: .env file not found")
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		err := loadEnvFile(filepath.Join(t.TempDir(), "custom.env"), &bytes.Buffer{})
		assert.ErrorContains(t, err, "failed to load")
	})

	t.Run("values reach the environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run.env")
		require.NoError(t, os.WriteFile(path, []byte("WV_CLI_TEST_VALUE=loaded\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("WV_CLI_TEST_VALUE") })

		require.NoError(t, loadEnvFile(path, &bytes.Buffer{}))
		assert.Equal(t, "loaded", os.Getenv("WV_CLI_TEST_VALUE"))
	})
}

func TestNewAppBuildsComponents(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_TO_FILE", "false")
	selectors := filepath.Join(dir, "selectors.yaml")
	require.NoError(t, os.WriteFile(selectors, []byte("header:\n  login_button:\n    - '#sign-in'\n"), 0644))

	var stdout bytes.Buffer
	app, err := NewApp([]string{
		"-env-file", filepath.Join(dir, "missing.env"),
		"-url", "https://example.com",
		"-output", dir,
		"-selectors", selectors,
	}, &stdout, &bytes.Buffer{})
	require.Error(t, err)
	assert.Nil(t, app)
	assert.Equal(t, entities.ExitUnknownError, exitCodeForError(err))

	app, err = NewApp([]string{
		"-url", "https://example.com",
		"-output", dir,
		"-selectors", selectors,
	}, &stdout, &bytes.Buffer{})
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, "https://example.com", app.settings.TargetURL)
	for _, sub := range []string{"screenshots", "reports", "logs", "traces"} {
		assert.DirExists(t, filepath.Join(dir, sub))
	}
	assert.Contains(t, stdout.String(), "Loaded selectors from")
}

func TestFlagsOverrideInvalidEnvironment(t *testing.T) {
	t.Setenv("BROWSER_TYPE", "edge")
	t.Setenv("LOG_TO_FILE", "false")

	app, err := NewApp([]string{"-browser", "chromium", "-output", t.TempDir()}, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, "chromium", app.settings.BrowserType)
}

func TestInvalidEnvironmentFailsWithoutOverride(t *testing.T) {
	t.Setenv("BROWSER_TYPE", "edge")

	_, err := NewApp([]string{"-output", t.TempDir()}, &bytes.Buffer{}, &bytes.Buffer{})

	assert.ErrorContains(t, err, `invalid BROWSER_TYPE "edge"`)
}

func TestBrowserFlagIsCaseInsensitive(t *testing.T) {
	opts, err := parseFlags([]string{"-browser", "Firefox"}, &bytes.Buffer{})
	require.NoError(t, err)

	s := config.Default()
	opts.apply(s)

	assert.Equal(t, "firefox", s.BrowserType)
	assert.NoError(t, s.Validate())
}

func TestNewAppRejectsInvalidConfiguration(t *testing.T) {
	_, err := NewApp([]string{"-browser", "netscape", "-output", t.TempDir()}, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid configuration")
	assert.Equal(t, entities.ExitUnknownError, exitCodeForError(err))
}

func TestNewAppRejectsBadSelectorsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_TO_FILE", "false")
	selectors := filepath.Join(dir, "selectors.yaml")
	require.NoError(t, os.WriteFile(selectors, []byte("header:\n  teleporter:\n    - '#x'\n"), 0644))

	_, err := NewApp([]string{"-output", dir, "-selectors", selectors}, &bytes.Buffer{}, &bytes.Buffer{})

	assert.ErrorContains(t, err, "teleporter")
}

func TestRunExitCodes(t *testing.T) {
	chdir(t, t.TempDir())

	assert.Equal(t, 0, Run([]string{"-h"}))
	assert.Equal(t, 99, Run([]string{"-browser", "netscape"}))
	assert.Equal(t, 99, Run([]string{"stray"}))
}

func TestExitCodeForError(t *testing.T) {
	assert.Equal(t, entities.ExitSuccess, exitCodeForError(nil))
	assert.Equal(t, entities.ExitUnknownError, exitCodeForError(errors.New("plain")))

	wrapped := fmt.Errorf("setup: %w", withExitCode(errors.New("nav"), entities.ExitNavigationFailed))
	assert.Equal(t, entities.ExitNavigationFailed, exitCodeForError(wrapped))
	assert.EqualError(t, wrapped, "setup: nav")
	assert.Nil(t, withExitCode(nil, entities.ExitNavigationFailed))
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
