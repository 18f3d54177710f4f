package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/config"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chess-rules.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	defer saveRestoreInt(perftDepth, 5)()
	defer saveRestoreBool(quiet, false)()
	path := writeConfig(t, "verbosity: 2\nperft:\n  depth: 3\n  divide: true\n")

	t.Run("file values", func(t *testing.T) {
		cfg, err := loadConfig(path, map[string]bool{})
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		testutil.AssertEqual(t, cfg.Verbosity, 2)
		testutil.AssertEqual(t, cfg.Perft.Depth, 3)
		testutil.AssertTrue(t, cfg.Perft.Divide, "divide from file")
	})

	t.Run("flags override file", func(t *testing.T) {
		cfg, err := loadConfig(path, map[string]bool{"depth": true})
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		testutil.AssertEqual(t, cfg.Perft.Depth, 5)
		testutil.AssertTrue(t, cfg.Perft.Divide, "divide from file")
	})

	t.Run("no file", func(t *testing.T) {
		cfg, err := loadConfig("", map[string]bool{})
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		testutil.AssertEqual(t, *cfg.Perft, *config.NewPerftConfig())
	})

	t.Run("invalid flag value", func(t *testing.T) {
		defer saveRestoreInt(workers, -1)()
		_, err := loadConfig("", map[string]bool{"workers": true})
		if !errors.Is(err, chesserrors.ErrInvalidConfig) {
			t.Errorf("loadConfig() error = %v; want ErrInvalidConfig", err)
		}
	})

	t.Run("bad file", func(t *testing.T) {
		_, err := loadConfig(writeConfig(t, "perft: [1, 2]\n"), map[string]bool{})
		if !errors.Is(err, chesserrors.ErrInvalidConfig) {
			t.Errorf("loadConfig() error = %v; want ErrInvalidConfig", err)
		}
	})
}

func TestLoadConfig_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	defer saveRestoreString(logFile, logPath)()

	cfg, err := loadConfig("", map[string]bool{"l": true})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	f, ok := cfg.LogFile.(*os.File)
	if !ok {
		t.Fatalf("LogFile is %T; want *os.File", cfg.LogFile)
	}
	defer f.Close()

	newLogger(cfg).Printf("hello")
	data, err := os.ReadFile(logPath)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(data), "chess-rules: ")
	testutil.AssertContains(t, string(data), "hello")
}

func TestNewLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithLog(&buf).WithVerbosity(0).Build()
	newLogger(cfg).Printf("should not appear")
	testutil.AssertEqual(t, buf.String(), "")
}

func TestRun(t *testing.T) {
	newCfg := func(out *bytes.Buffer) *config.Config {
		return config.NewConfigBuilder().
			WithOutput(out).
			WithLog(&bytes.Buffer{}).
			WithShowBoard(false).
			WithPrompt("").
			Build()
	}

	t.Run("perft with depth argument", func(t *testing.T) {
		var out bytes.Buffer
		testutil.AssertNoError(t, run(newCfg(&out), []string{"perft", "2"}, nil))
		testutil.AssertEqual(t, out.String(), "Nodes searched: 400\n")
	})

	t.Run("perft with bad depth", func(t *testing.T) {
		var out bytes.Buffer
		for _, arg := range []string{"deep", "0", "99"} {
			err := run(newCfg(&out), []string{"perft", arg}, nil)
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("perft %s: error = %v; want ErrInvalidConfig", arg, err)
			}
		}
	})

	t.Run("play is the default", func(t *testing.T) {
		var out bytes.Buffer
		in := strings.NewReader("f2f3\ne7e5\ng2g4\nd8h4\n")
		testutil.AssertNoError(t, run(newCfg(&out), nil, in))
		testutil.AssertContains(t, out.String(), "Checkmate. Black wins.")
	})

	t.Run("unknown command", func(t *testing.T) {
		var out bytes.Buffer
		err := run(newCfg(&out), []string{"analyse"}, nil)
		if err == nil || !strings.Contains(err.Error(), `unknown command "analyse"`) {
			t.Errorf("run(analyse) error = %v", err)
		}
	})
}
