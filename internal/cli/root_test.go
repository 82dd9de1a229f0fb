package cli

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/graphwalk/pkg/walk"
)

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return New(io.Discard, LogInfo)
}

func TestRootCommand(t *testing.T) {
	root := newTestCLI(t).RootCommand()

	if root.Use != appName {
		t.Errorf("root.Use = %q, want %q", root.Use, appName)
	}

	for _, name := range []string{"board", "trace", "algorithms", "completion"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing %q", name)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	root := newTestCLI(t).RootCommand()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	if err := root.Execute(); err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(buf.String(), "graphwalk version") {
		t.Errorf("version output = %q, want it to name the binary", buf.String())
	}
}

func TestTraceCommand(t *testing.T) {
	root := newTestCLI(t).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"trace", "--plain", "--nodes", "6", "--algo", "kruskal"})

	if err := root.Execute(); err != nil {
		t.Fatalf("trace: %v", err)
	}
}

func TestTraceCommandUnknownAlgorithm(t *testing.T) {
	root := newTestCLI(t).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"trace", "--algo", "prim"})

	err := root.Execute()
	if !errors.Is(err, walk.ErrUnknownAlgorithm) {
		t.Errorf("trace --algo prim error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestTraceCommandUnknownStart(t *testing.T) {
	root := newTestCLI(t).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"trace", "--plain", "--nodes", "3", "--start", "99"})

	err := root.Execute()
	if !errors.Is(err, walk.ErrUnknownStart) {
		t.Errorf("trace --start 99 error = %v, want ErrUnknownStart", err)
	}
}

func TestAlgorithmsCommand(t *testing.T) {
	root := newTestCLI(t).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"algorithms"})

	if err := root.Execute(); err != nil {
		t.Fatalf("algorithms: %v", err)
	}
}
