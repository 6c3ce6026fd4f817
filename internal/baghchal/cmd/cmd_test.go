package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := Root()
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "config.yaml")))
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()
	return out.String(), err
}

func TestPlayCommand(t *testing.T) {
	out, err := run(t, "0 0 1 0\n0 0 0 1\nnope\n", "play")
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"Tigers turn:",
		"Goats turn:",
		"REMAINING GOATS: 20",
		"The selected coordinate doesn't have a piece of the current player!",
		"Invalid input! Please enter four space-separated numbers.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}
}

func TestPlayCommandGameOver(t *testing.T) {
	out, err := run(t, "2 2 2 3\n", "play", "--position", "t3t/5/2g2/5/t3t g 1 0")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "Game over!\n(goat reserve exhausted)") {
		t.Errorf("game did not end:\n%s", out)
	}
}

func TestPlayCommandInvalidPosition(t *testing.T) {
	if _, err := run(t, "", "play", "--position", "t3t/5/5/5 t 20 0"); err == nil {
		t.Errorf("expected an error for an invalid position")
	}
}

func TestMovesCommand(t *testing.T) {
	out, err := run(t, "", "moves", "0", "4")
	if err != nil {
		t.Fatal(err)
	}

	if out != "1 4\n0 3\n" {
		t.Errorf("unexpected moves %q", out)
	}

	out, err = run(t, "", "moves", "--position", "t3t/5/2g2/5/t3t g 19 0")
	if err != nil {
		t.Fatal(err)
	}

	if out != "2 2 1 2\n2 2 3 2\n2 2 2 1\n2 2 2 3\n" {
		t.Errorf("unexpected moves %q", out)
	}

	for _, args := range [][]string{
		{"moves", "0"},
		{"moves", "a", "0"},
		{"moves", "0", "5"},
	} {
		if _, err := run(t, "", args...); err == nil {
			t.Errorf("%v: expected an error", args)
		}
	}
}

func TestPerftCommand(t *testing.T) {
	out, err := run(t, "", "perft", "1")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasSuffix(out, "nodes: 8\n") {
		t.Errorf("unexpected output %q", out)
	}

	out, err = run(t, "", "perft", "2", "--divide", "--position", "t3t/5/2g2/5/t3t g 19 0")
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out, "2 2 1 2: 8\n") || !strings.HasSuffix(out, "nodes: 32\n") {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := run(t, "", "perft", "-1"); err == nil {
		t.Errorf("expected an error for a negative depth")
	}
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baghchal", "config.yaml")

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetArgs([]string{"config", "init", "--config", path})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("configuration file not written: %v", err)
	}

	out.Reset()
	root = Root()
	root.SetOut(&out)
	root.SetArgs([]string{"config", "--config", path})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(out.String(), "tiger: T") || !strings.Contains(out.String(), "log-level: info") {
		t.Errorf("unexpected configuration output:\n%s", out.String())
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestInvalidConfig(t *testing.T) {
	path := writeConfig(t, "log-level: loud\n")

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"moves", "--config", path})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected an error for an invalid configuration file")
	}

	if !strings.Contains(err.Error(), "hint: fix or remove "+path) {
		t.Errorf("error doesn't name the file: %v", err)
	}
}

func TestConfigCommandsWithInvalidConfig(t *testing.T) {
	path := writeConfig(t, "log-level: loud\n")

	var out bytes.Buffer
	root := Root()
	root.SetOut(&out)
	root.SetArgs([]string{"config", "--config", path})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out.String(), "# "+path+"\n") || !strings.Contains(out.String(), "log-level: info") {
		t.Errorf("unexpected configuration output:\n%s", out.String())
	}

	root = Root()
	root.SetOut(&out)
	root.SetArgs([]string{"config", "init", "--config", path})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(contents) != "log-level: loud\n" {
		t.Errorf("config init replaced an existing file: %q", contents)
	}
}

func TestExecute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := Execute([]string{"moves", "0", "9", "--config", path}); err == nil {
		t.Errorf("expected an error for an out of range square")
	}

	if err := Execute([]string{"nonsense", "--config", path}); err == nil {
		t.Errorf("expected an error for an unknown command")
	}
}
