package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var durationLine = regexp.MustCompile(`^Sorting duration: \d+ milliseconds\n$`)

func TestRun(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(input, []byte("5 3 8 1\n9 2 7 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	empty := filepath.Join(dir, "empty.txt")
	if err := os.WriteFile(empty, []byte(" \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	output := filepath.Join(dir, "output.txt")
	unwritable := filepath.Join(dir, "no-such-dir", "output.txt")
	missing := filepath.Join(dir, "missing.txt")

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout bool
		wantStderr string
	}{
		{"sorts", []string{"-o", output, "4", input}, 0, true, ""},
		{"more processes than numbers", []string{"-o", output, "16", input}, 0, true, ""},
		{"no arguments", nil, 1, false, "Usage:"},
		{"one argument", []string{"4"}, 1, false, "Usage:"},
		{"three arguments", []string{"4", input, input}, 1, false, "Usage:"},
		{"not a number", []string{"four", input}, 1, false, "must be an integer"},
		{"zero processes", []string{"0", input}, 1, false, "gte 1"},
		{"negative processes", []string{"-2", input}, 1, false, "unknown shorthand flag"},
		{"unknown flag", []string{"--bogus", "2", input}, 1, false, "unknown flag"},
		{"missing input", []string{"-o", output, "2", missing}, 1, false, "unable to read file"},
		{"empty input", []string{"-o", output, "2", empty}, 1, false, "no data found"},
		{"unwritable output", []string{"-o", unwritable, "2", input}, 0, true, "unable to create output file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)
			if code != tt.wantCode {
				t.Fatalf("exit code %d, want %d, stderr: %s", code, tt.wantCode, stderr.String())
			}

			if tt.wantStdout != durationLine.MatchString(stdout.String()) {
				t.Errorf("stdout %q, want duration line: %v", stdout.String(), tt.wantStdout)
			}

			if tt.wantStderr == "" && stderr.Len() != 0 {
				t.Errorf("unexpected stderr %q", stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr %q does not contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunWritesOutput(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(input, []byte("10 9 8 7 6 5 4 3 2 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "sorted.txt")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"--output", output, "3", input}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if want := "1 2 3 4 5 6 7 8 9 10 "; string(got) != want {
		t.Fatalf("output %q, want %q", got, want)
	}
}

func TestRunVerbose(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(input, []byte("3 2 1 0"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-v", "-o", filepath.Join(dir, "out.txt"), "3", input}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "merge rounds") {
		t.Errorf("stderr %q does not trace merge rounds", stderr.String())
	}
	if !durationLine.MatchString(stdout.String()) {
		t.Errorf("stdout %q, want only the duration line", stdout.String())
	}
}

func TestRunFlagErrorPrintsUsage(t *testing.T) {
	for _, args := range [][]string{{"-2", "in.txt"}, {"--bogus", "2", "in.txt"}} {
		var stdout, stderr bytes.Buffer

		if code := run(args, &stdout, &stderr); code != 1 {
			t.Fatalf("%v: exit code %d, want 1", args, code)
		}

		out := stderr.String()
		if !strings.Contains(out, "Error:") || !strings.Contains(out, usage) {
			t.Errorf("%v: stderr %q, want error and usage", args, out)
		}
		if stdout.Len() != 0 {
			t.Errorf("%v: unexpected stdout %q", args, stdout.String())
		}
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"--help"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), usage) {
		t.Errorf("stderr %q, want usage", stderr.String())
	}
}
