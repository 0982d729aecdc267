package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunJSON(t *testing.T) {
	out, _, err := execute(t, "", "-o", "json", "A中🎯", "Café")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	var reports []struct {
		Label  string `json:"label"`
		Result struct {
			Unicode      int `json:"unicode"`
			Total        int `json:"total"`
			DisplayWidth int `json:"display_width"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(out), &reports); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports", len(reports))
	}
	if reports[0].Result.DisplayWidth != 5 || reports[0].Result.Total != 3 {
		t.Errorf("A中🎯 = %+v", reports[0].Result)
	}
	if reports[1].Result.Unicode != 1 {
		t.Errorf("Café unicode = %d, want 1", reports[1].Result.Unicode)
	}
}

func TestRunStdinAndFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "korean.txt")
	if err := os.WriteFile(path, []byte("안녕"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, stderr, err := execute(t, "中文", "-o", "aligned", "--no-color", "-", "file:"+path, "file:"+path+".missing")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(stderr, "Error loading file:") {
		t.Errorf("stderr = %q", stderr)
	}
	for _, want := range []string{"(stdin)", "korean.txt", "LABEL"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunSamplesTable(t *testing.T) {
	out, _, err := execute(t, "", "--samples", "--no-color", "--sort")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"REF WIDTH", "SUMMARY:", "Emoji:", "japanese"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunSamplesAligned(t *testing.T) {
	out, _, err := execute(t, "", "--samples", "-o", "aligned")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "田中太郎") || !strings.Contains(out, "Status 状态 상태") {
		t.Errorf("aligned output missing people table:\n%s", out)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no input", nil},
		{"bad output", []string{"-o", "yaml", "hello"}},
		{"nothing loaded", []string{"--files", "/nonexistent/widthscan.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, "", tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMaxObjectSizeHelpShowsDefaultOnce(t *testing.T) {
	cmd := newRootCmd(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	usage := cmd.Flags().FlagUsages()

	var line string
	for _, l := range strings.Split(usage, "\n") {
		if strings.Contains(l, "--max-object-size") {
			line = l
		}
	}
	if n := strings.Count(line, "default"); n != 1 {
		t.Errorf("--max-object-size help mentions default %d times: %q", n, line)
	}
}

func TestRunVersion(t *testing.T) {
	out, _, err := execute(t, "", "--version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "widthscan version dev") {
		t.Errorf("version output = %q", out)
	}
}
