package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeS3 map[string]string

func (f fakeS3) GetObjectText(_ context.Context, bucket, key string) (string, error) {
	text, ok := f[bucket+"/"+key]
	if !ok {
		return "", fmt.Errorf("no such object %s/%s", bucket, key)
	}
	return text, nil
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.txt")
	if err := os.WriteFile(path, []byte("안녕하세요"), 0o644); err != nil {
		t.Fatal(err)
	}

	l := &Loader{
		Stdin: strings.NewReader("from stdin 中"),
		S3:    fakeS3{"docs/a.txt": "🎯"},
	}
	specs := []string{"A中🎯", "-", "file:" + path, "s3://docs/a.txt", "s3://docs/missing.txt", "-"}
	results := l.Load(context.Background(), specs)

	if len(results) != len(specs) {
		t.Fatalf("got %d results, want %d", len(results), len(specs))
	}

	tests := []struct {
		kind    string
		text    string
		wantErr bool
	}{
		{KindLiteral, "A中🎯", false},
		{KindStdin, "from stdin 中", false},
		{KindFile, "안녕하세요", false},
		{KindS3, "🎯", false},
		{"", "", true},
		{"", "", true},
	}

	for i, tt := range tests {
		r := results[i]
		if r.Spec != specs[i] {
			t.Errorf("[%d] spec = %q, want %q", i, r.Spec, specs[i])
		}
		if (r.Err != nil) != tt.wantErr {
			t.Errorf("[%d] %q error = %v, wantErr %v", i, specs[i], r.Err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if r.Input.Source != tt.kind || r.Input.Text != tt.text {
			t.Errorf("[%d] got %s %q, want %s %q", i, r.Input.Source, r.Input.Text, tt.kind, tt.text)
		}
	}

	if results[2].Input.Label != "greeting.txt" {
		t.Errorf("file label = %q", results[2].Input.Label)
	}
}

func TestLoadFilePaths(t *testing.T) {
	l := &Loader{FilePaths: true}
	results := l.Load(context.Background(), []string{filepath.Join(t.TempDir(), "nope.txt")})
	if results[0].Err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadWithoutS3Client(t *testing.T) {
	l := &Loader{}
	results := l.Load(context.Background(), []string{"s3://docs/a.txt"})
	if results[0].Err == nil {
		t.Error("expected error without S3 client")
	}
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	l := &Loader{}
	results := l.Load(ctx, []string{"hello"})
	if results[0].Err == nil {
		t.Error("expected context error")
	}
}

func TestNeedsS3(t *testing.T) {
	if NeedsS3([]string{"hello", "file:x"}) {
		t.Error("NeedsS3 without s3 specs = true")
	}
	if !NeedsS3([]string{"hello", "s3://b/k"}) {
		t.Error("NeedsS3 with s3 spec = false")
	}
}
