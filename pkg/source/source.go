// Package source resolves command line arguments into texts to analyze.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/younsl/widthscan/pkg/aws"
)

// Kind names where an input came from
const (
	KindLiteral = "literal"
	KindFile    = "file"
	KindStdin   = "stdin"
	KindS3      = "s3"
	KindSample  = "sample"
)

// Input is a loaded text ready for analysis
type Input struct {
	Label  string
	Source string
	Text   string
}

// ObjectReader reads text objects from S3
type ObjectReader interface {
	GetObjectText(ctx context.Context, bucket, key string) (string, error)
}

// Result pairs a spec with its loaded input or error
type Result struct {
	Spec  string
	Input Input
	Err   error
}

// Loader resolves input specs. S3 is optional; s3:// specs fail without it.
type Loader struct {
	Stdin     io.Reader
	S3        ObjectReader
	FilePaths bool
}

// Load resolves every spec concurrently. Results keep the order of specs.
func (l *Loader) Load(ctx context.Context, specs []string) []Result {
	results := make([]Result, len(specs))

	// stdin can only be consumed once
	stdinSeen := false

	var wg sync.WaitGroup
	for i, spec := range specs {
		results[i].Spec = spec
		if spec == "-" {
			if stdinSeen {
				results[i].Err = fmt.Errorf("stdin given more than once")
				continue
			}
			stdinSeen = true
		}

		wg.Add(1)
		go func(idx int, s string) {
			defer wg.Done()
			results[idx].Input, results[idx].Err = l.loadOne(ctx, s)
		}(i, spec)
	}

	wg.Wait()
	return results
}

func (l *Loader) loadOne(ctx context.Context, spec string) (Input, error) {
	if err := ctx.Err(); err != nil {
		return Input{}, err
	}

	switch {
	case spec == "-":
		return l.loadStdin()
	case aws.IsS3URI(spec):
		return l.loadS3(ctx, spec)
	case strings.HasPrefix(spec, "file:"):
		return loadFile(strings.TrimPrefix(spec, "file:"))
	case l.FilePaths:
		return loadFile(spec)
	default:
		return Input{Label: spec, Source: KindLiteral, Text: spec}, nil
	}
}

func (l *Loader) loadStdin() (Input, error) {
	if l.Stdin == nil {
		return Input{}, fmt.Errorf("stdin is not available")
	}
	data, err := io.ReadAll(l.Stdin)
	if err != nil {
		return Input{}, fmt.Errorf("error reading stdin: %w", err)
	}
	return Input{Label: "(stdin)", Source: KindStdin, Text: string(data)}, nil
}

func (l *Loader) loadS3(ctx context.Context, uri string) (Input, error) {
	if l.S3 == nil {
		return Input{}, fmt.Errorf("no S3 client configured for %s", uri)
	}
	bucket, key, err := aws.ParseS3URI(uri)
	if err != nil {
		return Input{}, err
	}
	text, err := l.S3.GetObjectText(ctx, bucket, key)
	if err != nil {
		return Input{}, err
	}
	return Input{Label: uri, Source: KindS3, Text: text}, nil
}

func loadFile(path string) (Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Input{}, fmt.Errorf("error reading file: %w", err)
	}
	return Input{Label: filepath.Base(path), Source: KindFile, Text: string(data)}, nil
}

// NeedsS3 reports whether any spec refers to an S3 object
func NeedsS3(specs []string) bool {
	for _, s := range specs {
		if aws.IsS3URI(s) {
			return true
		}
	}
	return false
}
