package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGetDefaultRegion(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	if got := GetDefaultRegion(); got != "us-east-1" {
		t.Errorf("GetDefaultRegion() = %q, want us-east-1", got)
	}

	t.Setenv("AWS_DEFAULT_REGION", "eu-west-1")
	if got := GetDefaultRegion(); got != "eu-west-1" {
		t.Errorf("GetDefaultRegion() = %q, want eu-west-1", got)
	}

	t.Setenv("AWS_REGION", "ap-northeast-2")
	if got := GetDefaultRegion(); got != "ap-northeast-2" {
		t.Errorf("GetDefaultRegion() = %q, want ap-northeast-2", got)
	}
}

func TestFormatHelpers(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{FormatBytes(0), "0 B"},
		{FormatBytes(1500), "1.5 kB"},
		{FormatBytes(-1), "N/A"},
		{FormatCount(1234567), "1,234,567"},
		{FormatDuration(1500 * time.Millisecond), "1.50s"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	out, err := FormatJSON(map[string]int{"display_width": 5})
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	if !strings.Contains(out, `"display_width": 5`) {
		t.Errorf("FormatJSON = %s", out)
	}
}
