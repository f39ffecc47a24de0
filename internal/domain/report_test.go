package domain

import (
	"errors"
	"testing"
)

func TestParseReportFormat(t *testing.T) {
	tests := []struct {
		raw     string
		want    ReportFormat
		wantErr error
	}{
		{"", ReportFormatJSON, nil},
		{"json", ReportFormatJSON, nil},
		{"xlsx", ReportFormatXLSX, nil},
		{"XLSX", "", ErrInvalidFormat},
		{"csv", "", ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseReportFormat(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseReportFormat(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseReportFormat(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestReportFormatContentType(t *testing.T) {
	if got := ReportFormatJSON.ContentType(); got != "application/json" {
		t.Errorf("json content type = %s", got)
	}
	if got := ReportFormatXLSX.ContentType(); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("xlsx content type = %s", got)
	}
}
