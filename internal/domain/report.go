package domain

import (
	"context"
	"time"
)

// ReportStore persists exported report documents and hands out temporary download links
type ReportStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ReportFormat is the file format of an exported report
type ReportFormat string

const (
	ReportFormatJSON ReportFormat = "json"
	ReportFormatXLSX ReportFormat = "xlsx"
)

// ParseReportFormat maps a query value to a format. Empty means JSON.
func ParseReportFormat(raw string) (ReportFormat, error) {
	switch ReportFormat(raw) {
	case "", ReportFormatJSON:
		return ReportFormatJSON, nil
	case ReportFormatXLSX:
		return ReportFormatXLSX, nil
	}
	return "", ErrInvalidFormat
}

// ContentType returns the MIME type stored with the exported object
func (f ReportFormat) ContentType() string {
	if f == ReportFormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/json"
}
