package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
)

// mockAnything aliases mock.Anything for readability in expectations.
var mockAnything = mock.Anything

// parseDate parses a YYYY-MM-DD date in UTC, failing the test on error.
func parseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse date %q: %v", value, err)
	}
	return parsed
}
