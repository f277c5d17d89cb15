package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 o"},
		{512, "512 o"},
		{1023, "1023 o"},
		{1024, "1.0 Ko"},
		{1536, "1.5 Ko"},
		{1024 * 1024, "1.0 Mo"},
		{10 * 1024 * 1024, "10.0 Mo"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.bytes))
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15 juin 2025", FormatDate(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 janv. 2026", FormatDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
}
