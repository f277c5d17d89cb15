package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      int
	}{
		{"one minute ahead rounds up to one day", now.Add(time.Minute), 1},
		{"exactly now", now, 0},
		{"one minute past", now.Add(-time.Minute), 0},
		{"long past", now.Add(-72 * time.Hour), -3},
		{"exactly one day", now.Add(24 * time.Hour), 1},
		{"one day and a second", now.Add(24*time.Hour + time.Second), 2},
		{"one week", now.Add(7 * 24 * time.Hour), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysUntil(tt.expiresAt, now)
			require.Equal(t, tt.want, got)

			// idempotent under re-evaluation with the same now
			require.Equal(t, got, DaysUntil(tt.expiresAt, now))
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, Expired, Classify(0))
	assert.Equal(t, Expired, Classify(-5))
	assert.Equal(t, ExpiringSoon, Classify(1))
	assert.Equal(t, Normal, Classify(2))
	assert.Equal(t, Normal, Classify(7))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Expiré", Label(0))
	assert.Equal(t, "Expire demain", Label(1))
	assert.Equal(t, "Expire dans 3 jours", Label(3))
}

func TestDownloadNotice(t *testing.T) {
	assert.Equal(t, "Ce fichier n'est plus disponible en téléchargement car il a expiré.", DownloadNotice(-1))
	assert.Equal(t, "Ce fichier expirera demain.", DownloadNotice(1))
	assert.Equal(t, "Ce fichier expirera dans 5 jours.", DownloadNotice(5))
}

func TestFormatExpiration(t *testing.T) {
	assert.Equal(t, "une journée", FormatExpiration(1))
	assert.Equal(t, "2 jours", FormatExpiration(2))
	assert.Equal(t, "une semaine", FormatExpiration(7))
}
