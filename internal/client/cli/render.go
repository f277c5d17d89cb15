package cli

import (
	"fmt"
	"time"

	"github.com/gookit/color"

	"datashare/internal/client/listing"
)

// timeNow is a test seam for the wall clock.
var timeNow = time.Now

// FormatFileSize renders a byte count the way the service does:
// "512 o", "1.5 Ko", "20.0 Mo".
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d o", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f Ko", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f Mo", float64(bytes)/(1024*1024))
	}
}

// FormatDate renders a timestamp as a short date, e.g. "15 juin 2025".
func FormatDate(t time.Time) string {
	months := []string{
		"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc.",
	}
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}

func colorStatus(s listing.Status) string {
	if s == listing.StatusExpired {
		return color.Red.Sprint("expiré")
	}
	return color.Green.Sprint("actif")
}
