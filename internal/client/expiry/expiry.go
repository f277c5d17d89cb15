// Package expiry derives the human-facing urgency of a file's expiration
// from its absolute expiry timestamp. Everything here is a pure function of
// (expiresAt, now): the result is never stored, so it cannot go stale.
// Whether a download is actually permitted is the server's call; these
// helpers only drive display.
package expiry

import (
	"fmt"
	"math"
	"time"
)

// Status classifies how urgent an expiration is for display purposes.
type Status int

const (
	// Expired means the expiry moment has passed (days remaining <= 0).
	Expired Status = iota
	// ExpiringSoon means the file expires within one day.
	ExpiringSoon
	// Normal means more than one day remains.
	Normal
)

// DaysUntil returns the number of whole days between now and expiresAt,
// rounding partial days up: an expiry one minute from now yields 1, not 0.
// A past expiry yields zero or a negative count.
func DaysUntil(expiresAt, now time.Time) int {
	return int(math.Ceil(expiresAt.Sub(now).Hours() / 24))
}

// Classify maps a remaining-day count to a Status.
func Classify(days int) Status {
	switch {
	case days <= 0:
		return Expired
	case days == 1:
		return ExpiringSoon
	default:
		return Normal
	}
}

// Label renders the dashboard expiry label for a remaining-day count.
func Label(days int) string {
	switch {
	case days <= 0:
		return "Expiré"
	case days == 1:
		return "Expire demain"
	default:
		return fmt.Sprintf("Expire dans %d jours", days)
	}
}

// DownloadNotice renders the sentence shown on the download page.
func DownloadNotice(days int) string {
	switch {
	case days <= 0:
		return "Ce fichier n'est plus disponible en téléchargement car il a expiré."
	case days == 1:
		return "Ce fichier expirera demain."
	default:
		return fmt.Sprintf("Ce fichier expirera dans %d jours.", days)
	}
}

// FormatExpiration renders a retention choice for the upload prompt,
// e.g. "une journée" for 1 or "une semaine" for 7.
func FormatExpiration(days int) string {
	switch days {
	case 1:
		return "une journée"
	case 7:
		return "une semaine"
	default:
		return fmt.Sprintf("%d jours", days)
	}
}
