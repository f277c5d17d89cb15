// Package models defines the client-side projections of server-owned records.
package models

import "time"

// FileRecord is the server's record of a single uploaded file, as returned by
// POST /files and GET /files. The client never mutates these fields; the
// share Token is the sole addressing key for downloads.
type FileRecord struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	Size              int64     `json:"size"`
	Token             string    `json:"token"`
	CreatedAt         time.Time `json:"createdAt"`
	ExpiredAt         time.Time `json:"expiredAt"`
	PasswordProtected bool      `json:"passwordProtected"`
	Tags              []string  `json:"tags"`
}

// FileInfo is the metadata resolved for a share token before the binary
// download, via GET /files/download/{token}. The Expired flag is the server's
// verdict; client-side recomputation from ExpiredAt is display freshness only.
type FileInfo struct {
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	Size              int64     `json:"size"`
	ExpiredAt         time.Time `json:"expiredAt"`
	PasswordProtected bool      `json:"passwordProtected"`
	Expired           bool      `json:"expired"`
}
