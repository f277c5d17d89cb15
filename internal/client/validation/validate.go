// Package validation holds the pure, pre-network checks the client runs on a
// candidate upload. A non-nil error carries the user-facing reason; no I/O is
// performed here and the server remains the authority.
package validation

import (
	"errors"
	"fmt"
	"strings"
)

// MaxFileSize is the advisory upload ceiling: 1 GiB.
const MaxFileSize = 1024 * 1024 * 1024

// MaxTagLength bounds a single tag.
const MaxTagLength = 30

// MinPasswordLength applies to non-empty share passwords only; an empty
// password means the file is not protected.
const MinPasswordLength = 6

// forbiddenExtensions is the executable denylist, matched case-insensitively
// against the suffix after the last dot.
var forbiddenExtensions = map[string]struct{}{
	"exe": {},
	"bat": {},
	"cmd": {},
	"sh":  {},
	"msi": {},
	"com": {},
	"scr": {},
	"ps1": {},
	"vbs": {},
}

var (
	ErrFileTooLarge  = errors.New("le fichier dépasse la taille maximale de 1 Go")
	ErrPasswordShort = errors.New("le mot de passe doit contenir au moins 6 caractères")
	ErrTagEmpty      = errors.New("le tag ne peut pas être vide")
	ErrTagTooLong    = errors.New("le tag ne peut pas dépasser 30 caractères")
	ErrTagDuplicate  = errors.New("ce tag existe déjà")
)

// ForbiddenExtensionError names the rejected extension so the message can
// surface it, e.g. "les fichiers .exe ne sont pas autorisés".
type ForbiddenExtensionError struct {
	Extension string
}

func (e *ForbiddenExtensionError) Error() string {
	return fmt.Sprintf("les fichiers .%s ne sont pas autorisés", e.Extension)
}

// Extension returns the lowercase suffix after the last dot of name, or ""
// when the name has no dot.
func Extension(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(name[idx+1:])
}

// CheckFile validates a candidate file before any network call. Exactly one
// reason is reported; the extension check takes priority over the size check.
func CheckFile(name string, size int64) error {
	ext := Extension(name)
	if _, ok := forbiddenExtensions[ext]; ok {
		return &ForbiddenExtensionError{Extension: ext}
	}
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	return nil
}

// CheckPassword validates an optional share password. Empty is always
// accepted; a non-empty password must be at least MinPasswordLength runes.
func CheckPassword(password string) error {
	if password == "" {
		return nil
	}
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordShort
	}
	return nil
}

// CheckTag validates a candidate tag against the tags already attached to a
// draft. The tag is trimmed first; matching is case-sensitive and exact.
// The trimmed tag is returned so the caller stores the canonical form.
func CheckTag(tag string, existing []string) (string, error) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return "", ErrTagEmpty
	}
	if len([]rune(trimmed)) > MaxTagLength {
		return "", ErrTagTooLong
	}
	for _, t := range existing {
		if t == trimmed {
			return "", ErrTagDuplicate
		}
	}
	return trimmed, nil
}
