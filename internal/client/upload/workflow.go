// Package upload implements the file submission workflow as an explicit
// state machine.
//
// States move Idle, FileSelected, Submitting, then Succeeded or Failed. A
// Failed draft returns to FileSelected on any field edit or retry; Close
// resets unconditionally to Idle and discards the whole draft. Invalid
// combinations (Submitting with no file, Succeeded without a record) are
// unrepresentable: the state only advances through the methods below.
//
// Validation is local and advisory: a rejected file or short password never
// reaches the network. The server remains the authority and its rejections
// surface through the Failed state with a derived display message.
package upload

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"datashare/internal/client/api"
	"datashare/internal/client/listing"
	"datashare/internal/client/models"
	"datashare/internal/client/validation"
)

// State is the workflow's position in the submission lifecycle.
type State int

const (
	// StateIdle: no file accepted yet. A rejected selection stays here with
	// FileError attached.
	StateIdle State = iota
	// StateFileSelected: a validated file is attached and submission is
	// possible.
	StateFileSelected
	// StateSubmitting: a request is in flight; further submissions are
	// refused until it settles.
	StateSubmitting
	// StateSucceeded: the server acknowledged the upload; Result and
	// ShareLink are available.
	StateSucceeded
	// StateFailed: the server or transport rejected the submission; Failure
	// holds the display message.
	StateFailed
)

// AllowedExpirations are the retention choices offered by the service.
var AllowedExpirations = []int{1, 2, 3, 7}

// DefaultExpirationDays is preselected on a fresh draft.
const DefaultExpirationDays = 7

// ErrSubmissionInFlight is returned when Submit is called while a previous
// submission for the same draft has not settled. The guard is client-side
// best effort; server-side idempotency is the API's concern.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// ErrNoFileSelected is returned when Submit is called without an accepted file.
var ErrNoFileSelected = errors.New("no file selected")

// ErrInvalidExpiration is returned for retention values outside
// AllowedExpirations.
var ErrInvalidExpiration = errors.New("invalid expiration choice")

// Workflow owns one upload draft at a time.
type Workflow struct {
	client   api.Client
	listings *listing.Service
	// origin is the public web origin share links are built on.
	origin string

	// copyToClipboard is a seam for tests
	copyToClipboard func(string) error

	mu sync.Mutex
	// draftID identifies the current draft; a settled request whose draft
	// has since been discarded is dropped silently.
	draftID        uuid.UUID
	state          State
	fileName       string
	fileSize       int64
	password       string
	expirationDays int
	tags           []string

	fileError     error
	passwordError error
	failure       string

	result models.FileRecord
	copied bool
}

// NewWorkflow builds an upload workflow. listings is invalidated after every
// successful submission so the next collection render includes the new record.
func NewWorkflow(client api.Client, listings *listing.Service, origin string) *Workflow {
	w := &Workflow{
		client:          client,
		listings:        listings,
		origin:          origin,
		copyToClipboard: clipboard.WriteAll,
	}
	w.resetLocked()
	return w
}

func (w *Workflow) resetLocked() {
	w.draftID = uuid.New()
	w.state = StateIdle
	w.fileName = ""
	w.fileSize = 0
	w.password = ""
	w.expirationDays = DefaultExpirationDays
	w.tags = nil
	w.fileError = nil
	w.passwordError = nil
	w.failure = ""
	w.result = models.FileRecord{}
	w.copied = false
}

// Close discards the draft unconditionally, whatever the current state.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resetLocked()
}

// SelectFile validates a candidate file. On rejection the workflow stays
// Idle with the reason attached and no file accepted; on acceptance it moves
// to FileSelected. Selecting while Submitting is refused.
func (w *Workflow) SelectFile(name string, size int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state == StateSubmitting {
		return ErrSubmissionInFlight
	}

	if err := validation.CheckFile(name, size); err != nil {
		w.state = StateIdle
		w.fileName = ""
		w.fileSize = 0
		w.fileError = err
		return err
	}

	w.state = StateFileSelected
	w.fileName = name
	w.fileSize = size
	w.fileError = nil
	w.failure = ""
	return nil
}

// SetPassword records the optional share password. Editing a Failed draft
// returns it to FileSelected.
func (w *Workflow) SetPassword(password string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.password = password
	w.passwordError = nil
	w.recoverFromFailureLocked()
}

// SetExpiration records the retention choice; only AllowedExpirations are
// accepted.
func (w *Workflow) SetExpiration(days int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !slices.Contains(AllowedExpirations, days) {
		return ErrInvalidExpiration
	}
	w.expirationDays = days
	w.recoverFromFailureLocked()
	return nil
}

// AddTag validates and appends a tag, preserving addition order and
// refusing duplicates.
func (w *Workflow) AddTag(tag string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	trimmed, err := validation.CheckTag(tag, w.tags)
	if err != nil {
		return err
	}
	w.tags = append(w.tags, trimmed)
	w.recoverFromFailureLocked()
	return nil
}

// RemoveTag deletes a tag if present.
func (w *Workflow) RemoveTag(tag string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.tags = slices.DeleteFunc(w.tags, func(t string) bool { return t == tag })
	w.recoverFromFailureLocked()
}

func (w *Workflow) recoverFromFailureLocked() {
	if w.state == StateFailed {
		w.state = StateFileSelected
		w.failure = ""
	}
}

// CanSubmit reports whether the submit trigger should be enabled: a valid
// file present and no submission in flight.
func (w *Workflow) CanSubmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state == StateFileSelected || w.state == StateFailed
}

// Submit runs the pre-network password check and, if it passes, sends the
// draft to the server. content supplies the file body. On success the
// workflow reaches Succeeded and the listing cache is invalidated; on any
// request failure it reaches Failed with a display message and the draft can
// be edited or retried. A draft discarded while the request was in flight
// absorbs the settled result silently.
func (w *Workflow) Submit(ctx context.Context, content io.Reader) error {
	w.mu.Lock()

	switch w.state {
	case StateSubmitting:
		w.mu.Unlock()
		return ErrSubmissionInFlight
	case StateIdle, StateSucceeded:
		w.mu.Unlock()
		return ErrNoFileSelected
	}

	if err := validation.CheckPassword(w.password); err != nil {
		w.passwordError = err
		w.recoverFromFailureLocked()
		w.mu.Unlock()
		return err
	}
	w.passwordError = nil

	req := api.UploadRequest{
		FileName:       w.fileName,
		Content:        content,
		ExpirationDays: w.expirationDays,
		Password:       w.password,
		Tags:           slices.Clone(w.tags),
	}
	draft := w.draftID
	w.state = StateSubmitting
	w.failure = ""
	w.mu.Unlock()

	record, err := w.client.Upload(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.draftID != draft {
		// the dialog was closed mid-flight; drop the result
		return nil
	}

	if err != nil {
		w.state = StateFailed
		w.failure = api.DisplayMessage(err)
		return err
	}

	w.state = StateSucceeded
	w.result = record
	if w.listings != nil {
		w.listings.Invalidate()
	}
	return nil
}

// ShareLink returns origin + "/download/" + token for a Succeeded draft,
// or "" in any other state.
func (w *Workflow) ShareLink() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateSucceeded {
		return ""
	}
	return w.origin + "/download/" + w.result.Token
}

// CopyLink puts the share link on the clipboard and flips the cosmetic
// "copied" acknowledgment. No network is involved and there are no retry
// semantics.
func (w *Workflow) CopyLink() error {
	link := w.ShareLink()
	if link == "" {
		return ErrNoFileSelected
	}

	err := w.copyToClipboard(link)

	w.mu.Lock()
	w.copied = true
	w.mu.Unlock()
	return err
}

// State returns the current machine state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// FileName returns the accepted file's name, "" while Idle.
func (w *Workflow) FileName() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fileName
}

// FileSize returns the accepted file's size in bytes.
func (w *Workflow) FileSize() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fileSize
}

// ExpirationDays returns the current retention choice.
func (w *Workflow) ExpirationDays() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.expirationDays
}

// Tags returns the draft's tags in addition order.
func (w *Workflow) Tags() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.tags)
}

// FileError returns the last file rejection reason, nil when none.
func (w *Workflow) FileError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fileError
}

// PasswordError returns the last password rejection reason, nil when none.
func (w *Workflow) PasswordError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.passwordError
}

// Failure returns the display message of a Failed submission, "" otherwise.
func (w *Workflow) Failure() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.failure
}

// Result returns the acknowledged record of a Succeeded submission.
func (w *Workflow) Result() models.FileRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.result
}

// Copied reports whether the share link was copied at least once.
func (w *Workflow) Copied() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.copied
}
