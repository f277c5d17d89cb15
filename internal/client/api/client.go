package api

import (
	"context"
	"io"

	"datashare/internal/client/models"
)

// UploadRequest describes one file submission. Content is streamed into the
// multipart body; Size is advisory and not sent to the server.
type UploadRequest struct {
	FileName       string
	Content        io.Reader
	ExpirationDays int
	// Password is optional; empty means the file is not protected.
	Password string
	Tags     []string
}

// Client is the API contract the workflows depend on. The production
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	// Register creates an account and returns the bearer credential.
	Register(ctx context.Context, email, password string) (string, error)

	// Login authenticates and returns the bearer credential.
	Login(ctx context.Context, email, password string) (string, error)

	// Upload submits a file and returns the server's record, including the
	// share token.
	Upload(ctx context.Context, req UploadRequest) (models.FileRecord, error)

	// FileInfo resolves the metadata behind a share token without
	// transferring the file body.
	FileInfo(ctx context.Context, token string) (models.FileInfo, error)

	// Download streams the file binary into w. The password is sent only
	// when non-empty.
	Download(ctx context.Context, token, password string, w io.Writer) error

	// ListFiles returns the authenticated user's records.
	ListFiles(ctx context.Context) ([]models.FileRecord, error)

	// DeleteFile removes one of the user's files by id.
	DeleteFile(ctx context.Context, id int64) error
}
