package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datashare/internal/client/api"
	"datashare/internal/client/listing"
	"datashare/internal/client/models"
	"datashare/internal/client/session"
	"datashare/internal/client/upload"
	"datashare/internal/logging"
)

// fakeAPI implements api.Client for command tests.
type fakeAPI struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginErr      error

	uploadReq api.UploadRequest
	uploadRet models.FileRecord
	uploadErr error

	info    models.FileInfo
	infoErr error
	body    []byte

	records []models.FileRecord

	deletedID int64
}

func (f *fakeAPI) Register(context.Context, string, string) (string, error) {
	return f.registerToken, f.registerErr
}

func (f *fakeAPI) Login(context.Context, string, string) (string, error) {
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) Upload(_ context.Context, req api.UploadRequest) (models.FileRecord, error) {
	f.uploadReq = req
	return f.uploadRet, f.uploadErr
}

func (f *fakeAPI) FileInfo(context.Context, string) (models.FileInfo, error) {
	return f.info, f.infoErr
}

func (f *fakeAPI) Download(_ context.Context, _ string, _ string, w io.Writer) error {
	_, err := w.Write(f.body)
	return err
}

func (f *fakeAPI) ListFiles(context.Context) ([]models.FileRecord, error) {
	return f.records, nil
}

func (f *fakeAPI) DeleteFile(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

func futureTime() time.Time {
	return time.Now().Add(72 * time.Hour)
}

// testApp wires an App around the fake client with a temp-dir session store.
func testApp(t *testing.T, fc *fakeAPI) *App {
	t.Helper()

	sessions := session.NewStore(filepath.Join(t.TempDir(), "token"))
	listings := listing.NewService(fc)
	uploads := upload.NewWorkflow(fc, listings, "https://share.example")

	return &App{
		log:         logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		sessions:    sessions,
		client:      fc,
		listings:    listings,
		uploads:     uploads,
		downloadDir: t.TempDir(),
		reader:      bufio.NewReader(strings.NewReader("")),
	}
}

// script replaces the interactive seams with canned answers and captures
// everything printed. Restores the seams on test cleanup.
func script(t *testing.T, lines []string, passwords []string) *[]string {
	t.Helper()

	printed := &[]string{}

	oldPrintln := printlnFn
	oldText := getSimpleText
	oldPassword := getPassword
	t.Cleanup(func() {
		printlnFn = oldPrintln
		getSimpleText = oldText
		getPassword = oldPassword
	})

	printlnFn = func(args ...any) {
		*printed = append(*printed, strings.TrimSpace(fmt.Sprintln(args...)))
	}

	li, pi := 0, 0
	getSimpleText = func(*bufio.Reader, string, io.Writer) (string, error) {
		if li >= len(lines) {
			return "", nil
		}
		line := lines[li]
		li++
		return line, nil
	}
	getPassword = func(string, io.Writer) (string, error) {
		if pi >= len(passwords) {
			return "", nil
		}
		pw := passwords[pi]
		pi++
		return pw, nil
	}

	return printed
}

func TestRegisterPersistsCredential(t *testing.T) {
	fc := &fakeAPI{registerToken: "jwt-new"}
	a := testApp(t, fc)
	script(t, []string{"a@test.com"}, []string{"password123", "password123"})

	require.NoError(t, a.Register(context.Background()))

	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "jwt-new", a.sessions.Credential())
}

func TestRegisterRejectsMismatchedPasswordsLocally(t *testing.T) {
	fc := &fakeAPI{registerToken: "never"}
	a := testApp(t, fc)
	script(t, []string{"a@test.com"}, []string{"password123", "password124"})

	require.Error(t, a.Register(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestRegisterKnownServerMessageLocalized(t *testing.T) {
	fc := &fakeAPI{registerErr: &api.RequestError{Status: 409, Message: "Email already exists"}}
	a := testApp(t, fc)
	printed := script(t, []string{"a@test.com"}, []string{"password123", "password123"})

	require.Error(t, a.Register(context.Background()))
	assert.Contains(t, strings.Join(*printed, "\n"), "Cette adresse email est deja utilisee")
	assert.False(t, a.isLoggedIn())
}

func TestLoginThenLogout(t *testing.T) {
	fc := &fakeAPI{loginToken: "jwt-1"}
	a := testApp(t, fc)
	script(t, []string{"a@test.com"}, []string{"secret"})

	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isLoggedIn())

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestUploadCommand(t *testing.T) {
	fc := &fakeAPI{uploadRet: models.FileRecord{ID: 1, Token: "tok123"}}
	a := testApp(t, fc)
	require.NoError(t, a.sessions.SetCredential("jwt"))

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o600))

	// expiration choice, then "copy the link?" answer
	printed := script(t, []string{"3", "n"}, []string{""})

	require.NoError(t, a.Upload(context.Background(), path))

	assert.Equal(t, "notes.txt", fc.uploadReq.FileName)
	assert.Equal(t, 3, fc.uploadReq.ExpirationDays)
	assert.Contains(t, strings.Join(*printed, "\n"), "https://share.example/download/tok123")
}

func TestUploadCommandRejectsForbiddenFile(t *testing.T) {
	fc := &fakeAPI{}
	a := testApp(t, fc)
	require.NoError(t, a.sessions.SetCredential("jwt"))

	path := filepath.Join(t.TempDir(), "payload.exe")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	script(t, nil, nil)

	require.Error(t, a.Upload(context.Background(), path))
	assert.Empty(t, fc.uploadReq.FileName, "rejected file must never reach the client")
}

func TestUploadCommandRequiresLogin(t *testing.T) {
	fc := &fakeAPI{}
	a := testApp(t, fc)
	printed := script(t, nil, nil)

	require.NoError(t, a.Upload(context.Background(), "/tmp/whatever.txt"))
	assert.Contains(t, strings.Join(*printed, "\n"), "login")
}

func TestGetCommandSavesFile(t *testing.T) {
	fc := &fakeAPI{
		info: models.FileInfo{Name: "report.pdf", Size: 3, ExpiredAt: futureTime()},
		body: []byte("pdf"),
	}
	a := testApp(t, fc)
	script(t, nil, nil)

	require.NoError(t, a.Get(context.Background(), "tok123"))

	content, err := os.ReadFile(filepath.Join(a.downloadDir, "report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf"), content)
}

func TestGetCommandUnavailableToken(t *testing.T) {
	fc := &fakeAPI{infoErr: &api.RequestError{Status: 404, Message: "File not found"}}
	a := testApp(t, fc)
	printed := script(t, nil, nil)

	require.NoError(t, a.Get(context.Background(), "nope"))
	assert.Contains(t, strings.Join(*printed, "\n"), "Ce lien n'existe pas ou a expiré.")
}

func TestRemoveCommand(t *testing.T) {
	fc := &fakeAPI{}
	a := testApp(t, fc)
	require.NoError(t, a.sessions.SetCredential("jwt"))
	script(t, nil, nil)

	require.NoError(t, a.Remove(context.Background(), "7"))
	assert.Equal(t, int64(7), fc.deletedID)
}
