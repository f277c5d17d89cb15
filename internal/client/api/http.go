package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"datashare/internal/client/models"
)

// CredentialSource returns the current bearer credential, or "" when the
// user is logged out. It is consulted on every request so a logout in
// another process takes effect immediately.
type CredentialSource func() string

// HTTPClient implements Client over the DataShare REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:8080/api"). credential supplies the bearer token;
// it may be nil for a client that only performs anonymous calls.
func NewHTTPClient(baseURL string, credential CredentialSource) *HTTPClient {
	if credential == nil {
		credential = func() string { return "" }
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &authTransport{base: http.DefaultTransport, credential: credential},
		},
	}
}

// authTransport is the single request interceptor: it attaches the
// Authorization header in bearer scheme when a credential is held, and no
// header at all otherwise.
type authTransport struct {
	base       http.RoundTripper
	credential CredentialSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if c := t.credential(); c != "" {
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+c)
	}
	return t.base.RoundTrip(req)
}

type authPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Register creates an account and returns the bearer credential.
func (c *HTTPClient) Register(ctx context.Context, email, password string) (string, error) {
	var resp authResponse
	err := c.postJSON(ctx, "/auth/register", authPayload{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Login authenticates and returns the bearer credential.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp authResponse
	err := c.postJSON(ctx, "/auth/login", authPayload{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Upload streams req.Content as a multipart submission to POST /files.
func (c *HTTPClient) Upload(ctx context.Context, req UploadRequest) (models.FileRecord, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		err := writeUploadBody(mw, req)
		if cerr := mw.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files", pr)
	if err != nil {
		return models.FileRecord{}, err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return models.FileRecord{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return models.FileRecord{}, decodeError(resp)
	}

	var record models.FileRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return models.FileRecord{}, fmt.Errorf("decode upload response: %w", err)
	}
	return record, nil
}

func writeUploadBody(mw *multipart.Writer, req UploadRequest) error {
	part, err := mw.CreateFormFile("file", req.FileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, req.Content); err != nil {
		return err
	}
	if err := mw.WriteField("expirationDays", strconv.Itoa(req.ExpirationDays)); err != nil {
		return err
	}
	if req.Password != "" {
		if err := mw.WriteField("password", req.Password); err != nil {
			return err
		}
	}
	for _, tag := range req.Tags {
		if err := mw.WriteField("tags", tag); err != nil {
			return err
		}
	}
	return nil
}

// FileInfo resolves a share token's metadata without the file body.
func (c *HTTPClient) FileInfo(ctx context.Context, token string) (models.FileInfo, error) {
	var info models.FileInfo
	err := c.doJSON(ctx, http.MethodGet, "/files/download/"+url.PathEscape(token), &info)
	return info, err
}

// Download streams the binary body of POST /files/download/{token} into w.
// The password travels as a query parameter and only when non-empty. An
// error response carries a JSON body even though the success path is binary;
// it is read as text and parsed for the server message.
func (c *HTTPClient) Download(ctx context.Context, token, password string, w io.Writer) error {
	endpoint := c.baseURL + "/files/download/" + url.PathEscape(token)
	if password != "" {
		endpoint += "?password=" + url.QueryEscape(password)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("read download body: %w", err)
	}
	return nil
}

// ListFiles returns the authenticated user's records.
func (c *HTTPClient) ListFiles(ctx context.Context) ([]models.FileRecord, error) {
	var records []models.FileRecord
	err := c.doJSON(ctx, http.MethodGet, "/files", &records)
	return records, err
}

// DeleteFile removes one of the user's files.
func (c *HTTPClient) DeleteFile(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/files/"+strconv.FormatInt(id, 10), nil)
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError turns a >=400 response into a RequestError, extracting the
// server's {"error": ...} message when the body can be parsed. A body that
// cannot be decoded leaves Message empty, which later falls back to the
// generic display message.
func decodeError(resp *http.Response) error {
	reqErr := &RequestError{Status: resp.StatusCode}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return reqErr
	}

	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		reqErr.Message = parsed.Error
	}
	return reqErr
}
