// Package imagekit talks to the ImageKit REST API. Uploads happen directly
// from the browser; the server only signs upload requests and deletes files.
package imagekit

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"petlink/config"
	"petlink/internal/domain/service"
	"petlink/internal/errors"

	"github.com/google/uuid"
)

const (
	apiBaseURL = "https://api.imagekit.io/v1"

	// Upload credentials stay valid long enough for a slow mobile upload
	// but expire well before the API's one hour ceiling.
	credentialTTL = 30 * time.Minute

	requestTimeout = 15 * time.Second
)

// ErrNotConfigured reports that no ImageKit keys are present. Callers treat
// media operations as unavailable rather than failed.
var ErrNotConfigured = errors.New("imagekit: credentials not configured")

type mediaService struct {
	publicKey  string
	privateKey string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewMediaService is the constructor for the ImageKit-backed media service.
// A nil or empty configuration yields a service whose operations return
// ErrNotConfigured.
func NewMediaService(cfg *config.ImageKitConfig, logger *slog.Logger) service.MediaService {
	svc := &mediaService{
		baseURL:    apiBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
		now:        time.Now,
	}
	if cfg != nil {
		svc.publicKey = cfg.PublicKey
		svc.privateKey = cfg.PrivateKey
	}

	return svc
}

func (svc *mediaService) configured() bool {
	return svc.privateKey != ""
}

// UploadAuthParams mints single-use client upload credentials. The signature
// is the hex HMAC-SHA1 of token+expire under the private key, which is the
// scheme the upload API verifies.
func (svc *mediaService) UploadAuthParams() (*service.UploadCredentials, error) {
	if !svc.configured() {
		return nil, ErrNotConfigured
	}

	token := uuid.NewString()
	expire := svc.now().Add(credentialTTL).Unix()

	mac := hmac.New(sha1.New, []byte(svc.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return &service.UploadCredentials{
		Token:     token,
		Expire:    expire,
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}, nil
}

// DeleteFile removes one file by its ImageKit file id. A file that is
// already gone counts as success.
func (svc *mediaService) DeleteFile(ctx context.Context, fileID string) error {
	if !svc.configured() {
		return ErrNotConfigured
	}
	if fileID == "" {
		return errors.New("imagekit: file id is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, svc.baseURL+"/files/"+url.PathEscape(fileID), nil)
	if err != nil {
		return errors.Wrap(err, "failed to build delete request")
	}
	req.SetBasicAuth(svc.privateKey, "")

	resp, err := svc.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call delete API")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusOK:
		return nil
	case http.StatusNotFound:
		svc.logger.DebugContext(ctx, "media file already deleted", slog.String("file_id", fileID))

		return nil
	default:
		return errors.Errorf("imagekit: delete returned status %d", resp.StatusCode)
	}
}

// fileEntry is the subset of the list API response we need.
type fileEntry struct {
	FileID string `json:"fileId"`
}

// DeleteByPath resolves a storage path to a file id and deletes it. Paths
// that resolve to nothing are treated as success, so stale references in
// profiles never block a cleanup.
func (svc *mediaService) DeleteByPath(ctx context.Context, path string) error {
	if !svc.configured() {
		return ErrNotConfigured
	}
	if path == "" {
		return nil
	}

	query := url.Values{}
	query.Set("searchQuery", fmt.Sprintf("filePath = %q", path))
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, svc.baseURL+"/files?"+query.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to build list request")
	}
	req.SetBasicAuth(svc.privateKey, "")

	resp, err := svc.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call list API")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("imagekit: list returned status %d", resp.StatusCode)
	}

	var entries []fileEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return errors.Wrap(err, "failed to decode list response")
	}

	if len(entries) == 0 {
		svc.logger.DebugContext(ctx, "no media file found for path", slog.String("path", path))

		return nil
	}

	return svc.DeleteFile(ctx, entries[0].FileID)
}
