package imagekit

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"petlink/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, baseURL string) *mediaService {
	t.Helper()

	svc := &mediaService{
		publicKey:  "public_test",
		privateKey: "private_test",
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
	}

	return svc
}

func TestUploadAuthParams(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(t, "http://unused")
	svc.now = func() time.Time { return fixed }

	creds, err := svc.UploadAuthParams()
	require.NoError(t, err)

	assert.NotEmpty(t, creds.Token)
	assert.Equal(t, fixed.Add(credentialTTL).Unix(), creds.Expire)

	mac := hmac.New(sha1.New, []byte("private_test"))
	mac.Write([]byte(creds.Token + strconv.FormatInt(creds.Expire, 10)))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), creds.Signature)
}

func TestUploadAuthParamsNotConfigured(t *testing.T) {
	t.Parallel()

	svc := NewMediaService(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.UploadAuthParams()
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestDeleteFile(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path

		user, _, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "private_test", user)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)

	err := svc.DeleteFile(context.Background(), "file-123")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/files/file-123", gotPath)
}

func TestDeleteFileAlreadyGone(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)

	assert.NoError(t, svc.DeleteFile(context.Background(), "gone"))
}

func TestDeleteByPath(t *testing.T) {
	t.Parallel()

	var deleted string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			assert.Contains(t, r.URL.Query().Get("searchQuery"), "pets/photo.png")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"fileId":"resolved-id"}]`))
		case r.Method == http.MethodDelete:
			deleted = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)

	err := svc.DeleteByPath(context.Background(), "pets/photo.png")
	require.NoError(t, err)
	assert.Equal(t, "/files/resolved-id", deleted)
}

func TestDeleteByPathNoMatch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)

	assert.NoError(t, svc.DeleteByPath(context.Background(), "pets/missing.png"))
}

func TestNewMediaServiceReadsConfig(t *testing.T) {
	t.Parallel()

	svc := NewMediaService(&config.ImageKitConfig{
		PublicKey:  "pk",
		PrivateKey: "sk",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := svc.UploadAuthParams()
	assert.NoError(t, err)
}
