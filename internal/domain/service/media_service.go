package service

import "context"

// UploadCredentials is the short-lived triple a client needs for a direct
// upload to the media CDN.
type UploadCredentials struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

// MediaService defines the interface to the delegated media CDN. Deletions
// are best-effort by design: callers never abort their primary write when a
// cleanup here fails.
type MediaService interface {
	// UploadAuthParams returns signed credentials for a direct
	// client-to-CDN upload, or an error when the CDN keys are not
	// configured server-side.
	UploadAuthParams() (*UploadCredentials, error)

	// DeleteFile removes a remote file by its CDN file id.
	DeleteFile(ctx context.Context, fileID string) error

	// DeleteByPath lists files matching the normalized path and deletes the
	// first match. A path with no matches is success: nothing to clean up.
	DeleteByPath(ctx context.Context, path string) error
}
