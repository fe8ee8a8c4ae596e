package impl

import (
	"io"
	"log/slog"

	"petlink/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strp(s string) *string {
	return &s
}

func testUser(uid string, role entity.Role) *entity.AppUser {
	return &entity.AppUser{
		UID:         uid,
		Email:       uid + "@example.com",
		DisplayName: uid,
		Role:        role,
	}
}
