package firestore

import (
	"petlink/internal/domain/repository"
	"petlink/internal/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// isNotFound reports whether the store rejected the operation because the
// document does not exist.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// isIndexMissing reports whether a query shape failed because it requires a
// composite index the store does not have yet. Firestore surfaces this as
// FailedPrecondition.
func isIndexMissing(err error) bool {
	return status.Code(err) == codes.FailedPrecondition
}

// translateQueryError maps store errors on read query paths to domain
// sentinels so the usecase layer can distinguish the missing-index case.
func translateQueryError(err error, context string) error {
	if err == nil {
		return nil
	}
	if isIndexMissing(err) {
		return errors.Wrap(repository.ErrIndexMissing, context)
	}

	return errors.Wrap(err, context)
}
