package contracts

import (
	"context"
	"time"
)

// ObjectStorage resolves stored file objects to time-limited URLs.
type ObjectStorage interface {
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}
