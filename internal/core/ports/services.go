package ports

import (
	"context"
	"errors"
	"io"
	"time"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/notification"
)

// ErrSubscriptionGone is returned by a Pusher when the push service answered
// 404 or 410; the subscription should be deleted.
var ErrSubscriptionGone = errors.New("push subscription is gone")

// BlobStorage keeps attachment files.
type BlobStorage interface {
	Put(ctx context.Context, path string, r io.Reader, size int64, contentType string) error

	Remove(ctx context.Context, path string) error

	// URL returns the public URL of path.
	URL(path string) string
}

// PermissionCache keeps the roles resolved for a session.
type PermissionCache interface {
	// Get reports found=false on a cache miss.
	Get(ctx context.Context, sessionID string) (roles []access.Role, found bool, err error)

	Set(ctx context.Context, sessionID string, roles []access.Role, ttl time.Duration) error
}

// Mailer sends HTML e-mail. A disabled Mailer drops messages silently.
type Mailer interface {
	Enabled() bool

	Send(ctx context.Context, subject, htmlBody string) error
}

// Pusher delivers web push payloads. A disabled Pusher drops messages silently.
type Pusher interface {
	Enabled() bool

	Push(ctx context.Context, s *notification.Subscription, p notification.Push) error
}
