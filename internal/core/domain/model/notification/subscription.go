package notification

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"
)

// Subscription is a browser push endpoint with its encryption keys.
// The endpoint is unique.
type Subscription struct {
	endpoint  string
	p256dh    string
	auth      string
	userID    kernel.UUID
	createdAt time.Time
}

func NewSubscription(endpoint, p256dh, auth string, userID kernel.UUID, now time.Time) (*Subscription, error) {
	endpoint = strings.TrimSpace(endpoint)

	var endpointErr, keyErr error
	if u, err := url.Parse(endpoint); err != nil || u.Scheme != "https" || u.Host == "" {
		endpointErr = errs.NewValueIsInvalidErrorWithCause("endpoint", errors.New("must be an absolute https URL"))
	}
	if strings.TrimSpace(p256dh) == "" || strings.TrimSpace(auth) == "" {
		keyErr = errs.NewValueIsRequiredError("keys")
	}
	if err := errors.Join(endpointErr, keyErr, userID.Validate()); err != nil {
		return nil, err
	}

	return &Subscription{
		endpoint:  endpoint,
		p256dh:    p256dh,
		auth:      auth,
		userID:    userID,
		createdAt: now,
	}, nil
}

func (s *Subscription) Endpoint() string     { return s.endpoint }
func (s *Subscription) P256dh() string       { return s.p256dh }
func (s *Subscription) Auth() string         { return s.auth }
func (s *Subscription) UserID() kernel.UUID  { return s.userID }
func (s *Subscription) CreatedAt() time.Time { return s.createdAt }
