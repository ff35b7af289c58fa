// Package webpush delivers notifications to browser push subscriptions (VAPID).
package webpush

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gestion/internal/core/domain/model/notification"
	"gestion/internal/core/ports"

	"github.com/SherClockHolmes/webpush-go"
)

const ttlSeconds = 24 * 60 * 60

type Config struct {
	PublicKey  string
	PrivateKey string
	// Subscriber is the contact sent to push services, a mailto: or https: URL.
	Subscriber string
}

type Pusher struct {
	cfg    Config
	client webpush.HTTPClient
}

func NewPusher(cfg Config) *Pusher {
	return &Pusher{cfg: cfg, client: http.DefaultClient}
}

// WithHTTPClient replaces the client used to reach push services.
func (p *Pusher) WithHTTPClient(c webpush.HTTPClient) *Pusher {
	p.client = c
	return p
}

func (p *Pusher) Enabled() bool {
	return p.cfg.PublicKey != "" && p.cfg.PrivateKey != ""
}

// Push sends the payload. ports.ErrSubscriptionGone is returned when the push
// service reports the subscription as expired.
func (p *Pusher) Push(ctx context.Context, s *notification.Subscription, payload notification.Push) error {
	if !p.Enabled() {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, &webpush.Subscription{
		Endpoint: s.Endpoint(),
		Keys: webpush.Keys{
			Auth:   s.Auth(),
			P256dh: s.P256dh(),
		},
	}, &webpush.Options{
		HTTPClient:      p.client,
		Subscriber:      p.cfg.Subscriber,
		VAPIDPublicKey:  p.cfg.PublicKey,
		VAPIDPrivateKey: p.cfg.PrivateKey,
		TTL:             ttlSeconds,
		Urgency:         webpush.UrgencyNormal,
	})
	if err != nil {
		return fmt.Errorf("push to %s: %w", s.Endpoint(), err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusGone:
		return ports.ErrSubscriptionGone
	case resp.StatusCode >= 300:
		return fmt.Errorf("push to %s: unexpected status %d", s.Endpoint(), resp.StatusCode)
	}
	return nil
}
