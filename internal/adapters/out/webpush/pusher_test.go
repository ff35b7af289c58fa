package webpush_test

import (
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	pusher "gestion/internal/adapters/out/webpush"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/notification"
	"gestion/internal/core/ports"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscription(t *testing.T, endpoint string) *notification.Subscription {
	t.Helper()
	key, err := ecdh.P256().GenerateKey(rand.Reader)
	require.NoError(t, err)
	auth := make([]byte, 16)
	_, err = rand.Read(auth)
	require.NoError(t, err)

	s, err := notification.NewSubscription(
		endpoint,
		base64.RawURLEncoding.EncodeToString(key.PublicKey().Bytes()),
		base64.RawURLEncoding.EncodeToString(auth),
		kernel.NewUUID(),
		time.Now(),
	)
	require.NoError(t, err)
	return s
}

func newPusher(t *testing.T, client *http.Client) *pusher.Pusher {
	t.Helper()
	private, public, err := webpush.GenerateVAPIDKeys()
	require.NoError(t, err)
	return pusher.NewPusher(pusher.Config{
		PublicKey:  public,
		PrivateKey: private,
		Subscriber: "mailto:gestao@chs.pt",
	}).WithHTTPClient(client)
}

func TestPusher_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
		fails   bool
	}{
		{"created", http.StatusCreated, nil, false},
		{"gone", http.StatusGone, ports.ErrSubscriptionGone, true},
		{"not found", http.StatusNotFound, ports.ErrSubscriptionGone, true},
		{"throttled", http.StatusTooManyRequests, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAuth, gotEncoding string
			srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				gotEncoding = r.Header.Get("Content-Encoding")
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			p := newPusher(t, srv.Client())
			err := p.Push(t.Context(), newSubscription(t, srv.URL+"/push/abc"), notification.Push{Title: "Pedido", Body: "PRODUÇÃO"})

			assert.True(t, strings.HasPrefix(gotAuth, "vapid t="), gotAuth)
			assert.Equal(t, "aes128gcm", gotEncoding)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.fails:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ports.ErrSubscriptionGone)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestPusher_DisabledIsNoop(t *testing.T) {
	p := pusher.NewPusher(pusher.Config{})
	assert.False(t, p.Enabled())
	assert.NoError(t, p.Push(t.Context(), newSubscription(t, "https://push.invalid/x"), notification.Push{}))
}
