package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"
)

var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Kind names the business event behind a message.
type Kind string

const (
	OrderStatusChanged Kind = "order_status_changed"
	PaymentRecorded    Kind = "payment_recorded"
	LowStock           Kind = "low_stock"
)

// State is the dispatch state of an outbox row.
type State string

const (
	Pending     State = "pending"
	Dispatching State = "dispatching"
	Sent        State = "sent"
	Failed      State = "failed"
)

// Push is the web push part of a message.
type Push struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
	Tag   string `json:"tag,omitempty"`
}

// Message is one outbox row.
type Message struct {
	id       kernel.UUID
	kind     Kind
	subject  string
	htmlBody string
	push     Push
	userID   *kernel.UUID

	state        State
	attempts     int
	lastError    string
	createdAt    time.Time
	dispatchedAt *time.Time

	isConstructed bool
}

// NewMessage creates a pending message. userID restricts push delivery to the
// subscriptions of one user; nil broadcasts.
func NewMessage(id kernel.UUID, kind Kind, subject, htmlBody string, push Push, userID *kernel.UUID, now time.Time) (*Message, error) {
	var subjectErr, kindErr error
	if strings.TrimSpace(subject) == "" {
		subjectErr = errs.NewValueIsRequiredError("subject")
	}
	switch kind {
	case OrderStatusChanged, PaymentRecorded, LowStock:
	default:
		kindErr = errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a notification kind", string(kind)))
	}
	if err := errors.Join(id.Validate(), subjectErr, kindErr); err != nil {
		return nil, err
	}

	return &Message{
		id:            id,
		kind:          kind,
		subject:       subject,
		htmlBody:      htmlBody,
		push:          push,
		userID:        userID,
		state:         Pending,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreMessage rebuilds a persisted outbox row.
func RestoreMessage(
	id kernel.UUID,
	kind Kind,
	subject, htmlBody string,
	push Push,
	userID *kernel.UUID,
	state State,
	attempts int,
	lastError string,
	createdAt time.Time,
	dispatchedAt *time.Time,
) (*Message, error) {
	m, err := NewMessage(id, kind, subject, htmlBody, push, userID, createdAt)
	if err != nil {
		return nil, err
	}
	switch state {
	case Pending, Dispatching, Sent, Failed:
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a dispatch state", string(state)))
	}
	m.state = state
	m.attempts = attempts
	m.lastError = lastError
	m.dispatchedAt = dispatchedAt
	return m, nil
}

func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

func (m *Message) ID() kernel.UUID          { return m.id }
func (m *Message) Kind() Kind               { return m.kind }
func (m *Message) Subject() string          { return m.subject }
func (m *Message) HTMLBody() string         { return m.htmlBody }
func (m *Message) Push() Push               { return m.push }
func (m *Message) UserID() *kernel.UUID     { return m.userID }
func (m *Message) State() State             { return m.state }
func (m *Message) Attempts() int            { return m.attempts }
func (m *Message) LastError() string        { return m.lastError }
func (m *Message) CreatedAt() time.Time     { return m.createdAt }
func (m *Message) DispatchedAt() *time.Time { return m.dispatchedAt }

// MarkDispatching claims a pending message. Claimed messages are never
// retried, so delivery is at most once.
func (m *Message) MarkDispatching() error {
	if m.state != Pending {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("cannot dispatch a %s message", m.state))
	}
	m.state = Dispatching
	m.attempts++
	return nil
}

// MarkSent records a successful delivery.
func (m *Message) MarkSent(now time.Time) {
	m.state = Sent
	m.lastError = ""
	m.dispatchedAt = &now
}

// MarkFailed records the delivery error. A partial failure (one channel down)
// is still a failure.
func (m *Message) MarkFailed(cause error, now time.Time) {
	m.state = Failed
	if cause != nil {
		m.lastError = cause.Error()
	}
	m.dispatchedAt = &now
}
