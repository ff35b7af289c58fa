package order

import (
	"errors"
	"time"

	"gestion/internal/core/domain/model/kernel"
)

// StatusChange is one row of the status history.
type StatusChange struct {
	orderID    kernel.UUID
	from       Status
	to         Status
	actorID    kernel.UUID
	outOfOrder bool
	changedAt  time.Time
}

func NewStatusChange(
	orderID kernel.UUID,
	from Status,
	to Status,
	actorID kernel.UUID,
	outOfOrder bool,
	changedAt time.Time,
) (*StatusChange, error) {
	if err := errors.Join(orderID.Validate(), to.Validate(), actorID.Validate()); err != nil {
		return nil, err
	}
	return &StatusChange{
		orderID:    orderID,
		from:       from,
		to:         to,
		actorID:    actorID,
		outOfOrder: outOfOrder,
		changedAt:  changedAt,
	}, nil
}

func (c *StatusChange) OrderID() kernel.UUID { return c.orderID }
func (c *StatusChange) From() Status         { return c.from }
func (c *StatusChange) To() Status           { return c.to }
func (c *StatusChange) ActorID() kernel.UUID { return c.actorID }
func (c *StatusChange) OutOfOrder() bool     { return c.outOfOrder }
func (c *StatusChange) ChangedAt() time.Time { return c.changedAt }
