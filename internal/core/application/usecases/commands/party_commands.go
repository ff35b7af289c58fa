package commands

import (
	"context"
	"errors"
	"strings"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/party"
	"gestion/internal/pkg/errs"
	"gestion/internal/pkg/guard"
)

var (
	ErrCreatePartyCommandIsNotConstructed = errors.New(
		"CreatePartyCommand must be created via NewCreatePartyCommand constructor",
	)
	ErrArchivePartyCommandIsNotConstructed = errors.New(
		"ArchivePartyCommand must be created via NewArchivePartyCommand constructor",
	)
	ErrReactivatePartyCommandIsNotConstructed = errors.New(
		"ReactivatePartyCommand must be created via NewReactivatePartyCommand constructor",
	)
)

type CreatePartyCommand struct { //nolint:recvcheck //using for validation
	partyID kernel.UUID
	kind    party.Kind
	name    string
	contact party.Contact

	guard guard.ConstructorGuard
}

func NewCreatePartyCommand(partyID kernel.UUID, kind party.Kind, name string, contact party.Contact) (CreatePartyCommand, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(partyID.Validate(), kind.Validate(), nameErr); err != nil {
		return CreatePartyCommand{}, err
	}
	return CreatePartyCommand{partyID: partyID, kind: kind, name: name, contact: contact, guard: guard.NewConstructorGuard()}, nil
}

func (c CreatePartyCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartyCommandIsNotConstructed)
}

type CreatePartyCommandHandler struct {
	uowFactory PartyUoWFactory
}

func NewCreatePartyCommandHandler(uowFactory PartyUoWFactory) CreatePartyCommandHandler {
	return CreatePartyCommandHandler{uowFactory: uowFactory}
}

func (h *CreatePartyCommandHandler) Handle(ctx context.Context, cmd CreatePartyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := party.NewParty(cmd.partyID, cmd.kind, cmd.name, cmd.contact, now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.PartyRepository().Add(ctx, p); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// ArchivePartyCommand soft-deletes a client or supplier. Orders keep
// referencing archived parties; new orders cannot.
type ArchivePartyCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	partyID   kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

func NewArchivePartyCommand(principal access.Principal, partyID kernel.UUID, reason string) (ArchivePartyCommand, error) {
	var reasonErr error
	if strings.TrimSpace(reason) == "" {
		reasonErr = errs.NewValueIsRequiredError("reason")
	}
	if err := errors.Join(partyID.Validate(), reasonErr); err != nil {
		return ArchivePartyCommand{}, err
	}
	return ArchivePartyCommand{principal: principal, partyID: partyID, reason: reason, guard: guard.NewConstructorGuard()}, nil
}

func (c ArchivePartyCommand) Validate() error {
	return c.guard.Validate(ErrArchivePartyCommandIsNotConstructed)
}

type ReactivatePartyCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	partyID   kernel.UUID

	guard guard.ConstructorGuard
}

func NewReactivatePartyCommand(principal access.Principal, partyID kernel.UUID) (ReactivatePartyCommand, error) {
	if err := partyID.Validate(); err != nil {
		return ReactivatePartyCommand{}, err
	}
	return ReactivatePartyCommand{principal: principal, partyID: partyID, guard: guard.NewConstructorGuard()}, nil
}

func (c ReactivatePartyCommand) Validate() error {
	return c.guard.Validate(ErrReactivatePartyCommandIsNotConstructed)
}

// PartyLifecycleCommandHandler archives and reactivates parties.
type PartyLifecycleCommandHandler struct {
	uowFactory PartyUoWFactory
}

func NewPartyLifecycleCommandHandler(uowFactory PartyUoWFactory) PartyLifecycleCommandHandler {
	return PartyLifecycleCommandHandler{uowFactory: uowFactory}
}

func (h *PartyLifecycleCommandHandler) Archive(ctx context.Context, cmd ArchivePartyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.principal.Require(access.PartyArchive); err != nil {
		return err
	}
	return h.mutate(ctx, cmd.partyID, func(p *party.Party) error {
		return p.Archive(cmd.reason, now())
	})
}

func (h *PartyLifecycleCommandHandler) Reactivate(ctx context.Context, cmd ReactivatePartyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.principal.Require(access.PartyArchive); err != nil {
		return err
	}
	return h.mutate(ctx, cmd.partyID, func(p *party.Party) error {
		p.Reactivate()
		return nil
	})
}

func (h *PartyLifecycleCommandHandler) mutate(ctx context.Context, id kernel.UUID, fn func(*party.Party) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PartyRepository()
	p, err := repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	if err := repo.Update(ctx, p); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
