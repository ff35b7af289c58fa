package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/ports"
	"gestion/internal/pkg/errs"
	"gestion/internal/pkg/guard"

	"go.uber.org/zap"
)

var (
	ErrUploadAttachmentCommandIsNotConstructed = errors.New(
		"UploadAttachmentCommand must be created via NewUploadAttachmentCommand constructor",
	)
	ErrDeleteAttachmentCommandIsNotConstructed = errors.New(
		"DeleteAttachmentCommand must be created via NewDeleteAttachmentCommand constructor",
	)
)

// UploadAttachmentCommand carries the file content as a reader; the handler
// consumes it once.
type UploadAttachmentCommand struct { //nolint:recvcheck //using for validation
	principal access.Principal
	meta      *attachment.Attachment
	content   io.Reader

	guard guard.ConstructorGuard
}

func NewUploadAttachmentCommand(
	principal access.Principal,
	attachmentID kernel.UUID,
	entityType attachment.EntityType,
	entityID kernel.UUID,
	fileName string,
	mimeType string,
	size int64,
	content io.Reader,
) (UploadAttachmentCommand, error) {
	if content == nil {
		return UploadAttachmentCommand{}, errs.NewValueIsRequiredError("content")
	}
	meta, err := attachment.NewAttachment(attachmentID, entityType, entityID, fileName, mimeType, size, now())
	if err != nil {
		return UploadAttachmentCommand{}, err
	}
	return UploadAttachmentCommand{principal: principal, meta: meta, content: content, guard: guard.NewConstructorGuard()}, nil
}

func (c UploadAttachmentCommand) Validate() error {
	return c.guard.Validate(ErrUploadAttachmentCommandIsNotConstructed)
}

func (c UploadAttachmentCommand) Attachment() *attachment.Attachment { return c.meta }

type DeleteAttachmentCommand struct { //nolint:recvcheck //using for validation
	principal    access.Principal
	attachmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteAttachmentCommand(principal access.Principal, attachmentID kernel.UUID) (DeleteAttachmentCommand, error) {
	if err := attachmentID.Validate(); err != nil {
		return DeleteAttachmentCommand{}, err
	}
	return DeleteAttachmentCommand{principal: principal, attachmentID: attachmentID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteAttachmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAttachmentCommandIsNotConstructed)
}

// AttachmentCommandHandler keeps attachment rows and stored files in step.
// Upload stores the file first and removes it again when the row cannot be
// committed; Delete removes the row first and the file after commit.
type AttachmentCommandHandler struct {
	uowFactory UoWFactory
	blobs      ports.BlobStorage
	logger     *zap.Logger
}

func NewAttachmentCommandHandler(uowFactory UoWFactory, blobs ports.BlobStorage, logger *zap.Logger) AttachmentCommandHandler {
	return AttachmentCommandHandler{
		uowFactory: uowFactory,
		blobs:      blobs,
		logger:     logger.With(zap.String("component", "attachments")),
	}
}

func (h *AttachmentCommandHandler) Upload(ctx context.Context, cmd UploadAttachmentCommand) (err error) {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.principal.Require(access.AttachmentWrite); err != nil {
		return err
	}

	meta := cmd.meta
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.ensureEntity(ctx, uow, meta.EntityType(), meta.EntityID()); err != nil {
		return err
	}

	if err := h.blobs.Put(ctx, meta.Path(), cmd.content, meta.Size(), meta.MimeType()); err != nil {
		return err
	}
	defer func() {
		if err == nil {
			return
		}
		if rmErr := h.blobs.Remove(context.WithoutCancel(ctx), meta.Path()); rmErr != nil {
			h.logger.Error("failed to remove orphaned attachment file", zap.String("path", meta.Path()), zap.Error(rmErr))
		}
	}()

	if err = uow.AttachmentRepository().Add(ctx, meta); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (h *AttachmentCommandHandler) Delete(ctx context.Context, cmd DeleteAttachmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.principal.Require(access.AttachmentWrite); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AttachmentRepository()
	a, err := repo.Get(ctx, cmd.attachmentID)
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, a.ID()); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if err := h.blobs.Remove(ctx, a.Path()); err != nil {
		h.logger.Error("failed to remove attachment file", zap.String("path", a.Path()), zap.Error(err))
	}
	return nil
}

func (h *AttachmentCommandHandler) ensureEntity(ctx context.Context, uow UoW, t attachment.EntityType, id kernel.UUID) error {
	switch t {
	case attachment.EntityOrder:
		_, err := uow.OrderRepository().Get(ctx, id)
		return err
	case attachment.EntityClient, attachment.EntitySupplier:
		p, err := uow.PartyRepository().Get(ctx, id)
		if err != nil {
			return err
		}
		if string(p.Kind()) != string(t) {
			return errs.NewValueIsInvalidErrorWithCause("entity", fmt.Errorf("%s is a %s", id, p.Kind()))
		}
		return nil
	case attachment.EntityProduct:
		_, err := uow.ProductRepository().Get(ctx, id)
		return err
	default:
		return errs.NewValueIsInvalidError("entity type")
	}
}
