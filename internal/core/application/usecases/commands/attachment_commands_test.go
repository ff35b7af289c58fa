package commands_test

import (
	"errors"
	"strings"
	"testing"

	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/core/domain/model/access"
	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/core/domain/model/party"
	"gestion/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUpload(t *testing.T, p access.Principal, entity attachment.EntityType, entityID kernel.UUID) commands.UploadAttachmentCommand {
	t.Helper()
	cmd, err := commands.NewUploadAttachmentCommand(
		p, kernel.NewUUID(), entity, entityID, "Fatura 12.PDF", "application/pdf", 11, strings.NewReader("%PDF-1.4..."),
	)
	require.NoError(t, err)
	return cmd
}

func TestNewUploadAttachmentCommand_InvalidInput(t *testing.T) {
	p := principal(t, access.Ops)

	_, err := commands.NewUploadAttachmentCommand(p, kernel.NewUUID(), attachment.EntityOrder, kernel.NewUUID(), "a.pdf", "", 1, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewUploadAttachmentCommand(p, kernel.NewUUID(), "invoice", kernel.NewUUID(), "a.pdf", "", 1, strings.NewReader("x"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewUploadAttachmentCommand(p, kernel.NewUUID(), attachment.EntityOrder, kernel.NewUUID(), "a.pdf", "", 0, strings.NewReader("x"))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestAttachmentCommandHandler_Upload_Success(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, 1)
	cmd := newUpload(t, principal(t, access.Ops), attachment.EntityOrder, o.ID())
	meta := cmd.Attachment()
	assert.True(t, strings.HasPrefix(meta.Path(), "order/"+o.ID().String()+"/"))
	assert.True(t, strings.HasSuffix(meta.Path(), ".pdf"))

	uow := newMockUoW()
	blobs := new(MockBlobStorage)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		blobs.On("Put", ctx, meta.Path(), mock.Anything, int64(11), "application/pdf").Return(nil).Once(),
		uow.Attachments.On("Add", ctx, meta).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAttachmentCommandHandler(MockFactory{uow}, blobs, zap.NewNop())
	require.NoError(t, h.Upload(ctx, cmd))
	uow.assertAll(t)
	blobs.AssertExpectations(t)
}

func TestAttachmentCommandHandler_Upload_RemovesFileWhenRowFails(t *testing.T) {
	ctx := t.Context()
	client := newParty(t, party.Client, "Adega Central")
	cmd := newUpload(t, principal(t, access.Finance), attachment.EntityClient, client.ID())
	meta := cmd.Attachment()

	uow := newMockUoW().expectRolledBack()
	uow.Parties.On("Get", ctx, client.ID()).Return(client, nil).Once()
	uow.Attachments.On("Add", ctx, meta).Return(errors.New("insert failed")).Once()
	blobs := new(MockBlobStorage)
	blobs.On("Put", ctx, meta.Path(), mock.Anything, int64(11), "application/pdf").Return(nil).Once()
	blobs.On("Remove", mock.Anything, meta.Path()).Return(nil).Once()

	h := commands.NewAttachmentCommandHandler(MockFactory{uow}, blobs, zap.NewNop())
	require.EqualError(t, h.Upload(ctx, cmd), "insert failed")
	uow.assertAll(t)
	blobs.AssertExpectations(t)
}

func TestAttachmentCommandHandler_Upload_EntityKindMismatch(t *testing.T) {
	ctx := t.Context()
	supplier := newParty(t, party.Supplier, "Vidros do Norte")
	cmd := newUpload(t, principal(t, access.Ops), attachment.EntityClient, supplier.ID())

	uow := newMockUoW().expectRolledBack()
	uow.Parties.On("Get", ctx, supplier.ID()).Return(supplier, nil).Once()
	blobs := new(MockBlobStorage)

	h := commands.NewAttachmentCommandHandler(MockFactory{uow}, blobs, zap.NewNop())
	require.ErrorIs(t, h.Upload(ctx, cmd), errs.ErrValueIsInvalid)
	uow.assertAll(t)
	blobs.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachmentCommandHandler_Upload_AccessDenied(t *testing.T) {
	cmd := newUpload(t, principal(t, access.Viewer), attachment.EntityOrder, kernel.NewUUID())

	uow := newMockUoW()
	h := commands.NewAttachmentCommandHandler(MockFactory{uow}, new(MockBlobStorage), zap.NewNop())
	require.ErrorIs(t, h.Upload(t.Context(), cmd), errs.ErrAccessDenied)
	uow.assertAll(t)
}

func TestAttachmentCommandHandler_Delete(t *testing.T) {
	ctx := t.Context()
	a, err := attachment.NewAttachment(kernel.NewUUID(), attachment.EntityProduct, kernel.NewUUID(), "ficha.png", "image/png", 42, testNow)
	require.NoError(t, err)
	cmd, err := commands.NewDeleteAttachmentCommand(principal(t, access.Admin), a.ID())
	require.NoError(t, err)

	uow := newMockUoW()
	blobs := new(MockBlobStorage)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Attachments.On("Get", ctx, a.ID()).Return(a, nil).Once(),
		uow.Attachments.On("Delete", ctx, a.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		blobs.On("Remove", ctx, a.Path()).Return(errors.New("gone")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAttachmentCommandHandler(MockFactory{uow}, blobs, zap.NewNop())
	require.NoError(t, h.Delete(ctx, cmd))
	uow.assertAll(t)
	blobs.AssertExpectations(t)
}
