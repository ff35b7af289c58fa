package http

import (
	"net/http"

	"gestion/internal/core/application/usecases/commands"
	"gestion/internal/core/application/usecases/queries"
	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/generated/servers"
	"gestion/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListAttachments handles GET /api/v1/attachments.
func (s *Server) ListAttachments(ctx echo.Context, params servers.ListAttachmentsParams) error {
	entityType, err := attachment.ParseEntityType(string(params.EntityType))
	if err != nil {
		return err
	}
	query, err := queries.NewListAttachmentsQuery(entityType, params.EntityId)
	if err != nil {
		return err
	}
	attachments, err := s.h.ListAttachments.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Attachment, len(attachments))
	for i, a := range attachments {
		response[i] = attachmentDTO(a)
	}
	return ctx.JSON(http.StatusOK, response)
}

// UploadAttachment handles POST /api/v1/attachments (multipart/form-data).
func (s *Server) UploadAttachment(ctx echo.Context) error {
	entityType, err := attachment.ParseEntityType(ctx.FormValue("entityType"))
	if err != nil {
		return err
	}
	entityID, err := kernel.ParseRef(ctx.FormValue("entityId"))
	if err != nil {
		return err
	}
	header, err := ctx.FormFile("file")
	if err != nil {
		return errs.NewValueIsRequiredErrorWithCause("file", err)
	}
	file, err := header.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	mimeType := header.Header.Get(echo.HeaderContentType)
	if mimeType == "" {
		mimeType = echo.MIMEOctetStream
	}

	cmd, err := commands.NewUploadAttachmentCommand(
		PrincipalOf(ctx), kernel.NewUUID(), entityType, entityID, header.Filename, mimeType, header.Size, file,
	)
	if err != nil {
		return err
	}
	if err := s.h.Attachments.Upload(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	a := cmd.Attachment()
	return ctx.JSON(http.StatusCreated, servers.Attachment{
		Id:         a.ID().Bytes(),
		EntityType: servers.EntityType(a.EntityType()),
		EntityId:   a.EntityID().Bytes(),
		FileName:   a.FileName(),
		MimeType:   a.MimeType(),
		Size:       a.Size(),
		Url:        s.urls.URL(a.Path()),
		CreatedAt:  a.CreatedAt(),
	})
}

// DeleteAttachment handles DELETE /api/v1/attachments/{attachmentId}.
func (s *Server) DeleteAttachment(ctx echo.Context, attachmentId openapi_types.UUID) error {
	id, err := toKernel(attachmentId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteAttachmentCommand(PrincipalOf(ctx), id)
	if err != nil {
		return err
	}
	if err := s.h.Attachments.Delete(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
