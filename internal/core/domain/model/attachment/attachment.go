// Package attachment models files attached to orders, parties or products.
// The blob lives in object storage; the row keeps its path and metadata.
package attachment

import (
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"
)

// MaxSize caps a single upload.
const MaxSize = 25 << 20

var ErrAttachmentIsNotConstructed = errors.New("Attachment must be created via NewAttachment constructor")

// EntityType names the kind of record a file is attached to.
type EntityType string

const (
	EntityOrder    EntityType = "order"
	EntityClient   EntityType = "client"
	EntitySupplier EntityType = "supplier"
	EntityProduct  EntityType = "product"
)

func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case EntityOrder, EntityClient, EntitySupplier, EntityProduct:
		return t, nil
	case "":
		return "", errs.NewValueIsRequiredError("entity type")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("entity type", fmt.Errorf("%q is not supported", s))
	}
}

// Attachment is the metadata row of a stored file.
type Attachment struct {
	id         kernel.UUID
	entityType EntityType
	entityID   kernel.UUID
	path       string
	fileName   string
	mimeType   string
	size       int64
	createdAt  time.Time

	isConstructed bool
}

// NewAttachment builds the metadata for a new upload. The object path is
// <entity_type>/<entity_id>/<id><ext>, with ext taken from fileName.
func NewAttachment(
	id kernel.UUID,
	entityType EntityType,
	entityID kernel.UUID,
	fileName string,
	mimeType string,
	size int64,
	now time.Time,
) (*Attachment, error) {
	a := &Attachment{
		mimeType:      strings.TrimSpace(mimeType),
		createdAt:     now,
		isConstructed: true,
	}

	if _, err := ParseEntityType(string(entityType)); err != nil {
		return nil, err
	}

	var nameErr, sizeErr error
	fileName = path.Base(strings.ReplaceAll(strings.TrimSpace(fileName), "\\", "/"))
	if fileName == "" || fileName == "." || fileName == "/" {
		nameErr = errs.NewValueIsRequiredError("file name")
	}
	if size <= 0 || size > MaxSize {
		sizeErr = errs.NewValueIsOutOfRangeError("size", size, 1, MaxSize)
	}

	if err := errors.Join(id.Validate(), entityID.Validate(), nameErr, sizeErr); err != nil {
		return nil, err
	}

	if a.mimeType == "" {
		a.mimeType = "application/octet-stream"
	}

	a.id = id
	a.entityType = entityType
	a.entityID = entityID
	a.fileName = fileName
	a.size = size
	a.path = fmt.Sprintf("%s/%s/%s%s", entityType, entityID, id, strings.ToLower(path.Ext(fileName)))
	return a, nil
}

// RestoreAttachment rebuilds a persisted row without recomputing its path.
func RestoreAttachment(
	id kernel.UUID,
	entityType EntityType,
	entityID kernel.UUID,
	objectPath string,
	fileName string,
	mimeType string,
	size int64,
	createdAt time.Time,
) (*Attachment, error) {
	if strings.TrimSpace(objectPath) == "" {
		return nil, errs.NewValueIsRequiredError("path")
	}
	if err := errors.Join(id.Validate(), entityID.Validate()); err != nil {
		return nil, err
	}
	return &Attachment{
		id:            id,
		entityType:    entityType,
		entityID:      entityID,
		path:          objectPath,
		fileName:      fileName,
		mimeType:      mimeType,
		size:          size,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

func (a *Attachment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAttachmentIsNotConstructed
	}
	return nil
}

func (a *Attachment) ID() kernel.UUID {
	return a.id
}

func (a *Attachment) EntityType() EntityType {
	return a.entityType
}

func (a *Attachment) EntityID() kernel.UUID {
	return a.entityID
}

func (a *Attachment) Path() string {
	return a.path
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) MimeType() string {
	return a.mimeType
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}
