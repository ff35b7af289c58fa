package attachment_test

import (
	"testing"
	"time"

	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAttachment_BuildsObjectPath(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()

	a, err := attachment.NewAttachment(id, attachment.EntityOrder, orderID, `C:\scans\Fatura.PDF`, "", 2048, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "Fatura.PDF", a.FileName())
	assert.Equal(t, "order/"+orderID.String()+"/"+id.String()+".pdf", a.Path())
	assert.Equal(t, "application/octet-stream", a.MimeType())
}

func TestNewAttachment_Rejects(t *testing.T) {
	testCases := []struct {
		name     string
		entity   attachment.EntityType
		fileName string
		size     int64
		sentinel error
	}{
		{"unknown entity", "invoice", "a.pdf", 1, errs.ErrValueIsInvalid},
		{"empty file name", attachment.EntityClient, "  ", 1, errs.ErrValueIsRequired},
		{"empty file", attachment.EntityClient, "a.pdf", 0, errs.ErrValueIsOutOfRange},
		{"too large", attachment.EntityProduct, "a.pdf", attachment.MaxSize + 1, errs.ErrValueIsOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := attachment.NewAttachment(kernel.NewUUID(), tc.entity, kernel.NewUUID(), tc.fileName, "", tc.size, time.Now())

			require.ErrorIs(t, err, tc.sentinel)
		})
	}
}
