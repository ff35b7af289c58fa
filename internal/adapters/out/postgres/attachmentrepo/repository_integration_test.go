package attachmentrepo_test

import (
	"context"
	"testing"
	"time"

	"gestion/internal/adapters/out/postgres/attachmentrepo"
	"gestion/internal/adapters/out/postgres/pgtest"
	"gestion/internal/core/domain/model/attachment"
	"gestion/internal/core/domain/model/kernel"
	"gestion/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type AttachmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *attachmentrepo.GormAttachmentRepository
	now        time.Time
}

func (suite *AttachmentRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), &attachmentrepo.AttachmentDTO{})
	suite.Require().NoError(err)
	suite.database = database
	suite.repository = attachmentrepo.NewGormAttachmentRepository(database.DB)
}

func (suite *AttachmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.DB.Exec("TRUNCATE TABLE attachments").Error)
	suite.now = time.Now().UTC().Truncate(time.Microsecond)
}

func (suite *AttachmentRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *AttachmentRepositoryIntegrationTestSuite) add(entityType attachment.EntityType, entityID kernel.UUID, name string, at time.Time) *attachment.Attachment {
	a, err := attachment.NewAttachment(kernel.NewUUID(), entityType, entityID, name, "application/pdf", 1024, at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), a))
	return a
}

func (suite *AttachmentRepositoryIntegrationTestSuite) TestAddGetDelete() {
	ctx := context.Background()
	a := suite.add(attachment.EntityOrder, kernel.NewUUID(), "Fatura.PDF", suite.now)

	got, err := suite.repository.Get(ctx, a.ID())
	suite.Require().NoError(err)
	suite.Equal(a.Path(), got.Path())
	suite.Equal("Fatura.PDF", got.FileName())
	suite.Equal(int64(1024), got.Size())

	suite.Require().NoError(suite.repository.Delete(ctx, a.ID()))
	_, err = suite.repository.Get(ctx, a.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
	suite.ErrorIs(suite.repository.Delete(ctx, a.ID()), errs.ErrObjectNotFound)
}

func (suite *AttachmentRepositoryIntegrationTestSuite) TestListAndDeleteByEntity() {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	first := suite.add(attachment.EntityOrder, orderID, "a.pdf", suite.now)
	second := suite.add(attachment.EntityOrder, orderID, "b.jpg", suite.now.Add(time.Second))
	suite.add(attachment.EntityClient, orderID, "other-type.pdf", suite.now)

	listed, err := suite.repository.ListByEntity(ctx, attachment.EntityOrder, orderID)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 2)
	suite.Equal(first.ID(), listed[0].ID())
	suite.Equal(second.ID(), listed[1].ID())

	paths, err := suite.repository.DeleteByEntity(ctx, attachment.EntityOrder, orderID)
	suite.Require().NoError(err)
	suite.ElementsMatch([]string{first.Path(), second.Path()}, paths)

	listed, err = suite.repository.ListByEntity(ctx, attachment.EntityOrder, orderID)
	suite.Require().NoError(err)
	suite.Empty(listed)

	left, err := suite.repository.ListByEntity(ctx, attachment.EntityClient, orderID)
	suite.Require().NoError(err)
	suite.Len(left, 1)
}

func TestAttachmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AttachmentRepositoryIntegrationTestSuite))
}
