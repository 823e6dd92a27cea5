package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "lockerroom/internal/adapters/out/postgres"
	"lockerroom/internal/core/domain/model/activity"
	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE locker_activities").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.ActivityRepository())
	suite.NotNil(uow2.ActivityRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsEntries() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ActivityRepository().Add(ctx, suite.newEntry(1, activity.Reserved)))
	suite.Require().NoError(uow.ActivityRepository().Add(ctx, suite.newEntry(1, activity.CheckedIn)))
	suite.Require().NoError(uow.Commit(ctx))

	suite.assertEntryCount(2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsEntries() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ActivityRepository().Add(ctx, suite.newEntry(0, activity.Reserved)))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertEntryCount(0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_UncommittedEntriesAreIsolated() {
	ctx := context.Background()
	writer := suite.factory.Create()
	reader := suite.factory.Create()

	suite.Require().NoError(writer.Begin(ctx))
	suite.Require().NoError(writer.ActivityRepository().Add(ctx, suite.newEntry(3, activity.Reserved)))

	entries, err := reader.ActivityRepository().ListByLocker(ctx, 3, 0)
	suite.Require().NoError(err)
	suite.Empty(entries, "Uncommitted entries must not be visible outside the transaction")

	suite.Require().NoError(writer.Commit(ctx))

	entries, err = reader.ActivityRepository().ListByLocker(ctx, 3, 0)
	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateEntryFailsTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	entry := suite.newEntry(0, activity.CheckedOut)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ActivityRepository().Add(ctx, entry))
	suite.Require().Error(uow.ActivityRepository().Add(ctx, entry))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertEntryCount(0)
}

func (suite *UnitOfWorkIntegrationTestSuite) newEntry(lockerNumber int, kind activity.Kind) *activity.Activity {
	entry, err := activity.NewActivity(kernel.NewUUID(), lockerNumber, kind, time.Now().UTC(), activity.Details{})
	suite.Require().NoError(err)
	return entry
}

func (suite *UnitOfWorkIntegrationTestSuite) assertEntryCount(expected int64) {
	var count int64
	err := suite.db.Table("locker_activities").Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
