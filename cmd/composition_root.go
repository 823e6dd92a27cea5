package cmd

import (
	"log/slog"

	httpadapter "lockerroom/internal/adapters/in/http"
	"lockerroom/internal/adapters/out/memory"
	"lockerroom/internal/adapters/out/postgres"
	"lockerroom/internal/adapters/out/postgres/activityrepo"
	"lockerroom/internal/core/application/usecases/commands"
	"lockerroom/internal/core/application/usecases/queries"
	"lockerroom/internal/core/domain/model/kernel"
	"lockerroom/internal/core/domain/model/locker"
	"lockerroom/internal/core/domain/services"
	"lockerroom/internal/core/ports"
	"lockerroom/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	registry   *locker.Registry
	calculator services.PriceCalculator
	uowFactory ports.UnitOfWorkFactory
	history    ports.ActivityRepository
	logger     *slog.Logger
}

// NewCompositionRoot wires the registry and the journal. A nil gormDB keeps the
// journal in memory.
func NewCompositionRoot(config Config, gormDB *gorm.DB, clock kernel.Clock, logger *slog.Logger) (CompositionRoot, error) {
	registry, err := locker.NewRegistry(config.LockerSizes, clock)
	if err != nil {
		return CompositionRoot{}, err
	}

	calculator, err := services.NewPriceCalculator(config.UnitRate)
	if err != nil {
		return CompositionRoot{}, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	root := CompositionRoot{
		config:     config,
		registry:   registry,
		calculator: calculator,
		logger:     logger,
	}

	if gormDB != nil {
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
		root.history = activityrepo.NewGormActivityRepository(gormDB)
	} else {
		journal := memory.NewJournal()
		root.uowFactory = memory.NewUnitOfWorkFactory(journal)
		root.history = memory.NewActivityRepository(journal)
	}

	return root, nil
}

func (c *CompositionRoot) Registry() *locker.Registry {
	return c.registry
}

func (c *CompositionRoot) CreateReserveLockerCommandHandler() commands.ReserveLockerCommandHandler {
	return commands.NewReserveLockerCommandHandler(c.registry, c.commandUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCheckInLockerCommandHandler() commands.CheckInLockerCommandHandler {
	return commands.NewCheckInLockerCommandHandler(c.registry, c.commandUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateConfirmExtensionCommandHandler() commands.ConfirmExtensionCommandHandler {
	return commands.NewConfirmExtensionCommandHandler(c.registry, c.commandUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCheckOutLockerCommandHandler() commands.CheckOutLockerCommandHandler {
	return commands.NewCheckOutLockerCommandHandler(c.registry, c.commandUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateExpireExtensionsCommandHandler() commands.ExpireExtensionsCommandHandler {
	return commands.NewExpireExtensionsCommandHandler(c.registry, c.commandUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetLockersQueryHandler() queries.GetLockersQueryHandler {
	return queries.NewGetLockersQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetLockerQueryHandler() queries.GetLockerQueryHandler {
	return queries.NewGetLockerQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetAvailableLockersQueryHandler() queries.GetAvailableLockersQueryHandler {
	return queries.NewGetAvailableLockersQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetOccupancyStatsQueryHandler() queries.GetOccupancyStatsQueryHandler {
	return queries.NewGetOccupancyStatsQueryHandler(c.registry, c.calculator)
}

func (c *CompositionRoot) CreateGetOverdueLockersQueryHandler() queries.GetOverdueLockersQueryHandler {
	return queries.NewGetOverdueLockersQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateGetLockerHistoryQueryHandler() queries.GetLockerHistoryQueryHandler {
	return queries.NewGetLockerHistoryQueryHandler(c.registry, c.history)
}

func (c *CompositionRoot) CreateCalculatePriceQueryHandler() queries.CalculatePriceQueryHandler {
	return queries.NewCalculatePriceQueryHandler(c.calculator)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.CommandHandlers{
			ReserveLocker:    c.CreateReserveLockerCommandHandler(),
			CheckInLocker:    c.CreateCheckInLockerCommandHandler(),
			ConfirmExtension: c.CreateConfirmExtensionCommandHandler(),
			CheckOutLocker:   c.CreateCheckOutLockerCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetLockers:          c.CreateGetLockersQueryHandler(),
			GetLocker:           c.CreateGetLockerQueryHandler(),
			GetAvailableLockers: c.CreateGetAvailableLockersQueryHandler(),
			GetOccupancyStats:   c.CreateGetOccupancyStatsQueryHandler(),
			GetLockerHistory:    c.CreateGetLockerHistoryQueryHandler(),
			CalculatePrice:      c.CreateCalculatePriceQueryHandler(),
		},
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOverdueLockersQueryHandler(),
		c.CreateExpireExtensionsCommandHandler(),
		jobs.Settings{
			OverdueScanSchedule:  c.config.OverdueScanSchedule,
			ExtensionDecisionTTL: c.config.ExtensionDecisionTTL,
		},
		c.logger,
	)
}

func (c *CompositionRoot) commandUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
