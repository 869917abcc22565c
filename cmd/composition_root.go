package cmd

import (
	"time"

	"jelantah/internal/adapters/out/postgres"
	"jelantah/internal/adapters/out/postgres/tierrepo"
	"jelantah/internal/core/application/usecases/commands"
	"jelantah/internal/core/application/usecases/queries"
	"jelantah/internal/core/domain/services"
	"jelantah/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	calculator services.SettlementCalculator

	publisher ports.OrderEventPublisher
	notifier  ports.Notifier
	cache     ports.ReportCache
	exporter  ports.ReportExporter

	reportCacheTTL time.Duration
}

func NewCompositionRoot(
	gormDB *gorm.DB,
	calculator services.SettlementCalculator,
	publisher ports.OrderEventPublisher,
	notifier ports.Notifier,
	cache ports.ReportCache,
	exporter ports.ReportExporter,
	reportCacheTTL time.Duration,
) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		calculator:     calculator,
		publisher:      publisher,
		notifier:       notifier,
		cache:          cache,
		exporter:       exporter,
		reportCacheTTL: reportCacheTTL,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateQuickPickupCommandHandler() commands.QuickPickupCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewQuickPickupCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	return commands.NewAssignCourierCommandHandler(c.orderUoWFactory(), c.publisher, c.notifier)
}

func (c *CompositionRoot) CreateStartPickupCommandHandler() commands.StartPickupCommandHandler {
	return commands.NewStartPickupCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateCompletePickupCommandHandler() commands.CompletePickupCommandHandler {
	return commands.NewCompletePickupCommandHandler(c.orderUoWFactory(), c.publisher)
}

func (c *CompositionRoot) CreateVerifyOrderCommandHandler() commands.VerifyOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyOrderCommandHandler(f, c.publisher, c.cache)
}

func (c *CompositionRoot) CreateMarkOrderPaidCommandHandler() commands.MarkOrderPaidCommandHandler {
	return commands.NewMarkOrderPaidCommandHandler(c.orderUoWFactory(), c.publisher, c.notifier, c.cache)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBillingReportQueryHandler() queries.GetBillingReportQueryHandler {
	return queries.NewGetBillingReportQueryHandler(
		c.gormDB,
		tierrepo.NewGormPriceTierRepository(c.gormDB),
		c.calculator,
		c.cache,
		c.reportCacheTTL,
	)
}

func (c *CompositionRoot) Exporter() ports.ReportExporter {
	return c.exporter
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
