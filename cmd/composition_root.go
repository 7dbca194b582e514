package cmd

import (
	"orderhub/internal/adapters/out/postgres"
	"orderhub/internal/core/application/usecases/commands"
	"orderhub/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateItemStatusCommandHandler() commands.UpdateItemStatusCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateItemStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRefreshAnalyticsViewsCommandHandler() commands.RefreshAnalyticsViewsCommandHandler {
	return commands.NewRefreshAnalyticsViewsCommandHandler(c.gormDB, postgres.AnalyticsViews)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(&c.uowFactory)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(&c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderStatusDurationsQueryHandler() queries.GetOrderStatusDurationsQueryHandler {
	return queries.NewGetOrderStatusDurationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetItemStatusDurationsQueryHandler() queries.GetItemStatusDurationsQueryHandler {
	return queries.NewGetItemStatusDurationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetHourlyThroughputQueryHandler() queries.GetHourlyThroughputQueryHandler {
	return queries.NewGetHourlyThroughputQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrderCountsQueryHandler() queries.GetCustomerOrderCountsQueryHandler {
	return queries.NewGetCustomerOrderCountsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
