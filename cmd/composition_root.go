package cmd

import (
	"context"
	"errors"
	"fmt"

	"opspro/internal/adapters/out/postgres"
	"opspro/internal/core/application/usecases/commands"
	"opspro/internal/core/application/usecases/queries"
	"opspro/internal/core/domain/model/account"
	"opspro/internal/core/domain/model/kernel"
	"opspro/internal/pkg/errs"

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

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLoginCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateToggleAvailabilityCommandHandler() commands.ToggleAvailabilityCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateETACommandHandler() commands.UpdateETACommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateETACommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnersQueryHandler() queries.GetPartnersQueryHandler {
	return queries.NewGetPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerQueryHandler() queries.GetPartnerQueryHandler {
	return queries.NewGetPartnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailablePartnersQueryHandler() queries.GetAvailablePartnersQueryHandler {
	// A unit of work that never begins a transaction hands out repositories
	// bound to the base connection, which is all a read path needs.
	uow := c.uowFactory.Create()
	return queries.NewGetAvailablePartnersQueryHandler(
		uow.PartnerRepository(), uow.OrderRepository())
}

// SeedManagerAccount ensures a MANAGER login exists so the dashboard is
// reachable on a fresh database. Existing accounts are left untouched.
func (c *CompositionRoot) SeedManagerAccount(ctx context.Context, username, password string) error {
	uow := c.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	accountRepo := uow.AccountRepository()

	_, err := accountRepo.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("failed to look up manager account: %w", err)
	}

	managerAccount, err := account.NewAccount(username, password, kernel.RoleManager)
	if err != nil {
		return fmt.Errorf("failed to create manager account: %w", err)
	}

	if err = accountRepo.Add(ctx, managerAccount); err != nil {
		return fmt.Errorf("failed to persist manager account: %w", err)
	}

	return uow.Commit(ctx)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
