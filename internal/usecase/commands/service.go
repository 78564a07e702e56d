package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/service.go -package=commandsmock

import (
	"context"

	"ranch-booking/internal/domain/service"
	"ranch-booking/internal/infra"
	"ranch-booking/internal/usecase/shared"
)

type ServiceInput struct {
	Name        string
	Description string
	Duration    string
	Price       int64
	Mode        service.CapacityMode
	PoolID      *string
	Active      bool
}

type ServiceCommands interface {
	Create(ctx context.Context, in ServiceInput) (*service.Service, error)
	Update(ctx context.Context, id int64, ch service.Changes) (*service.Service, error)
	Delete(ctx context.Context, id int64) error
}

type serviceCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewServiceCommands(uow shared.UnitOfWork) ServiceCommands {
	return &serviceCommandsImpl{uow: uow}
}

func (c *serviceCommandsImpl) Create(ctx context.Context, in ServiceInput) (*service.Service, error) {
	if in.Mode == "" {
		in.Mode = service.ModeOpen
	}
	svc, err := service.NewService(in.Name, in.Description, in.Duration, in.Price, in.Mode, in.PoolID, in.Active)
	if err != nil {
		return nil, classify(err)
	}

	var created *service.Service
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensurePool(ctx, tx, svc.PoolID()); err != nil {
			return err
		}
		var err error
		created, err = tx.Services().Create(ctx, tx.DB(), svc)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}
	return created, nil
}

func (c *serviceCommandsImpl) Update(ctx context.Context, id int64, ch service.Changes) (*service.Service, error) {
	var updated *service.Service
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Reads().ServiceByID(ctx, id)
		if err != nil {
			return err
		}
		next, err := current.Apply(ch)
		if err != nil {
			return err
		}
		if err := ensurePool(ctx, tx, next.PoolID()); err != nil {
			return err
		}
		updated, err = tx.Services().Update(ctx, tx.DB(), next)
		return err
	})
	if err != nil {
		return nil, classify(err)
	}
	return updated, nil
}

// Delete removes the service. Reservations keep their name and price snapshot.
func (c *serviceCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Services().Delete(ctx, tx.DB(), id)
	})
	return classify(err)
}

func ensurePool(ctx context.Context, tx shared.Tx, poolID *string) error {
	if poolID == nil {
		return nil
	}
	if _, err := tx.Reads().PoolByID(ctx, *poolID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUnknownPool
		}
		return err
	}
	return nil
}
