package repository

import (
	"context"

	"ranch-booking/internal/domain/service"
	"ranch-booking/internal/infra"
	"ranch-booking/internal/infra/repository/converter"
	sqlc "ranch-booking/internal/infra/sqlc/generated"
	"ranch-booking/internal/pkg/clock"
	"ranch-booking/internal/pkg/pgconv"
)

type ServiceWriteQueries interface {
	CreateService(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceParams) (sqlc.Services, error)
	UpdateService(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceParams) (sqlc.Services, error)
	DeleteService(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ServiceRepository struct {
	queries ServiceWriteQueries
	clock   clock.Clock
}

func NewServiceRepository(queries ServiceWriteQueries, clk clock.Clock) *ServiceRepository {
	return &ServiceRepository{queries: queries, clock: clk}
}

func (r *ServiceRepository) Create(ctx context.Context, tx sqlc.DBTX, svc *service.Service) (*service.Service, error) {
	row, err := r.queries.CreateService(ctx, tx, sqlc.CreateServiceParams{
		Name:         svc.Name(),
		Description:  svc.Description(),
		Duration:     svc.Duration(),
		Price:        svc.Price(),
		CapacityMode: string(svc.Mode()),
		PoolID:       pgconv.StringPtrToPgtype(svc.PoolID()),
		Active:       svc.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create service", err)
	}
	return converter.ServiceFromRow(row), nil
}

func (r *ServiceRepository) Update(ctx context.Context, tx sqlc.DBTX, svc *service.Service) (*service.Service, error) {
	row, err := r.queries.UpdateService(ctx, tx, sqlc.UpdateServiceParams{
		ID:           svc.ID(),
		Name:         svc.Name(),
		Description:  svc.Description(),
		Duration:     svc.Duration(),
		Price:        svc.Price(),
		CapacityMode: string(svc.Mode()),
		PoolID:       pgconv.StringPtrToPgtype(svc.PoolID()),
		Active:       svc.IsActive(),
		UpdatedAt:    pgconv.TimeToPgtype(r.clock.Now()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update service", err)
	}
	return converter.ServiceFromRow(row), nil
}

func (r *ServiceRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	affected, err := r.queries.DeleteService(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if affected == 0 {
		return infra.NotFound("service not found")
	}
	return nil
}
