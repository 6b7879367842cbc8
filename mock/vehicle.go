package mock

import (
	"context"

	"github.com/fwojciec/junkyard"
)

var _ junkyard.VehicleService = (*VehicleService)(nil)

// VehicleService is a mock implementation of junkyard.VehicleService.
type VehicleService struct {
	UpsertVehiclesFn func(ctx context.Context, records []*junkyard.InventoryRecord) error
	FindVehiclesFn   func(ctx context.Context, filter junkyard.VehicleFilter) ([]*junkyard.Vehicle, error)
}

func (s *VehicleService) UpsertVehicles(ctx context.Context, records []*junkyard.InventoryRecord) error {
	return s.UpsertVehiclesFn(ctx, records)
}

func (s *VehicleService) FindVehicles(ctx context.Context, filter junkyard.VehicleFilter) ([]*junkyard.Vehicle, error) {
	return s.FindVehiclesFn(ctx, filter)
}
