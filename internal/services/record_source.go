package services

import (
	"context"

	"fleetledger/internal/domain"
	"fleetledger/internal/repositories"
)

// StoreSource adapts the MySQL repositories to the reporting engine's
// RecordSource. Ordering conventions live here: current-month and
// statement listings run newest-first, the archive ascending.
type StoreSource struct {
	VehicleRepo repositories.VehiclesRepository
	TripRepo    repositories.TripsRepository
	CngRepo     repositories.CngRepository
}

func (s StoreSource) Vehicle(ctx context.Context, id string) (domain.Vehicle, error) {
	return s.VehicleRepo.GetByID(ctx, id)
}

func (s StoreSource) Trips(ctx context.Context, vehicleID string) ([]domain.Trip, error) {
	live := false
	return s.TripRepo.List(ctx, repositories.TripListFilter{VehicleID: vehicleID, Archived: &live})
}

func (s StoreSource) AllTrips(ctx context.Context, vehicleID string) ([]domain.Trip, error) {
	return s.TripRepo.List(ctx, repositories.TripListFilter{VehicleID: vehicleID})
}

func (s StoreSource) ArchivedTrips(ctx context.Context, vehicleID string) ([]domain.Trip, error) {
	archived := true
	return s.TripRepo.List(ctx, repositories.TripListFilter{VehicleID: vehicleID, Archived: &archived, DateAsc: true})
}

func (s StoreSource) CngExpenses(ctx context.Context, vehicleID string) ([]domain.CngExpense, error) {
	return s.CngRepo.List(ctx, vehicleID, "", "")
}
