package services

import (
	"context"
	"fmt"
	"time"

	"fleetledger/internal/domain"
	"fleetledger/internal/report"
	"fleetledger/internal/repositories"
	"fleetledger/internal/utils"
)

// ArchiveService moves finished months out of the live trip set.
type ArchiveService struct {
	TripRepo  repositories.TripsRepository
	Inv       *report.Invalidator
	RequestID string
	Now       func() time.Time
}

// ArchiveOldTrips marks every live trip dated before the first day of
// the current month as archived and returns the number of rows moved.
func (s ArchiveService) ArchiveOldTrips(ctx context.Context) (int64, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	cutoff := utils.MonthStart(now())

	n, err := s.TripRepo.ArchiveBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "archive", "archive_old_trips", fmt.Sprintf("cutoff=%s archived=%d", cutoff, n))

	if n > 0 && s.Inv != nil {
		// Bulk move; per-vehicle attribution is not tracked, so notify
		// the all-vehicle subscribers.
		s.Inv.Notify("", domain.KindTrip)
	}
	return n, nil
}
