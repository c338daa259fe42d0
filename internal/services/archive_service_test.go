package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	intconfig "fleetledger/internal/config"
	"fleetledger/internal/domain"
	"fleetledger/internal/report"
	"fleetledger/internal/repositories"
)

func TestArchiveOldTripsNotifiesSubscribers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectExec("UPDATE trips SET is_archived=1").WithArgs("2024-06-01").
		WillReturnResult(sqlmock.NewResult(0, 3))

	inv := report.NewInvalidator()
	fired := 0
	cancel := inv.Subscribe("", domain.KindTrip, func() { fired++ })
	defer cancel()

	svc := ArchiveService{
		TripRepo: repositories.TripsRepository{DB: db},
		Inv:      inv,
		Now:      func() time.Time { return time.Date(2024, 6, 17, 12, 0, 0, 0, time.UTC) },
	}
	n, err := svc.ArchiveOldTrips(context.Background())
	if err != nil {
		t.Fatalf("archive error: %v", err)
	}
	if n != 3 {
		t.Fatalf("archived = %d, want 3", n)
	}
	if fired != 1 {
		t.Fatalf("expected one invalidation, got %d", fired)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestArchiveOldTripsNoRowsSkipsNotify(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectExec("UPDATE trips SET is_archived=1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	inv := report.NewInvalidator()
	fired := 0
	cancel := inv.Subscribe("", domain.KindTrip, func() { fired++ })
	defer cancel()

	svc := ArchiveService{
		TripRepo: repositories.TripsRepository{DB: db},
		Inv:      inv,
		Now:      func() time.Time { return time.Date(2024, 6, 17, 12, 0, 0, 0, time.UTC) },
	}
	if _, err := svc.ArchiveOldTrips(context.Background()); err != nil {
		t.Fatalf("archive error: %v", err)
	}
	if fired != 0 {
		t.Fatalf("expected no invalidation, got %d", fired)
	}
}
