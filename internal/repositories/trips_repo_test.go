package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	intconfig "fleetledger/internal/config"
	"fleetledger/internal/domain"
)

func TestTripsListScansDecimalColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	mock.MatchExpectationsInOrder(false)

	cols := []string{"id", "vehicle_id", "date", "cash", "earning", "is_archived", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT .+ FROM trips").WithArgs("veh-1", "2024-01-01", "2024-01-31").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("t1", "veh-1", "2024-01-15", "150.50", "350.25", false, "2024-01-15 10:00:00", "2024-01-15 10:00:00").
			AddRow("t2", "veh-1", "2024-01-10", []byte("0.00"), []byte("99.99"), true, "2024-01-10 09:00:00", "2024-01-10 09:00:00"))

	repo := TripsRepository{DB: db}
	out, err := repo.List(context.Background(), TripListFilter{
		VehicleID: "veh-1",
		From:      "2024-01-01",
		To:        "2024-01-31",
	})
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(out))
	}
	if got := out[0].Cash.StringFixed(2); got != "150.50" {
		t.Fatalf("cash = %s, want 150.50", got)
	}
	if got := out[1].Earning.StringFixed(2); got != "99.99" {
		t.Fatalf("earning = %s, want 99.99", got)
	}
	if !out[1].IsArchived {
		t.Fatalf("expected second trip archived")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripsCreateGeneratesID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db
	mock.MatchExpectationsInOrder(false)

	mock.ExpectExec("INSERT INTO trips").
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := TripsRepository{DB: db}
	in := domain.Trip{VehicleID: "veh-1", Date: "2024-02-01"}
	out, err := repo.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if out.ID == "" {
		t.Fatalf("expected generated id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTripsDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectExec("DELETE FROM trips").WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := TripsRepository{DB: db}
	err = repo.Delete(context.Background(), "missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestTripsVehicleIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectQuery("SELECT vehicle_id FROM trips").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}))

	repo := TripsRepository{DB: db}
	_, err = repo.VehicleID(context.Background(), "missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestTripsArchiveBeforeCountsRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	intconfig.DB = db

	mock.ExpectExec("UPDATE trips SET is_archived=1").WithArgs("2024-03-01").
		WillReturnResult(sqlmock.NewResult(0, 7))

	repo := TripsRepository{DB: db}
	n, err := repo.ArchiveBefore(context.Background(), "2024-03-01")
	if err != nil {
		t.Fatalf("archive error: %v", err)
	}
	if n != 7 {
		t.Fatalf("archived = %d, want 7", n)
	}
}
