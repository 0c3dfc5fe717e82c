package appointment

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

var apptRowColumns = []string{
	"id", "user_id", "full_name", "email", "phone",
	"appointment_date", "appointment_time", "appointment_type",
	"notes", "confirmed", "completed", "created_at",
}

func TestPostgresListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	date := time.Date(2030, 6, 4, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(apptRowColumns).
		AddRow(1, 7, "Ayşe Yılmaz", "ayse@x.com", "5551234567", date, "10:00", "birth_chart", nil, false, false, date).
		AddRow(2, 7, "Ayşe Yılmaz", "ayse@x.com", "5551234567", date.AddDate(0, 0, 7), "14:30", "transit_analysis", "tekrar", true, false, date)
	mock.ExpectQuery("FROM appointments").WithArgs(7).WillReturnRows(rows)

	appts, err := repo.ListByUser(7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(appts) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appts))
	}
	if appts[0].Notes != nil {
		t.Fatalf("expected nil notes, got %q", *appts[0].Notes)
	}
	if appts[1].Notes == nil || *appts[1].Notes != "tekrar" {
		t.Fatalf("unexpected notes on second appointment: %+v", appts[1].Notes)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateStatusNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// no matching row: RETURNING yields an empty result set
	mock.ExpectQuery("UPDATE appointments").
		WithArgs(true, false, 42).
		WillReturnRows(sqlmock.NewRows(apptRowColumns))

	if _, err := repo.UpdateStatus(42, true, false); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
