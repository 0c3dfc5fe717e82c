package appointment

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	apptColumns = `id, user_id, full_name, email, phone, appointment_date, appointment_time, appointment_type, notes, confirmed, completed, created_at`

	getApptByIDQuery = `SELECT ` + apptColumns + ` FROM appointments WHERE id = $1`
	listApptsByUserQuery = `
		SELECT ` + apptColumns + `
		FROM appointments
		WHERE user_id = $1
		ORDER BY appointment_date
	`
	listApptsQuery = `SELECT ` + apptColumns + ` FROM appointments ORDER BY appointment_date`

	insertApptQuery = `
		INSERT INTO appointments (user_id, full_name, email, phone, appointment_date, appointment_time, appointment_type, notes, confirmed, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	updateApptStatusQuery = `
		UPDATE appointments
		SET confirmed = $1, completed = $2
		WHERE id = $3
		RETURNING ` + apptColumns
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(appt Appointment) (Appointment, error) {
	var id int
	err := r.db.QueryRow(
		insertApptQuery,
		appt.UserID,
		appt.FullName,
		appt.Email,
		appt.Phone,
		appt.AppointmentDate,
		appt.AppointmentTime,
		appt.AppointmentType,
		nullableString(appt.Notes),
		appt.Confirmed,
		appt.Completed,
		appt.CreatedAt,
	).Scan(&id)
	if err != nil {
		return Appointment{}, err
	}

	appt.ID = id
	return appt, nil
}

func (r *PostgresRepository) GetByID(id int) (Appointment, error) {
	row := r.db.QueryRow(getApptByIDQuery, id)
	a, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Appointment{}, ErrNotFound
		}
		return Appointment{}, err
	}

	return a, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]Appointment, error) {
	return r.list(listApptsByUserQuery, userID)
}

func (r *PostgresRepository) List() ([]Appointment, error) {
	return r.list(listApptsQuery)
}

func (r *PostgresRepository) list(query string, args ...any) ([]Appointment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appts := make([]Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}

	return appts, rows.Err()
}

func (r *PostgresRepository) UpdateStatus(id int, confirmed, completed bool) (Appointment, error) {
	row := r.db.QueryRow(updateApptStatusQuery, confirmed, completed, id)
	a, err := scanAppointment(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Appointment{}, ErrNotFound
		}
		return Appointment{}, err
	}

	return a, nil
}

func nullableString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func scanAppointment(scanner rowScanner) (Appointment, error) {
	a := Appointment{}
	var notes sql.NullString

	if err := scanner.Scan(
		&a.ID,
		&a.UserID,
		&a.FullName,
		&a.Email,
		&a.Phone,
		&a.AppointmentDate,
		&a.AppointmentTime,
		&a.AppointmentType,
		&notes,
		&a.Confirmed,
		&a.Completed,
		&a.CreatedAt,
	); err != nil {
		return Appointment{}, err
	}

	if notes.Valid {
		a.Notes = &notes.String
	}

	return a, nil
}
