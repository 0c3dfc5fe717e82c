package user

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	getUserByIDQuery = `
		SELECT id, username, password, email, first_name, last_name, birth_date, birth_time, birth_place, created_at
		FROM users
		WHERE id = $1
	`
	getUserByUsernameQuery = `
		SELECT id, username, password, email, first_name, last_name, birth_date, birth_time, birth_place, created_at
		FROM users
		WHERE lower(username) = lower($1)
	`
	getUserByEmailQuery = `
		SELECT id, username, password, email, first_name, last_name, birth_date, birth_time, birth_place, created_at
		FROM users
		WHERE lower(email) = lower($1)
	`
	insertUserQuery = `
		INSERT INTO users (username, password, email, first_name, last_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (User, error) {
	row := r.db.QueryRow(getUserByIDQuery, id)
	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return u, nil
}

func (r *PostgresRepository) GetByUsername(username string) (User, error) {
	row := r.db.QueryRow(getUserByUsernameQuery, username)
	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return u, nil
}

func (r *PostgresRepository) GetByEmail(email string) (User, error) {
	row := r.db.QueryRow(getUserByEmailQuery, email)
	u, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return User{}, ErrNotFound
		}
		return User{}, err
	}

	return u, nil
}

func (r *PostgresRepository) Create(u User) (User, error) {
	var id int
	firstName := nullableString(u.FirstName)
	lastName := nullableString(u.LastName)

	err := r.db.QueryRow(
		insertUserQuery,
		u.Username,
		u.Password,
		u.Email,
		firstName,
		lastName,
		u.CreatedAt,
	).Scan(&id)
	if err != nil {
		return User{}, mapUniqueViolation(err)
	}

	u.ID = id
	return u, nil
}

// mapUniqueViolation translates a 23505 from the unique indexes into the
// sentinel errors the service layer already knows. The database is the
// authoritative uniqueness check; the pre-check in Register is just UX.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return ErrEmailExists
		}
		return ErrUsernameExists
	}
	return err
}

func nullableString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func scanUser(scanner rowScanner) (User, error) {
	u := User{}
	var firstName sql.NullString
	var lastName sql.NullString
	var birthDate sql.NullTime
	var birthTime sql.NullString
	var birthPlace sql.NullString

	if err := scanner.Scan(
		&u.ID,
		&u.Username,
		&u.Password,
		&u.Email,
		&firstName,
		&lastName,
		&birthDate,
		&birthTime,
		&birthPlace,
		&u.CreatedAt,
	); err != nil {
		return User{}, err
	}

	if firstName.Valid {
		u.FirstName = &firstName.String
	}
	if lastName.Valid {
		u.LastName = &lastName.String
	}
	if birthDate.Valid {
		u.BirthDate = &birthDate.Time
	}
	if birthTime.Valid {
		u.BirthTime = &birthTime.String
	}
	if birthPlace.Valid {
		u.BirthPlace = &birthPlace.String
	}

	return u, nil
}
