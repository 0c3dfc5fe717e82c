package zodiac

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type PostgresRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

const (
	signColumns = `id, name, symbol, element, planet, date_range, traits, strengths, weaknesses, description, compatibility, image_url`

	listSignsQuery     = `SELECT ` + signColumns + ` FROM zodiac_signs ORDER BY id`
	getSignByIDQuery   = `SELECT ` + signColumns + ` FROM zodiac_signs WHERE id = $1`
	getSignByNameQuery = `SELECT ` + signColumns + ` FROM zodiac_signs WHERE lower(name) = lower($1)`

	insertSignQuery = `
		INSERT INTO zodiac_signs (name, symbol, element, planet, date_range, traits, strengths, weaknesses, description, compatibility, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	countSignsQuery = `SELECT COUNT(*) FROM zodiac_signs`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]ZodiacSign, error) {
	rows, err := r.db.Query(listSignsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	signs := make([]ZodiacSign, 0, 12)
	for rows.Next() {
		s, err := scanSign(rows)
		if err != nil {
			return nil, err
		}
		signs = append(signs, s)
	}

	return signs, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (ZodiacSign, error) {
	return r.getOne(getSignByIDQuery, id)
}

func (r *PostgresRepository) GetByName(name string) (ZodiacSign, error) {
	return r.getOne(getSignByNameQuery, name)
}

func (r *PostgresRepository) getOne(query string, arg any) (ZodiacSign, error) {
	row := r.db.QueryRow(query, arg)
	s, err := scanSign(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return ZodiacSign{}, ErrNotFound
		}
		return ZodiacSign{}, err
	}

	return s, nil
}

func (r *PostgresRepository) Create(sign ZodiacSign) (ZodiacSign, error) {
	var id int
	err := r.db.QueryRow(
		insertSignQuery,
		sign.Name,
		sign.Symbol,
		sign.Element,
		sign.Planet,
		sign.DateRange,
		sign.Traits,
		sign.Strengths,
		sign.Weaknesses,
		sign.Description,
		sign.Compatibility,
		sign.ImageURL,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ZodiacSign{}, ErrNameExists
		}
		return ZodiacSign{}, err
	}

	sign.ID = id
	return sign, nil
}

func (r *PostgresRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(countSignsQuery).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanSign(scanner rowScanner) (ZodiacSign, error) {
	s := ZodiacSign{}
	if err := scanner.Scan(
		&s.ID,
		&s.Name,
		&s.Symbol,
		&s.Element,
		&s.Planet,
		&s.DateRange,
		&s.Traits,
		&s.Strengths,
		&s.Weaknesses,
		&s.Description,
		&s.Compatibility,
		&s.ImageURL,
	); err != nil {
		return ZodiacSign{}, err
	}
	return s, nil
}
