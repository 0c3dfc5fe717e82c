package chart

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
	chartColumns = `id, user_id, name, birth_date, birth_time, birth_place, chart_data, created_at`

	getChartByIDQuery = `SELECT ` + chartColumns + ` FROM birth_charts WHERE id = $1`
	listChartsQuery   = `
		SELECT ` + chartColumns + `
		FROM birth_charts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	insertChartQuery = `
		INSERT INTO birth_charts (user_id, name, birth_date, birth_time, birth_place, chart_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(chart BirthChart) (BirthChart, error) {
	var id int
	err := r.db.QueryRow(
		insertChartQuery,
		chart.UserID,
		chart.Name,
		chart.BirthDate,
		chart.BirthTime,
		chart.BirthPlace,
		[]byte(chart.ChartData),
		chart.CreatedAt,
	).Scan(&id)
	if err != nil {
		return BirthChart{}, err
	}

	chart.ID = id
	return chart, nil
}

func (r *PostgresRepository) GetByID(id int) (BirthChart, error) {
	row := r.db.QueryRow(getChartByIDQuery, id)
	ch, err := scanChart(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return BirthChart{}, ErrNotFound
		}
		return BirthChart{}, err
	}

	return ch, nil
}

func (r *PostgresRepository) ListByUser(userID int) ([]BirthChart, error) {
	rows, err := r.db.Query(listChartsQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	charts := make([]BirthChart, 0)
	for rows.Next() {
		ch, err := scanChart(rows)
		if err != nil {
			return nil, err
		}
		charts = append(charts, ch)
	}

	return charts, rows.Err()
}

func scanChart(scanner rowScanner) (BirthChart, error) {
	ch := BirthChart{}
	var data []byte
	if err := scanner.Scan(
		&ch.ID,
		&ch.UserID,
		&ch.Name,
		&ch.BirthDate,
		&ch.BirthTime,
		&ch.BirthPlace,
		&data,
		&ch.CreatedAt,
	); err != nil {
		return BirthChart{}, err
	}
	ch.ChartData = data
	return ch, nil
}
