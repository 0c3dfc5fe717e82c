package contact

import (
	"database/sql"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertMessageQuery = `
		INSERT INTO contact_messages (name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	listMessagesQuery = `
		SELECT id, name, email, subject, message, created_at
		FROM contact_messages
		ORDER BY id
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(msg ContactMessage) (ContactMessage, error) {
	var id int
	err := r.db.QueryRow(
		insertMessageQuery,
		msg.Name,
		msg.Email,
		msg.Subject,
		msg.Message,
		msg.CreatedAt,
	).Scan(&id)
	if err != nil {
		return ContactMessage{}, err
	}

	msg.ID = id
	return msg, nil
}

func (r *PostgresRepository) List() ([]ContactMessage, error) {
	rows, err := r.db.Query(listMessagesQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]ContactMessage, 0)
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
