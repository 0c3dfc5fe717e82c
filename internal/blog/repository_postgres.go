package blog

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
	postColumns = `id, title, slug, content, excerpt, image_url, category, published_at, author`

	listPostsQuery     = `SELECT ` + postColumns + ` FROM blog_posts ORDER BY published_at DESC`
	getPostByIDQuery   = `SELECT ` + postColumns + ` FROM blog_posts WHERE id = $1`
	getPostBySlugQuery = `SELECT ` + postColumns + ` FROM blog_posts WHERE slug = $1`

	insertPostQuery = `
		INSERT INTO blog_posts (title, slug, content, excerpt, image_url, category, published_at, author)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	countPostsQuery = `SELECT COUNT(*) FROM blog_posts`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]BlogPost, error) {
	rows, err := r.db.Query(listPostsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]BlogPost, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (BlogPost, error) {
	return r.getOne(getPostByIDQuery, id)
}

func (r *PostgresRepository) GetBySlug(slug string) (BlogPost, error) {
	return r.getOne(getPostBySlugQuery, slug)
}

func (r *PostgresRepository) getOne(query string, arg any) (BlogPost, error) {
	row := r.db.QueryRow(query, arg)
	p, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return BlogPost{}, ErrNotFound
		}
		return BlogPost{}, err
	}

	return p, nil
}

func (r *PostgresRepository) Create(post BlogPost) (BlogPost, error) {
	var id int
	err := r.db.QueryRow(
		insertPostQuery,
		post.Title,
		post.Slug,
		post.Content,
		post.Excerpt,
		post.ImageURL,
		post.Category,
		post.PublishedAt,
		post.Author,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return BlogPost{}, ErrSlugExists
		}
		return BlogPost{}, err
	}

	post.ID = id
	return post, nil
}

func (r *PostgresRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(countPostsQuery).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanPost(scanner rowScanner) (BlogPost, error) {
	p := BlogPost{}
	if err := scanner.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.Excerpt,
		&p.ImageURL,
		&p.Category,
		&p.PublishedAt,
		&p.Author,
	); err != nil {
		return BlogPost{}, err
	}
	return p, nil
}
