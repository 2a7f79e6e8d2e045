package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookapp-backend/internal/domains/book"
	"bookapp-backend/pkg/database"
)

// postgresRepository is the concrete book.Repository backed by pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository returns a Postgres-backed book repository.
func NewPostgresRepository(pool *pgxpool.Pool) book.Repository {
	return &postgresRepository{pool: pool}
}

const pgForeignKeyViolation = "23503"

const bookColumns = `
	id, user_id, title, author, genre, pages, cover, status,
	notes, rating, pages_read, start_date, finish_date,
	created_at, updated_at
`

func scanBook(row pgx.Row, b *book.Book) error {
	return row.Scan(
		&b.ID, &b.UserID, &b.Title, &b.Author, &b.Genre, &b.Pages, &b.Cover, &b.Status,
		&b.Notes, &b.Rating, &b.PagesRead, &b.StartDate, &b.FinishDate,
		&b.CreatedAt, &b.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	query := `
		INSERT INTO books (
			id, user_id, title, author, genre, pages, cover, status,
			notes, rating, pages_read, start_date, finish_date,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13,
			$14, $15
		)
	`

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, query,
			b.ID, b.UserID, b.Title, b.Author, b.Genre, b.Pages, b.Cover, b.Status,
			b.Notes, b.Rating, b.PagesRead, b.StartDate, b.FinishDate,
			b.CreatedAt, b.UpdatedAt,
		)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return book.ErrOwnerNotFound
		}
		return fmt.Errorf("create book: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	var b book.Book
	if err := scanBook(r.pool.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book by id: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, status string) ([]book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE user_id = $1`
	args := []interface{}{ownerID}

	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]book.Book, 0)
	for rows.Next() {
		var b book.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books rows: %w", err)
	}

	return books, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	// user_id is deliberately absent: ownership is immutable.
	query := `
		UPDATE books SET
			title = $2, author = $3, genre = $4, pages = $5, cover = $6,
			status = $7, notes = $8, rating = $9, pages_read = $10,
			start_date = $11, finish_date = $12, updated_at = $13
		WHERE id = $1
	`

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, query,
			b.ID, b.Title, b.Author, b.Genre, b.Pages, b.Cover,
			b.Status, b.Notes, b.Rating, b.PagesRead,
			b.StartDate, b.FinishDate, b.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update book: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return book.ErrBookNotFound
		}
		return nil
	})
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete book: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return book.ErrBookNotFound
		}
		return nil
	})
}
