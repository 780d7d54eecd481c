package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fwojciec/newscrawl"
	"github.com/google/uuid"
)

// ArticleStore reads and writes articles in a SQLite database.
type ArticleStore struct {
	db *DB
}

// NewArticleStore creates a new ArticleStore.
func NewArticleStore(db *DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// UpsertArticles writes articles in a single transaction, replacing any row
// with the same source URL. Returns the number of rows written.
func (s *ArticleStore) UpsertArticles(ctx context.Context, articles []*newscrawl.Article) (int, error) {
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			return 0, err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO articles (id, title, content, capture_date, source_url, content_hash)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_url) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			capture_date = excluded.capture_date,
			content_hash = excluded.content_hash
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, a := range articles {
		if _, err := stmt.ExecContext(ctx,
			uuid.New().String(), a.Title, a.Content, a.Date(), a.SourceURL, hashContent(a.Content),
		); err != nil {
			return 0, fmt.Errorf("failed to write %s: %w", a.SourceURL, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return len(articles), nil
}

// FindArticleByURL retrieves the article captured from sourceURL.
func (s *ArticleStore) FindArticleByURL(ctx context.Context, sourceURL string) (*newscrawl.Article, error) {
	var a newscrawl.Article
	var captureDate string

	err := s.db.QueryRowContext(ctx, `
		SELECT title, content, capture_date, source_url
		FROM articles
		WHERE source_url = ?
	`, sourceURL).Scan(&a.Title, &a.Content, &captureDate, &a.SourceURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, newscrawl.Errorf(newscrawl.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	if a.CaptureDate, err = parseDate(captureDate); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListArticles returns all articles ordered by source URL.
func (s *ArticleStore) ListArticles(ctx context.Context) ([]*newscrawl.Article, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, content, capture_date, source_url
		FROM articles
		ORDER BY source_url
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]*newscrawl.Article, 0)
	for rows.Next() {
		var a newscrawl.Article
		var captureDate string
		if err := rows.Scan(&a.Title, &a.Content, &captureDate, &a.SourceURL); err != nil {
			return nil, err
		}
		if a.CaptureDate, err = parseDate(captureDate); err != nil {
			return nil, err
		}
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

// ContentHash returns the stored content hash for sourceURL.
func (s *ArticleStore) ContentHash(ctx context.Context, sourceURL string) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, `SELECT content_hash FROM articles WHERE source_url = ?`, sourceURL).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", newscrawl.Errorf(newscrawl.ENOTFOUND, "article not found")
	}
	return hash, err
}
