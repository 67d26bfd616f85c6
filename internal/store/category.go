package store

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/tragkas/portfolio/internal/domain"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify derives a category id from its title: lowercase, whitespace runs
// replaced with hyphens.
func Slugify(title string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
}

// ListCategories returns all categories with their items sorted by position
func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title, subtitle, emoji FROM categories")
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	index := make(map[string]int)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Subtitle, &c.Emoji); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Items = []domain.Item{}
		index[c.ID] = len(categories)
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	items, err := s.listAllItems(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if i, ok := index[item.CategoryID]; ok {
			categories[i].Items = append(categories[i].Items, item)
		}
	}

	return categories, nil
}

// CreateCategory inserts a category under its title-derived id.
// Returns ErrConflict when the derived id is already taken.
func (s *Store) CreateCategory(ctx context.Context, title, subtitle, emoji string) (*domain.Category, error) {
	id := Slugify(title)

	var existing string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM categories WHERE id = ?", id).Scan(&existing)
	if err == nil {
		return nil, fmt.Errorf("category %q: %w", id, domain.ErrConflict)
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("check category: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO categories (id, title, subtitle, emoji) VALUES (?, ?, ?, ?)",
		id, title, subtitle, emoji,
	)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	return &domain.Category{
		ID:       id,
		Title:    title,
		Subtitle: subtitle,
		Emoji:    emoji,
		Items:    []domain.Item{},
	}, nil
}

// UpdateCategory replaces title, subtitle and emoji of an existing category
func (s *Store) UpdateCategory(ctx context.Context, id, title, subtitle, emoji string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE categories SET title = ?, subtitle = ?, emoji = ? WHERE id = ?",
		title, subtitle, emoji, id,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return checkAffected(res, "category")
}

// DeleteCategory removes a category; its items go with it via cascade
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return checkAffected(res, "category")
}

func checkAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, domain.ErrNotFound)
	}
	return nil
}
