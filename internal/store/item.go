package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/tragkas/portfolio/internal/domain"
)

const itemColumns = "id, category_id, title, description, url, tag, is_popular, position"

// CreateItem inserts a new item at the end of its category's order
func (s *Store) CreateItem(ctx context.Context, categoryID string, fields domain.ItemFields) (*domain.Item, error) {
	var exists string
	err := s.db.QueryRowContext(ctx, "SELECT id FROM categories WHERE id = ?", categoryID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category %q: %w", categoryID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("check category: %w", err)
	}

	var position int
	err = s.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM items WHERE category_id = ?",
		categoryID,
	).Scan(&position)
	if err != nil {
		return nil, fmt.Errorf("next position: %w", err)
	}

	item := &domain.Item{
		ID:          uuid.New().String(),
		CategoryID:  categoryID,
		Title:       fields.Title,
		Description: fields.Description,
		URL:         fields.URL,
		Tag:         fields.Tag,
		IsPopular:   fields.IsPopular,
		Position:    position,
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO items ("+itemColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		item.ID, item.CategoryID, item.Title, item.Description, item.URL, item.Tag, item.IsPopular, item.Position,
	)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	return item, nil
}

// UpdateItem replaces the mutable fields of an item, preserving id and position
func (s *Store) UpdateItem(ctx context.Context, id string, fields domain.ItemFields) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE items SET title = ?, description = ?, url = ?, tag = ?, is_popular = ? WHERE id = ?",
		fields.Title, fields.Description, fields.URL, fields.Tag, fields.IsPopular, id,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return checkAffected(res, "item")
}

// DeleteItem removes an item. Sibling positions keep their gap until the
// next reorder renumbers them.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return checkAffected(res, "item")
}

// ReorderItems applies a bulk position assignment to one category's items,
// all-or-nothing. The submitted ids must be exactly the item ids currently in
// the category; anything else fails with ErrValidation before any write
// survives.
func (s *Store) ReorderItems(ctx context.Context, categoryID string, positions []domain.ItemPosition) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reorder: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, "SELECT id FROM items WHERE category_id = ?", categoryID)
	if err != nil {
		return fmt.Errorf("list category items: %w", err)
	}
	owned := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("scan item id: %w", err)
		}
		owned[id] = true
	}
	if err := rows.Close(); err != nil {
		return fmt.Errorf("list category items: %w", err)
	}

	if len(positions) != len(owned) {
		return fmt.Errorf("reorder covers %d of %d items in category %q: %w",
			len(positions), len(owned), categoryID, domain.ErrValidation)
	}
	seen := make(map[string]bool, len(positions))
	for _, p := range positions {
		if !owned[p.ID] {
			return fmt.Errorf("item %q not in category %q: %w", p.ID, categoryID, domain.ErrValidation)
		}
		if seen[p.ID] {
			return fmt.Errorf("item %q listed twice: %w", p.ID, domain.ErrValidation)
		}
		seen[p.ID] = true
	}

	for _, p := range positions {
		if _, err := tx.ExecContext(ctx,
			"UPDATE items SET position = ? WHERE id = ?", p.Position, p.ID,
		); err != nil {
			return fmt.Errorf("update position: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reorder: %w", err)
	}
	return nil
}

func (s *Store) listAllItems(ctx context.Context) ([]domain.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+itemColumns+" FROM items ORDER BY category_id, position ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		var description, url, tag sql.NullString
		if err := rows.Scan(&it.ID, &it.CategoryID, &it.Title, &description, &url, &tag, &it.IsPopular, &it.Position); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		it.Description = description.String
		it.URL = url.String
		it.Tag = tag.String
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	return items, nil
}
