package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uzmarket/uzmarket-golang/internal/models"
)

// ErrNotFound is returned when a queried row does not exist.
var ErrNotFound = errors.New("not found")

// ListProducts returns every product, newest first. The id tiebreak keeps
// the order strict when two rows share the same one-second timestamp.
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, title, description, price, category, location, phone, seller_name, image, created_at
		FROM products
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Title,
			&p.Description,
			&p.Price,
			&p.Category,
			&p.Location,
			&p.Phone,
			&p.SellerName,
			&p.Image,
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// InsertProduct stores a new product and returns its assigned id.
// created_at comes from the column default (CURRENT_TIMESTAMP, UTC);
// the ID and CreatedAt fields of p are ignored.
func (s *Store) InsertProduct(ctx context.Context, p models.Product) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO products (user_id, title, description, price, category, location, phone, seller_name, image)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UserID,
		p.Title,
		p.Description,
		p.Price,
		p.Category,
		p.Location,
		p.Phone,
		p.SellerName,
		p.Image,
	)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert product id: %w", err)
	}
	return id, nil
}

// UpdateProduct overwrites the mutable columns of the row matching id.
// user_id and created_at are never touched. A non-existent id matches zero
// rows and is not an error; callers get the affected count and may ignore it.
func (s *Store) UpdateProduct(ctx context.Context, id int64, p models.Product) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET title = ?, description = ?, price = ?, category = ?,
		    location = ?, phone = ?, seller_name = ?, image = ?
		WHERE id = ?`,
		p.Title,
		p.Description,
		p.Price,
		p.Category,
		p.Location,
		p.Phone,
		p.SellerName,
		p.Image,
		id,
	)
	if err != nil {
		return 0, fmt.Errorf("update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update product rows: %w", err)
	}
	return affected, nil
}

// DeleteProduct removes the row matching id. Same contract as
// UpdateProduct: an unknown id matches zero rows and is not an error.
func (s *Store) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete product rows: %w", err)
	}
	return affected, nil
}

// CountProducts returns the total number of products.
func (s *Store) CountProducts(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// CountProductsCreatedOn counts products created on the given calendar day.
// Calendar-date equality, not a rolling 24h window; day is compared in UTC
// because CURRENT_TIMESTAMP stores UTC.
func (s *Store) CountProductsCreatedOn(ctx context.Context, day time.Time) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM products WHERE DATE(created_at) = DATE(?)",
		day.UTC().Format("2006-01-02"),
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count today products: %w", err)
	}
	return count, nil
}

// AdminPassword returns the single stored admin password. ErrNotFound means
// the admins table is empty.
func (s *Store) AdminPassword(ctx context.Context) (string, error) {
	var password string
	err := s.db.QueryRowContext(ctx, "SELECT password FROM admins LIMIT 1").Scan(&password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get admin password: %w", err)
	}
	return password, nil
}
