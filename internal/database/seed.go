package database

import (
	"context"
	"fmt"
)

// DefaultAdminPassword is inserted into the admins table the first time the
// database is created. There is no endpoint to change it.
const DefaultAdminPassword = "Behruzseller2010uzGlobal"

// Seed inserts the default admin credential and the demo listing, each
// guarded by a row-count check so repeated startups never duplicate them.
func (s *Store) Seed(ctx context.Context) error {
	// 1. --- Default admin password ---
	var admins int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM admins").Scan(&admins); err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if admins == 0 {
		if _, err := s.db.ExecContext(ctx,
			"INSERT INTO admins (password) VALUES (?)", DefaultAdminPassword); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
	}

	// 2. --- Demo listing ---
	var products int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&products); err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if products == 0 {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO products (user_id, title, description, price, category, location, phone, seller_name, image)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			"demo",
			"iPhone 15 Pro Max 256GB",
			"Yangi, karobkada. Barcha aksessuarlar bilan. Garantiya 1 yil.",
			18500000,
			"electronics",
			"Toshkent, Yunusobod",
			"+998 90 123 45 67",
			"Jamshid",
			"https://images.unsplash.com/photo-1632661674596-df8be070a5c5?w=600&h=600&fit=crop",
		); err != nil {
			return fmt.Errorf("seed demo product: %w", err)
		}
	}

	return nil
}
