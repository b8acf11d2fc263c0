package models

// Product is the model for the 'products' table.
type Product struct {
	ID          int64  `json:"id" db:"id"`
	UserID      string `json:"userId" db:"user_id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Price       int64  `json:"price" db:"price"`
	Category    string `json:"category" db:"category"`
	Location    string `json:"location" db:"location"`
	Phone       string `json:"phone" db:"phone"`
	SellerName  string `json:"sellerName" db:"seller_name"`
	Image       string `json:"image" db:"image"`

	// CreatedAt carries the timestamp string exactly as SQLite stored it
	// (CURRENT_TIMESTAMP, UTC). The frontend consumes it under 'date'.
	CreatedAt string `json:"date" db:"created_at"`
}
