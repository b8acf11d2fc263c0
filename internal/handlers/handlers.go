package handlers

import (
	"github.com/uzmarket/uzmarket-golang/internal/database"
)

// Version is reported by the root health endpoint.
const Version = "1.0"

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Store *database.Store
}
