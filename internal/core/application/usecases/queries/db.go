package queries

import "gorm.io/gorm"

// Database hands out the current GORM handle. Query handlers resolve it per
// call instead of holding a *gorm.DB, because a restore swaps the
// underlying store file and reopens the connection pool.
type Database interface {
	Gorm() *gorm.DB
}
