package database

import "gorm.io/gorm"

// NewMemoryGorm opens a migrated sqlite database that lives as long as the connection.
func NewMemoryGorm() (*gorm.DB, error) {
	conn, err := Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	if err := RunMigration(conn); err != nil {
		return nil, err
	}
	return conn, nil
}
