package model

import "time"

// Admin represents a staff account with access to the management surface.
type Admin struct {
	ID           int64
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
