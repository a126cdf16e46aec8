package repository

import "time"

// User is stored as one row; favourites live inside it as a JSON array so a
// favourites mutation touches a single record.
type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	UserName     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Favourites   []string  `gorm:"serializer:json;type:text;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// Models lists the tables the repository needs.
func Models() []any {
	return []any{&User{}}
}
