// Package entity defines the domain models for the userdirectory feature.
package entity

// User is one directory entry. Username and Email are unique across all
// rows; the constraint lives in the store's unique indexes.
type User struct {
	ID       uint   `gorm:"primaryKey"                    json:"id"`
	Username string `gorm:"size:80;not null;uniqueIndex"  json:"username"`
	Email    string `gorm:"size:120;not null;uniqueIndex" json:"email"`
}

// TableName returns the table name for GORM.
func (User) TableName() string {
	return "users"
}
