// Package dto defines data transfer objects for the userdirectory HTTP API.
package dto

// UserItem represents a user in the /users response.
type UserItem struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
