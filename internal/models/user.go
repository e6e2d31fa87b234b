package models

// User represents a registered account. The password column only ever holds
// a bcrypt hash and is excluded from JSON output.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;type:varchar(50);not null"`
	Email    string `json:"email" gorm:"uniqueIndex;type:varchar(100);not null"`
	Password string `json:"-" gorm:"type:varchar(255);not null"`
}

// PublicProfile is the subset of User that is safe to return to clients and
// to embed in token claims.
type PublicProfile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the user's public profile.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
