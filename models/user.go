package models

// User represents an analyst account used for authentication.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database on creation.
	UserID int64 `json:"-"`

	// Username is the unique login identifier, immutable after creation.
	Username string `json:"username"`

	// PasswordHash is the bcrypt digest of the user's password.
	// This value MUST be a derived hash, never plaintext.
	// It is never serialised to JSON.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the username/password pair an analyst presents at login.
// The Password field carries the plaintext password for the duration of the
// login request only; it is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
