package model

// User roles. The broker itself does not interpret the role; it marks which
// accounts the superuser check accepts.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents one broker account in the auth database.
// PasswordHash is never serialized; responses carry the struct as-is, so the
// hash cannot leave the process.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Username is the unique login name the broker authenticates against
	Username string `gorm:"size:50;uniqueIndex" json:"username"`
	// PasswordHash stores a bcrypt hash of the user's password
	PasswordHash string `gorm:"column:password_hash" json:"-"`
	// Role is either RoleAdmin or RoleUser
	Role string `gorm:"size:10" json:"role"`
}

// UsersStore abstracts access to the users table. Lookups report absence as a
// nil row, not an error; it is up to the caller to decide whether a missing
// row is a failure.
type UsersStore interface {
	// List returns all users
	List() ([]User, error)
	// GetByID returns the user with the given id, or nil if there is none
	GetByID(id uint) (*User, error)
	// GetByUsername returns the user with the given username, or nil if there is none
	GetByUsername(username string) (*User, error)
	// Create inserts a new user; the implementation must hash the password
	Create(username, password, role string) (*User, error)
	// Update persists role and password hash of an existing user; if
	// newPassword is non-nil it is hashed and replaces the stored hash
	Update(u *User, newPassword *string) error
	// DeleteByIDs deletes all users whose id is in ids and returns the
	// number of deleted rows
	DeleteByIDs(ids []uint) (int64, error)
}
