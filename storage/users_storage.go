package storage

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mqtt-tools/mosqadm/storage/model"
)

// UsersStorage implements UsersStore using GORM
type UsersStorage struct {
	db *gorm.DB
}

// List returns all users
func (s *UsersStorage) List() ([]model.User, error) {
	users := make([]model.User, 0)
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns the user with the given id, or nil if there is none
func (s *UsersStorage) GetByID(id uint) (*model.User, error) {
	var u model.User
	err := s.db.Where("id = ?", id).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByUsername returns the user with the given username, or nil if there is none
func (s *UsersStorage) GetByUsername(username string) (*model.User, error) {
	var u model.User
	err := s.db.Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user with a bcrypt-hashed password
func (s *UsersStorage) Create(username, password, role string) (*model.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	u := model.User{Username: username, PasswordHash: hash, Role: role}
	if err := s.db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// Update persists role and password hash of an existing user. If newPassword
// is non-nil it is hashed and replaces the stored hash. Username and id are
// never touched.
func (s *UsersStorage) Update(u *model.User, newPassword *string) error {
	if newPassword != nil {
		hash, err := hashPassword(*newPassword)
		if err != nil {
			return err
		}
		u.PasswordHash = hash
	}
	return s.db.Model(&model.User{}).Where("id = ?", u.ID).Updates(
		map[string]any{
			"password_hash": u.PasswordHash,
			"role":          u.Role,
		},
	).Error
}

// DeleteByIDs deletes all users whose id is in ids and returns the number of
// deleted rows
func (s *UsersStorage) DeleteByIDs(ids []uint) (int64, error) {
	res := s.db.Where("id IN ?", ids).Delete(&model.User{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// hashPassword returns a bcrypt hash of the passed password. bcrypt salts
// every call, so hashing the same password twice yields different strings.
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}
