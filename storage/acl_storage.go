package storage

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/mqtt-tools/mosqadm/storage/model"
)

// ACLStorage implements ACLStore using GORM
type ACLStorage struct {
	db *gorm.DB
}

// List returns all rules
func (s *ACLStorage) List() ([]model.ACLRule, error) {
	rules := make([]model.ACLRule, 0)
	if err := s.db.Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// GetByID returns the rule with the given id, or nil if there is none
func (s *ACLStorage) GetByID(id uint) (*model.ACLRule, error) {
	var rule model.ACLRule
	err := s.db.Where("id = ?", id).First(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetByUsernameAndTopic returns the rule for the given username and topic,
// or nil if there is none
func (s *ACLStorage) GetByUsernameAndTopic(username, topic string) (*model.ACLRule, error) {
	var rule model.ACLRule
	err := s.db.Where("username = ? AND topic = ?", username, topic).First(&rule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// ListByUsername returns all rules for the given username
func (s *ACLStorage) ListByUsername(username string) ([]model.ACLRule, error) {
	rules := make([]model.ACLRule, 0)
	if err := s.db.Where("username = ?", username).Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// Create inserts a new rule; the id is assigned on insert
func (s *ACLStorage) Create(rule *model.ACLRule) error {
	return s.db.Create(rule).Error
}

// Update persists topic and rw of an existing rule. Username and id are
// never touched.
func (s *ACLStorage) Update(rule *model.ACLRule) error {
	return s.db.Model(&model.ACLRule{}).Where("id = ?", rule.ID).Updates(
		map[string]any{
			"topic": rule.Topic,
			"rw":    rule.RW,
		},
	).Error
}

// DeleteByIDs deletes the rules of the given username whose id is in ids and
// returns the number of deleted rows
func (s *ACLStorage) DeleteByIDs(username string, ids []uint) (int64, error) {
	res := s.db.Where("username = ? AND id IN ?", username, ids).Delete(&model.ACLRule{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
