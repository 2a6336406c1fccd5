package model

// Access values for ACLRule.RW, following the mosquitto auth plugin
// convention.
const (
	AccessRead      = 1
	AccessWrite     = 2
	AccessReadWrite = 3
	AccessSubscribe = 4
)

// ACLRule grants a user access to a topic (or topic pattern). Rules are
// keyed by username rather than user id; the broker matches on the login
// name, so deleting a user does not cascade to its rules.
type ACLRule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Username references the account the rule applies to
	Username string `gorm:"size:50;uniqueIndex:idx_acl_username_topic" json:"username"`
	// Topic is the topic filter the rule covers
	Topic string `gorm:"size:100;uniqueIndex:idx_acl_username_topic" json:"topic"`
	// RW is one of the Access* values
	RW int `gorm:"column:rw" json:"rw"`
}

// TableName keeps the table name the broker plugin expects.
func (ACLRule) TableName() string {
	return "acl"
}

// ACLStore abstracts access to the acl table. Lookups report absence as a
// nil row, not an error.
type ACLStore interface {
	// List returns all rules
	List() ([]ACLRule, error)
	// GetByID returns the rule with the given id, or nil if there is none
	GetByID(id uint) (*ACLRule, error)
	// GetByUsernameAndTopic returns the rule for the given username and
	// topic, or nil if there is none
	GetByUsernameAndTopic(username, topic string) (*ACLRule, error)
	// ListByUsername returns all rules for the given username
	ListByUsername(username string) ([]ACLRule, error)
	// Create inserts a new rule; the id is assigned on insert
	Create(rule *ACLRule) error
	// Update persists topic and rw of an existing rule
	Update(rule *ACLRule) error
	// DeleteByIDs deletes the rules of the given username whose id is in
	// ids and returns the number of deleted rows
	DeleteByIDs(username string, ids []uint) (int64, error)
}
