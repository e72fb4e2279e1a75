package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// UserStatus is the lifecycle state of a user
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// Valid reports whether s is a known status
func (s UserStatus) Valid() bool {
	return s == UserStatusActive || s == UserStatusInactive
}

// Role names seeded at startup
const (
	RoleAdmin        = "admin"
	RoleAgentManager = "agent_manager"
	RoleViewer       = "viewer"
	RolePlayer       = "user"
)

// Role is a named permission class
type Role struct {
	ID   int64  `json:"role_id" gorm:"primaryKey;column:id;autoIncrement"`
	Name string `json:"role_name" gorm:"uniqueIndex;not null;type:varchar(50)"`
}

// TableName specifies the table name for Role
func (r Role) TableName() string {
	return "roles"
}

// User represents an identity record: admins, agents, viewers and players
type User struct {
	ID          int64      `json:"user_id" gorm:"primaryKey;column:id;autoIncrement"`
	Username    string     `json:"username" gorm:"uniqueIndex;not null;type:varchar(255)"`
	Password    string     `json:"-" gorm:"column:password_hash;not null;type:varchar(255)"`
	RoleID      int64      `json:"role_id" gorm:"index;not null"`
	Name        string     `json:"name" gorm:"type:varchar(255)"`
	Status      UserStatus `json:"status" gorm:"type:varchar(16);not null;default:'active'"`
	Type        string     `json:"type" gorm:"type:varchar(50)"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at" gorm:"not null"`

	Role Role `json:"-" gorm:"foreignKey:RoleID"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// UserRepository defines the interface for user data.
// Lookups return (nil, nil) when the record does not exist.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	ListByRole(ctx context.Context, roleName string) ([]*User, error)
	WithTransaction(tx *gorm.DB) UserRepository
}

// RoleRepository defines the interface for role reference data
type RoleRepository interface {
	GetByName(ctx context.Context, name string) (*Role, error)
	Create(ctx context.Context, role *Role) error
}

// UserSummary is the identity returned to a client after login
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// AuthUseCase defines credential verification and account maintenance
type AuthUseCase interface {
	Login(ctx context.Context, username, password string, actor Actor) (string, *UserSummary, error)
	Register(ctx context.Context, username, password, roleName string, actor Actor) (*User, error)
	ChangePassword(ctx context.Context, actor Actor, currentPassword, newPassword string) error
}

// CreateAgentInput carries the fields needed to create an agent
type CreateAgentInput struct {
	Username string
	Name     string
	Password string
	Status   UserStatus
	Type     string
}

// AgentUseCase defines agent management
type AgentUseCase interface {
	CreateAgent(ctx context.Context, in CreateAgentInput, actor Actor) (*User, error)
	ListAgents(ctx context.Context) ([]*User, error)
	ListPlayers(ctx context.Context) ([]*User, error)
}
