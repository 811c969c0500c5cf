package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultRole is assumed for records created without an explicit role
const DefaultRole = "user"

// User represents an account on the blog platform
type User struct {
	ID        string `gorm:"primaryKey;column:id;size:36" json:"_id"`
	Name      string `gorm:"column:name;size:100;not null" json:"name"`
	Email     string `gorm:"column:email;size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	Password  string `gorm:"column:password;size:255;not null" json:"-"`
	Avatar    string `gorm:"column:avatar" json:"avatar,omitempty"`
	Role      string `gorm:"column:role;size:20" json:"role,omitempty"`
	CreatedAt int64  `gorm:"column:created_at;autoCreateTime:false;not null" json:"createdAt"`
	UpdatedAt int64  `gorm:"column:updated_at;autoUpdateTime:false;not null" json:"updatedAt"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt == 0 {
		u.CreatedAt = now
	}
	if u.UpdatedAt == 0 {
		u.UpdatedAt = now
	}
	return nil
}

// EffectiveRole returns the stored role or DefaultRole when none was set
func (u *User) EffectiveRole() string {
	if u.Role == "" {
		return DefaultRole
	}
	return u.Role
}

// Sanitized returns a copy of the user that is safe to hand to clients
func (u *User) Sanitized() User {
	clean := *u
	clean.Password = ""
	return clean
}
