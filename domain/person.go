package domain

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Role classifies a person for enrollment purposes.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
	RoleStudent    Role = "student"
)

// Valid returns true when the role is a supported value.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleInstructor, RoleStudent:
		return true
	default:
		return false
	}
}

type Person struct {
	PersonID   int            `gorm:"primaryKey;autoIncrement" json:"person_id"`
	Username   string         `gorm:"type:varchar(100);not null" json:"username" valid:"required~Username is required"`
	Password   string         `gorm:"type:varchar(255)" json:"-"`
	Role       Role           `gorm:"type:person_role;not null" json:"role" valid:"required~Role is required,in(admin|instructor|student)~Invalid role"`
	FirstName  string         `gorm:"type:varchar(100)" json:"first_name"`
	MiddleName string         `gorm:"type:varchar(100)" json:"middle_name"`
	LastName   string         `gorm:"type:varchar(100)" json:"last_name"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Person) TableName() string { return "users" }

// DisplayName joins the non-empty name parts with single spaces and falls
// back to the username when no name part is set.
func (p Person) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.FirstName, p.MiddleName, p.LastName} {
		if t := strings.TrimSpace(s); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) == 0 {
		return p.Username
	}
	return strings.Join(parts, " ")
}

// PersonDirectory is the collaborator interface the enrollment manager uses
// for role validation.
type PersonDirectory interface {
	RoleOf(ctx context.Context, personID int) (Role, error)
}

type PersonRepo interface {
	GetPersonByID(ctx context.Context, id int) (*Person, error)
	GetAllByRole(ctx context.Context, role Role) (*[]Person, error)
	FindByUsername(ctx context.Context, username string) (*Person, error)
	RoleOf(ctx context.Context, personID int) (Role, error)
}

type PersonUseCase interface {
	GetPerson(ctx context.Context, id int) (*Person, error)
	GetPeopleByRole(ctx context.Context, role Role) (*[]Person, error)
}
