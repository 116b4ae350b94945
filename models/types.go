package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole enumerates the back-office roles.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleSales UserRole = "sales"
)

// Status is the follow-up lifecycle state of a record.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// NormalizeStatus maps an absent status to pending.
func NormalizeStatus(s Status) Status {
	if s == StatusCompleted {
		return StatusCompleted
	}
	return StatusPending
}

// SalesPerson is a back-office login: admins and sales executives.
type SalesPerson struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserCode  string             `bson:"userCode" json:"userCode"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Password  string             `bson:"password" json:"-"`
	Role      UserRole           `bson:"role" json:"role"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type (
	// LoginRequest accepts either email or userCode as the identifier.
	LoginRequest struct {
		Email    string `json:"email"`
		UserCode string `json:"userCode"`
		Password string `json:"password" binding:"required"`
	}

	// LoginResponse carries the signed token and the user profile.
	LoginResponse struct {
		Token string      `json:"token"`
		User  interface{} `json:"user"`
	}

	// SetPasswordRequest resets a sales person's password by userCode.
	SetPasswordRequest struct {
		UserCode string `json:"userCode" binding:"required"`
		Password string `json:"password" binding:"required,min=6"`
	}

	// CreateSalesPersonRequest creates a login account.
	CreateSalesPersonRequest struct {
		UserCode string   `json:"userCode" binding:"required"`
		Name     string   `json:"name" binding:"required,min=2"`
		Email    string   `json:"email" binding:"omitempty,email"`
		Phone    string   `json:"phone"`
		Password string   `json:"password" binding:"required,min=6"`
		Role     UserRole `json:"role" binding:"required,oneof=admin sales"`
	}

	// UpdateSalesPersonRequest updates mutable account fields.
	UpdateSalesPersonRequest struct {
		Name     string    `json:"name" binding:"omitempty,min=2"`
		Email    string    `json:"email" binding:"omitempty,email"`
		Phone    string    `json:"phone"`
		Password string    `json:"password" binding:"omitempty,min=6"`
		Role     UserRole  `json:"role" binding:"omitempty,oneof=admin sales"`
		IsActive *bool     `json:"isActive"`
		Updated  time.Time `json:"-"`
	}
)

// ListEnvelope is the single list-response shape every list endpoint returns.
type ListEnvelope struct {
	Data       interface{} `json:"data"`
	TotalItems int64       `json:"totalItems"`
	TotalPages int64       `json:"totalPages"`
}
