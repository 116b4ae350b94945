package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client is a jewelry-trade customer. UserCode is the stable business key
// that follow-up records join on; the ObjectID stays internal.
type Client struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserCode      string             `bson:"userCode" json:"userCode"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	SalesExecCode string             `bson:"salesExecCode,omitempty" json:"salesExecCode,omitempty"`
	IsActive      bool               `bson:"isActive" json:"isActive"`
	ImportBatchID string             `bson:"importBatchId,omitempty" json:"importBatchId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateClientRequest carries the business fields the UI may set.
type CreateClientRequest struct {
	UserCode      string `json:"userCode" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	SalesExecCode string `json:"salesExecCode"`
}

// UpdateClientRequest updates mutable client fields.
type UpdateClientRequest struct {
	Name          string `json:"name" binding:"omitempty"`
	Email         string `json:"email" binding:"omitempty,email"`
	Phone         string `json:"phone"`
	SalesExecCode string `json:"salesExecCode"`
	IsActive      *bool  `json:"isActive"`
}
