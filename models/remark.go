package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Remark is a free-text note attached to one follow-up record, created
// singly or in bulk across a selection.
type Remark struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RemarkMsg     string             `bson:"remarkMsg" json:"remarkMsg"`
	SalesExecCode string             `bson:"salesExecCode,omitempty" json:"salesExecCode,omitempty"`
	ClientCode    string             `bson:"clientCode" json:"clientCode"`
	EntityType    RecordType         `bson:"entityType" json:"entityType"`
	EntityID      string             `bson:"entityId" json:"entityId"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// RemarkInput is one element of a bulk remark request.
type RemarkInput struct {
	RemarkMsg     string     `json:"remarkMsg" binding:"required"`
	SalesExecCode string     `json:"salesExecCode"`
	ClientCode    string     `json:"clientCode" binding:"required"`
	EntityType    RecordType `json:"entityType" binding:"required,oneof=newOrder pendingOrder pendingMaterial cadOrder"`
	EntityID      string     `json:"entityId" binding:"required"`
}

// BulkRemarkRequest creates many remarks in one call.
type BulkRemarkRequest struct {
	Remarks []RemarkInput `json:"remarks" binding:"required,min=1,dive"`
}

type (
	// BulkIDsRequest addresses a selection of one entity type.
	BulkIDsRequest struct {
		EntityType RecordType `json:"entityType" binding:"required,oneof=newOrder pendingOrder pendingMaterial cadOrder"`
		IDs        []string   `json:"ids" binding:"required,min=1"`
	}

	// BulkStatusRequest sets the status on a selection of one entity type.
	BulkStatusRequest struct {
		EntityType RecordType `json:"entityType" binding:"required,oneof=newOrder pendingOrder pendingMaterial cadOrder"`
		Status     Status     `json:"status" binding:"required,oneof=pending completed"`
		IDs        []string   `json:"ids" binding:"required,min=1"`
	}

	// BulkUsersRequest deletes a selection of login or client accounts.
	BulkUsersRequest struct {
		UserType string   `json:"userType" binding:"required,oneof=salesPerson client"`
		IDs      []string `json:"ids" binding:"required,min=1"`
	}
)

// BulkResult is the aggregate outcome of a bulk operation. Matched and
// Affected can differ; callers must not assume all-or-nothing.
type BulkResult struct {
	Matched  int64 `json:"matched"`
	Affected int64 `json:"affected"`
}
