package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecordType tags the four follow-up record variants. Each variant lives in
// its own collection; bulk operations never mix types in one call.
type RecordType string

const (
	RecordTypeNewOrder        RecordType = "newOrder"
	RecordTypePendingOrder    RecordType = "pendingOrder"
	RecordTypePendingMaterial RecordType = "pendingMaterial"
	RecordTypeCadOrder        RecordType = "cadOrder"
)

// AllRecordTypes lists every variant, in display order.
var AllRecordTypes = []RecordType{
	RecordTypeNewOrder,
	RecordTypePendingOrder,
	RecordTypePendingMaterial,
	RecordTypeCadOrder,
}

// FollowUpEntry is one append-only history item on a follow-up record.
// The newest entry's nextFollowUpDate/status is mirrored onto the parent.
type FollowUpEntry struct {
	FollowUpMsg      string     `bson:"followUpMsg" json:"followUpMsg"`
	NextFollowUpDate *time.Time `bson:"nextFollowUpDate,omitempty" json:"nextFollowUpDate,omitempty"`
	Status           Status     `bson:"status" json:"status"`
	CreatedAt        time.Time  `bson:"createdAt" json:"createdAt"`
	TakenBy          string     `bson:"takenBy" json:"takenBy"`
}

// FollowupBase holds the fields shared by all four record variants.
// NextFollowUpDate, LastFollowUpDate, LastFollowUpBy and Status are a
// denormalized read model of the FollowUps history; the history is
// authoritative.
type FollowupBase struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClientCode       string             `bson:"clientCode" json:"clientCode"`
	ClientName       string             `bson:"clientName" json:"clientName"`
	SalesExecCode    string             `bson:"salesExecCode,omitempty" json:"salesExecCode,omitempty"`
	Status           Status             `bson:"status" json:"status"`
	NextFollowUpDate *time.Time         `bson:"nextFollowUpDate,omitempty" json:"nextFollowUpDate,omitempty"`
	LastFollowUpDate *time.Time         `bson:"lastFollowUpDate,omitempty" json:"lastFollowUpDate,omitempty"`
	LastFollowUpBy   string             `bson:"lastFollowUpBy,omitempty" json:"lastFollowUpBy,omitempty"`
	Remark           string             `bson:"remark,omitempty" json:"remark,omitempty"`
	FollowUps        []FollowUpEntry    `bson:"followUps,omitempty" json:"followUps,omitempty"`
	ImportBatchID    string             `bson:"importBatchId,omitempty" json:"importBatchId,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FollowupRecord is the tagged union over the four variants. ReferenceDate
// returns the variant's business date: the one date-range filters and the
// computed "days since" columns are measured against.
type FollowupRecord interface {
	Base() *FollowupBase
	Type() RecordType
	ReferenceDate() *time.Time
}

// NewOrder tracks a client with no recent order: a prospective sale.
type NewOrder struct {
	FollowupBase  `bson:",inline"`
	LastOrderDate *time.Time `bson:"lastOrderDate,omitempty" json:"lastOrderDate,omitempty"`
	LastOrderNo   string     `bson:"lastOrderNo,omitempty" json:"lastOrderNo,omitempty"`
}

func (r *NewOrder) Base() *FollowupBase       { return &r.FollowupBase }
func (r *NewOrder) Type() RecordType          { return RecordTypeNewOrder }
func (r *NewOrder) ReferenceDate() *time.Time { return r.LastOrderDate }

// PendingOrder is an order with undelivered pieces.
type PendingOrder struct {
	FollowupBase  `bson:",inline"`
	OrderNo       string     `bson:"orderNo" json:"orderNo"`
	OrderDate     *time.Time `bson:"orderDate,omitempty" json:"orderDate,omitempty"`
	TotalOrderPcs int        `bson:"totalOrderPcs" json:"totalOrderPcs"`
	DeliveredPcs  *int       `bson:"deliveredPcs,omitempty" json:"deliveredPcs,omitempty"`
	PendingPcs    int        `bson:"pendingPcs" json:"pendingPcs"`
}

func (r *PendingOrder) Base() *FollowupBase       { return &r.FollowupBase }
func (r *PendingOrder) Type() RecordType          { return RecordTypePendingOrder }
func (r *PendingOrder) ReferenceDate() *time.Time { return r.OrderDate }

// DerivePendingPcs recomputes the pending count when the delivered count is
// known; otherwise the stored value stands.
func (r *PendingOrder) DerivePendingPcs() {
	if r.DeliveredPcs != nil {
		r.PendingPcs = r.TotalOrderPcs - *r.DeliveredPcs
	}
}

// PendingMaterial is work-in-progress awaiting a production department.
type PendingMaterial struct {
	FollowupBase         `bson:",inline"`
	StyleNo              string     `bson:"styleNo" json:"styleNo"`
	DepartmentName       string     `bson:"departmentName" json:"departmentName"`
	TotalNetWt           float64    `bson:"totalNetWt" json:"totalNetWt"`
	ExpectedDeliveryDate *time.Time `bson:"expectedDeliveryDate,omitempty" json:"expectedDeliveryDate,omitempty"`
}

func (r *PendingMaterial) Base() *FollowupBase       { return &r.FollowupBase }
func (r *PendingMaterial) Type() RecordType          { return RecordTypePendingMaterial }
func (r *PendingMaterial) ReferenceDate() *time.Time { return r.ExpectedDeliveryDate }

// CadOrder is a design job awaiting CAD approval.
type CadOrder struct {
	FollowupBase `bson:",inline"`
	DesignNo     string     `bson:"designNo" json:"designNo"`
	CadDate      *time.Time `bson:"cadDate,omitempty" json:"cadDate,omitempty"`
	DesignStatus string     `bson:"designStatus,omitempty" json:"designStatus,omitempty"`
}

func (r *CadOrder) Base() *FollowupBase       { return &r.FollowupBase }
func (r *CadOrder) Type() RecordType          { return RecordTypeCadOrder }
func (r *CadOrder) ReferenceDate() *time.Time { return r.CadDate }

// AddFollowUpEntryInput appends one history item to a record.
type AddFollowUpEntryInput struct {
	RecordID         string     `json:"recordId" binding:"required"`
	FollowUpMsg      string     `json:"followUpMsg" binding:"required"`
	NextFollowUpDate *time.Time `json:"nextFollowUpDate"`
	Status           Status     `json:"status" binding:"omitempty,oneof=pending completed"`
}
