package models

import "time"

type (
	// CreateNewOrderRequest creates a new-order follow-up record.
	CreateNewOrderRequest struct {
		ClientCode       string     `json:"clientCode" binding:"required"`
		SalesExecCode    string     `json:"salesExecCode"`
		LastOrderNo      string     `json:"lastOrderNo"`
		LastOrderDate    *time.Time `json:"lastOrderDate"`
		NextFollowUpDate *time.Time `json:"nextFollowUpDate"`
		Remark           string     `json:"remark"`
	}

	// UpdateNewOrderRequest updates mutable new-order fields.
	UpdateNewOrderRequest struct {
		SalesExecCode    string     `json:"salesExecCode"`
		LastOrderNo      string     `json:"lastOrderNo"`
		LastOrderDate    *time.Time `json:"lastOrderDate"`
		NextFollowUpDate *time.Time `json:"nextFollowUpDate"`
		Status           Status     `json:"status" binding:"omitempty,oneof=pending completed"`
		Remark           string     `json:"remark"`
	}

	// CreatePendingOrderRequest creates a pending-order record.
	CreatePendingOrderRequest struct {
		ClientCode       string     `json:"clientCode" binding:"required"`
		SalesExecCode    string     `json:"salesExecCode"`
		OrderNo          string     `json:"orderNo" binding:"required"`
		OrderDate        *time.Time `json:"orderDate"`
		TotalOrderPcs    int        `json:"totalOrderPcs" binding:"required,min=1"`
		DeliveredPcs     *int       `json:"deliveredPcs" binding:"omitempty,min=0"`
		PendingPcs       int        `json:"pendingPcs" binding:"omitempty,min=0"`
		NextFollowUpDate *time.Time `json:"nextFollowUpDate"`
		Remark           string     `json:"remark"`
	}

	// UpdatePendingOrderRequest updates mutable pending-order fields.
	UpdatePendingOrderRequest struct {
		SalesExecCode    string     `json:"salesExecCode"`
		OrderNo          string     `json:"orderNo"`
		OrderDate        *time.Time `json:"orderDate"`
		TotalOrderPcs    *int       `json:"totalOrderPcs" binding:"omitempty,min=1"`
		DeliveredPcs     *int       `json:"deliveredPcs" binding:"omitempty,min=0"`
		PendingPcs       *int       `json:"pendingPcs" binding:"omitempty,min=0"`
		NextFollowUpDate *time.Time `json:"nextFollowUpDate"`
		Status           Status     `json:"status" binding:"omitempty,oneof=pending completed"`
		Remark           string     `json:"remark"`
	}

	// CreatePendingMaterialRequest creates a WIP material record.
	CreatePendingMaterialRequest struct {
		ClientCode           string     `json:"clientCode" binding:"required"`
		SalesExecCode        string     `json:"salesExecCode"`
		StyleNo              string     `json:"styleNo" binding:"required"`
		DepartmentName       string     `json:"departmentName" binding:"required"`
		TotalNetWt           float64    `json:"totalNetWt" binding:"omitempty,min=0"`
		ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate"`
		NextFollowUpDate     *time.Time `json:"nextFollowUpDate"`
		Remark               string     `json:"remark"`
	}

	// UpdatePendingMaterialRequest updates mutable WIP fields.
	UpdatePendingMaterialRequest struct {
		SalesExecCode        string     `json:"salesExecCode"`
		StyleNo              string     `json:"styleNo"`
		DepartmentName       string     `json:"departmentName"`
		TotalNetWt           *float64   `json:"totalNetWt" binding:"omitempty,min=0"`
		ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate"`
		NextFollowUpDate     *time.Time `json:"nextFollowUpDate"`
		Status               Status     `json:"status" binding:"omitempty,oneof=pending completed"`
		Remark               string     `json:"remark"`
	}

	// CreateCadOrderRequest creates a CAD design record.
	CreateCadOrderRequest struct {
		ClientCode       string     `json:"clientCode" binding:"required"`
		SalesExecCode    string     `json:"salesExecCode"`
		DesignNo         string     `json:"designNo" binding:"required"`
		CadDate          *time.Time `json:"cadDate"`
		DesignStatus     string     `json:"designStatus"`
		NextFollowUpDate *time.Time `json:"nextFollowUpDate"`
		Remark           string     `json:"remark"`
	}

	// UpdateCadOrderRequest updates mutable CAD fields.
	UpdateCadOrderRequest struct {
		SalesExecCode    string     `json:"salesExecCode"`
		DesignNo         string     `json:"designNo"`
		CadDate          *time.Time `json:"cadDate"`
		DesignStatus     string     `json:"designStatus"`
		NextFollowUpDate *time.Time `json:"nextFollowUpDate"`
		Status           Status     `json:"status" binding:"omitempty,oneof=pending completed"`
		Remark           string     `json:"remark"`
	}
)
