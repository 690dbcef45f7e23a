package damagereport

import "io"

// Actor is the caller. A non-empty PropertyGroupID limits reads to that
// property and is stamped on new reports.
type Actor struct {
	UserID          string
	CompanyID       string
	PropertyGroupID string
}

type CreateDamageReportRequest struct {
	UnitNumber  string `form:"unitNumber" binding:"required"`
	Owner       string `form:"owner"`
	Description string `form:"description" binding:"required"`
	Date        string `form:"date" binding:"required"`
}

// Image is an uploaded file as received from the multipart form.
type Image struct {
	Filename string
	Size     int64
	Body     io.Reader
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=open in_progress resolved"`
}

type DamageReportResponse struct {
	ID              string `json:"id"`
	PropertyGroupID string `json:"propertyGroupId,omitempty"`
	UnitNumber      string `json:"unitNumber"`
	Owner           string `json:"owner"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	ImageURL        string `json:"imageUrl,omitempty"`
	ReportedBy      string `json:"reportedBy"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}
