package owner

import (
	"aparthotel/internal/booking"
	"aparthotel/internal/propertygroup"
	"aparthotel/internal/report"
)

// Actor is the caller. Role decides whether OwnerID must match UserID.
type Actor struct {
	UserID    string
	CompanyID string
	Role      string
}

type Dashboard struct {
	PropertyGroup          propertygroup.PropertyGroupResponse `json:"propertyGroup"`
	UnitCount              int                                 `json:"unitCount"`
	BookingsThisMonth      int                                 `json:"bookingsThisMonth"`
	IncomeThisMonth        float64                             `json:"incomeThisMonth"`
	OccupancyRateThisMonth float64                             `json:"occupancyRateThisMonth"`
	LatestReport           *report.FinancialReportResponse     `json:"latestReport"`
}

// OwnerBooking omits guest identity.
type OwnerBooking = booking.GeneralBookingResponse

type AddNoteRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type NoteResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"ownerId"`
	Content   string `json:"content"`
	CreatedBy string `json:"createdBy,omitempty"`
	CreatedAt string `json:"createdAt"`
}
