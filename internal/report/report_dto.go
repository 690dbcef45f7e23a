package report

type GeneralReportQuery struct {
	PropertyGroupID string `form:"propertyGroupId" binding:"omitempty,uuid"`
	Day             int    `form:"day"`
	Month           int    `form:"month"`
	Year            int    `form:"year"`
	Format          string `form:"format"`
}

type MonthBucket struct {
	Year     int     `json:"year"`
	Month    int     `json:"month"`
	Income   float64 `json:"income"`
	Bookings int     `json:"bookings"`
}

type PropertyBucket struct {
	PropertyGroupID string  `json:"propertyGroupId"`
	Name            string  `json:"name"`
	Income          float64 `json:"income"`
	Bookings        int     `json:"bookings"`
}

type GeneralReport struct {
	From         string           `json:"from,omitempty"`
	To           string           `json:"to,omitempty"`
	TotalIncome  float64          `json:"totalIncome"`
	BookingCount int              `json:"bookingCount"`
	GuestNights  int              `json:"guestNights"`
	ByMonth      []MonthBucket    `json:"byMonth"`
	ByProperty   []PropertyBucket `json:"byProperty"`
}

type CreateFinancialReportRequest struct {
	PropertyGroupID string  `json:"propertyGroupId" binding:"required,uuid"`
	Month           int     `json:"month" binding:"required,min=1,max=12"`
	Year            int     `json:"year" binding:"required,min=2000,max=2100"`
	TotalExpenses   float64 `json:"totalExpenses" binding:"min=0"`
}

type PreviewFinancialReportQuery struct {
	PropertyGroupID string  `form:"propertyGroupId" binding:"required,uuid"`
	Month           int     `form:"month" binding:"required,min=1,max=12"`
	Year            int     `form:"year" binding:"required,min=2000,max=2100"`
	TotalExpenses   float64 `form:"totalExpenses" binding:"min=0"`
}

type ListFinancialReportsQuery struct {
	PropertyGroupID string `form:"propertyGroupId" binding:"omitempty,uuid"`
	Year            int    `form:"year"`
}

type FinancialReportResponse struct {
	ID                string  `json:"id,omitempty"`
	CompanyID         string  `json:"companyId"`
	PropertyGroupID   string  `json:"propertyGroupId"`
	PropertyGroupName string  `json:"propertyGroupName,omitempty"`
	Month             int     `json:"month"`
	Year              int     `json:"year"`
	RentalIncome      float64 `json:"rentalIncome"`
	TotalExpenses     float64 `json:"totalExpenses"`
	NetIncome         float64 `json:"netIncome"`
	CompanyShare      float64 `json:"companyShare"`
	OwnerShare        float64 `json:"ownerShare"`
	BookingCount      int     `json:"bookingCount"`
	DateGenerated     string  `json:"dateGenerated"`
	CreatedBy         string  `json:"createdBy,omitempty"`
}
