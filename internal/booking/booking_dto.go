package booking

// Actor is the caller a booking operation runs for. An empty PropertyGroupID
// means the caller is not scoped to one property.
type Actor struct {
	UserID          string
	CompanyID       string
	PropertyGroupID string
}

type BookingRequest struct {
	GuestName  string `json:"guestName" binding:"required"`
	GuestEmail string `json:"guestEmail" binding:"required,email"`
	GuestID    string `json:"guestId"`
	GuestPhone string `json:"guestPhone"`
	NumGuests  int    `json:"numGuests" binding:"required,min=1"`
	UnitID     string `json:"unitId" binding:"required,uuid"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
	Notes      string `json:"notes"`
}

type AddNoteRequest struct {
	Content string `json:"content" binding:"required"`
}

type ListBookingsQuery struct {
	PropertyGroupID string `form:"propertyGroupId" binding:"omitempty,uuid"`
	From            string `form:"from"`
	To              string `form:"to"`
}

type GeneralBookingsQuery struct {
	CompanyID       string `form:"companyId"`
	PropertyGroupID string `form:"propertyGroupId" binding:"omitempty,uuid"`
	Day             int    `form:"day"`
	Month           int    `form:"month"`
	Year            int    `form:"year"`
}

type NoteResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedBy string `json:"createdBy,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type BookingResponse struct {
	ID              string         `json:"id"`
	ReferenceCode   string         `json:"referenceCode"`
	CompanyID       string         `json:"companyId"`
	PropertyGroupID string         `json:"propertyGroupId"`
	UnitID          string         `json:"unitId"`
	GuestName       string         `json:"guestName"`
	GuestEmail      string         `json:"guestEmail"`
	GuestID         string         `json:"guestId"`
	GuestPhone      string         `json:"guestPhone"`
	NumGuests       int            `json:"numGuests"`
	CheckIn         string         `json:"checkIn"`
	CheckOut        string         `json:"checkOut"`
	Nights          int            `json:"nights"`
	FullPrice       float64        `json:"fullPrice"`
	Notes           []NoteResponse `json:"notes"`
	CreatedBy       string         `json:"createdBy,omitempty"`
	CreatedAt       string         `json:"createdAt,omitempty"`
}

// GeneralBookingResponse is the public view; guest identity is left out.
type GeneralBookingResponse struct {
	ID              string  `json:"id"`
	PropertyGroupID string  `json:"propertyGroupId"`
	UnitID          string  `json:"unitId"`
	NumGuests       int     `json:"numGuests"`
	CheckIn         string  `json:"checkIn"`
	CheckOut        string  `json:"checkOut"`
	Nights          int     `json:"nights"`
	FullPrice       float64 `json:"fullPrice"`
}
