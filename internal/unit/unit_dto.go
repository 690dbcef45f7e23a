package unit

type CreateUnitRequest struct {
	UnitNumber      string  `json:"unitNumber" binding:"required"`
	Floor           int     `json:"floor" binding:"min=0"`
	Beds            int     `json:"beds" binding:"required,min=1"`
	PricePerNight   float64 `json:"pricePerNight" binding:"required,gt=0"`
	PropertyGroupID string  `json:"propertyGroupId" binding:"required,uuid"`
}

type UpdateUnitRequest struct {
	UnitNumber    string  `json:"unitNumber" binding:"required"`
	Floor         int     `json:"floor" binding:"min=0"`
	Beds          int     `json:"beds" binding:"required,min=1"`
	PricePerNight float64 `json:"pricePerNight" binding:"required,gt=0"`
}

type UnitResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"companyId"`
	PropertyGroupID string  `json:"propertyGroupId"`
	UnitNumber      string  `json:"unitNumber"`
	Floor           int     `json:"floor"`
	Beds            int     `json:"beds"`
	PricePerNight   float64 `json:"pricePerNight"`
	LastCleaned     *string `json:"lastCleaned"`
	LastMaintenance *string `json:"lastMaintenance"`
	CreatedAt       string  `json:"createdAt,omitempty"`
	UpdatedAt       string  `json:"updatedAt,omitempty"`
}
