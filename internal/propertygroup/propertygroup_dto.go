package propertygroup

import (
	"math"
	"strings"

	propertygrouperrors "aparthotel/internal/propertygroup/errors"
)

type PropertyGroupRequest struct {
	Name         string   `json:"name" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Address      string   `json:"address"`
	Type         string   `json:"type" binding:"required,oneof=hotel apartment"`
	CompanyShare *float64 `json:"companyShare" binding:"required,min=0,max=100"`
	OwnerShare   *float64 `json:"ownerShare" binding:"required,min=0,max=100"`
}

// Validate checks the cross-field rules binding tags cannot express.
func (r PropertyGroupRequest) Validate() error {
	if r.Type == TypeHotel && strings.TrimSpace(r.Address) == "" {
		return propertygrouperrors.ErrAddressRequired
	}
	if r.CompanyShare == nil || r.OwnerShare == nil ||
		math.Abs(*r.CompanyShare+*r.OwnerShare-100) > 0.001 {
		return propertygrouperrors.ErrSharesMustSum100
	}
	return nil
}

type PropertyGroupResponse struct {
	ID           string  `json:"id"`
	CompanyID    string  `json:"companyId"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Address      string  `json:"address"`
	Type         string  `json:"type"`
	CompanyShare float64 `json:"companyShare"`
	OwnerShare   float64 `json:"ownerShare"`
	CreatedAt    string  `json:"createdAt"`
}
