package user

type CreateUserRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	Role            string `json:"role" binding:"required,oneof=manager frontoffice housekeeping owner"`
	PropertyGroupID string `json:"propertyGroupId" binding:"omitempty,uuid"`
}

type UpdateUserRequest struct {
	Name            string `json:"name" binding:"required"`
	Role            string `json:"role" binding:"required,oneof=manager frontoffice housekeeping owner"`
	PropertyGroupID string `json:"propertyGroupId" binding:"omitempty,uuid"`
}

type ListUsersFilter struct {
	Role            string `form:"role" binding:"omitempty,oneof=manager frontoffice housekeeping owner"`
	PropertyGroupID string `form:"propertyGroupId" binding:"omitempty,uuid"`
}

type UserResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"companyId"`
	PropertyGroupID *string `json:"propertyGroupId"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Role            string  `json:"role"`
	FirstLogin      bool    `json:"firstLogin"`
	CreatedAt       string  `json:"createdAt"`
}
