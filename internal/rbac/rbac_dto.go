package rbac

type EnforceRequest struct {
	Role     Role   `json:"role"`
	Resource string `json:"resource" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

type CapabilitiesResponse struct {
	Role         Role     `json:"role"`
	Capabilities []string `json:"capabilities"`
}
