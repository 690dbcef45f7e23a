package task

import (
	"strings"

	"aparthotel/internal/rbac"
	taskerrors "aparthotel/internal/task/errors"
)

// ResolveCleaningType picks the cleaning type recorded on completion.
// Maintenance tasks never carry one. For cleaning tasks an empty request
// falls back to fallback; an empty fallback makes the selection mandatory.
func ResolveCleaningType(taskType, requested, fallback string) (*string, error) {
	if taskType != TypeCleaning {
		return nil, nil
	}

	v := strings.ToLower(strings.TrimSpace(requested))
	if v == "" {
		v = fallback
	}

	switch v {
	case "":
		return nil, taskerrors.ErrCleaningTypeRequired
	case CleaningRegular, CleaningDeep:
		return &v, nil
	default:
		return nil, taskerrors.ErrInvalidCleaningType
	}
}

// CanBeAssigned reports whether a user with role may hold tasks.
func CanBeAssigned(role string) bool {
	switch rbac.Role(role) {
	case rbac.RoleHousekeeping, rbac.RoleManager:
		return true
	}
	return false
}
