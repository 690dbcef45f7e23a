// Package tenant holds the gorm scopes every repository applies so a query
// never reads across companies or, for property-bound callers, across
// property groups.
package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// PropertyScope restricts a query to one property group. An empty id leaves
// the query company-wide.
func PropertyScope(propertyGroupID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if propertyGroupID == "" {
			return db
		}
		return db.Where("property_group_id = ?", propertyGroupID)
	}
}
