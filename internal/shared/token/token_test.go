package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIssueAndParse(t *testing.T) {
	raw, err := Issue("secret", Claims{
		ID:              "user-1",
		Role:            "frontoffice",
		CompanyID:       "company-1",
		PropertyGroupID: "pg-1",
	}, time.Now(), time.Hour)
	assert.NoError(t, err)

	claims, err := Parse("secret", raw)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.ID)
	assert.Equal(t, "frontoffice", claims.Role)
	assert.Equal(t, "company-1", claims.CompanyID)
	assert.Equal(t, "pg-1", claims.PropertyGroupID)
}

func TestParse_Errors(t *testing.T) {
	expired, err := Issue("secret", Claims{ID: "u", CompanyID: "c"}, time.Now().Add(-2*time.Hour), time.Hour)
	assert.NoError(t, err)

	_, err = Parse("secret", expired)
	assert.ErrorIs(t, err, ErrExpired)

	valid, _ := Issue("secret", Claims{ID: "u", CompanyID: "c"}, time.Now(), time.Hour)
	_, err = Parse("other-secret", valid)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse("secret", "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalid)

	noCompany, _ := Issue("secret", Claims{ID: "u"}, time.Now(), time.Hour)
	_, err = Parse("secret", noCompany)
	assert.ErrorIs(t, err, ErrInvalid)
}
