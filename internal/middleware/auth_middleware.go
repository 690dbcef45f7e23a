package middleware

import (
	"errors"
	"strings"

	autherrors "aparthotel/internal/auth/errors"
	"aparthotel/internal/shared/apperror"
	"aparthotel/internal/shared/contextutil"
	"aparthotel/internal/shared/response"
	"aparthotel/internal/shared/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware requires "Authorization: Bearer <jwt>" and exposes the claims
// as user_id, role, company_id and property_group_id.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		raw = strings.TrimSpace(raw)
		if !found || raw == "" {
			abortWith(c, autherrors.ErrTokenMissing)
			return
		}

		claims, err := token.Parse(secret, raw)
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				abortWith(c, autherrors.ErrTokenExpired)
				return
			}
			abortWith(c, autherrors.ErrInvalidToken)
			return
		}

		setPrincipal(c, Principal{
			UserID:          claims.ID,
			Role:            claims.Role,
			CompanyID:       claims.CompanyID,
			PropertyGroupID: claims.PropertyGroupID,
		})

		ctx := contextutil.WithUserID(c.Request.Context(), claims.ID)
		if l := contextutil.GetLogger(ctx, nil); l != nil {
			ctx = contextutil.WithLogger(ctx, l.With(zap.String("user_id", claims.ID)))
		}
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func abortWith(c *gin.Context, appErr *apperror.AppError) {
	response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
	c.Abort()
}
