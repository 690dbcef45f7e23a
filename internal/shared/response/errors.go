package response

import (
	"errors"
	"net/http"

	"aparthotel/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FromError writes err using its AppError status and code.
func FromError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// BindError writes a 400 for a failed ShouldBind call. Validator failures get a
// "<Field> is required|invalid" message.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		mapped := apperror.MapValidationError(verrs)
		Error(c, http.StatusBadRequest, "VALIDATION_ERROR", mapped.Error(), err.Error())
		return
	}
	Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
}
