package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/admissions-crm/internal/app/models/dto"
)

// BindJSON binds and validates the request body into obj. On failure it
// writes a 400 response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}

// ValidateRequest validates a request body against a fresh T and stores it
// under "validatedBody" for the handler
func ValidateRequest[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body T
		if !BindJSON(c, &body) {
			return
		}
		c.Set("validatedBody", &body)
		c.Next()
	}
}

// ValidatedBody returns the body stored by ValidateRequest
func ValidatedBody[T any](c *gin.Context) (*T, bool) {
	v, ok := c.Get("validatedBody")
	if !ok {
		return nil, false
	}
	body, ok := v.(*T)
	return body, ok
}
