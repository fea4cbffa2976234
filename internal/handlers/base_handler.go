package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"stagelink_backend/internal/authz"
	"stagelink_backend/internal/middleware"
	"stagelink_backend/internal/validator"
	"stagelink_backend/pkg/apperrors"
	"stagelink_backend/pkg/contextkeys"
)

// BaseHandler carries the pieces every handler needs: request validation,
// database access and error rendering. Domain handlers embed it.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidateJSON binds the JSON body into dst and runs struct
// validation. On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Request body is not valid JSON"))
		return false
	}

	if err := h.validator.Validate(dst); err != nil {
		var ve *validator.ValidationError
		if errors.As(err, &ve) {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// GetDB returns the request-scoped database handle injected by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, _ := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)
	return db
}

// RequireCaller returns the authenticated caller or writes a 401.
func (h *BaseHandler) RequireCaller(c *gin.Context) (authz.Caller, bool) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return authz.Caller{}, false
	}
	return caller, true
}

// ParseIDParam parses a positive integer path parameter or writes a 400.
func (h *BaseHandler) ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		apperrors.HandleError(c, apperrors.NewValidationError(name+" must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}

// HandleServiceError renders a service error, mapping anything that is not
// an AppError to a 500.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}
