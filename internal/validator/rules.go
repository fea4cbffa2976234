package validator

import (
	"github.com/go-playground/validator/v10"

	"stagelink_backend/internal/models"
)

// registerCustomRules wires domain-specific tags.
func registerCustomRules(v *validator.Validate) {
	// "role" accepts any role string NormalizeRole understands, including
	// the legacy "venue" alias.
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, ok := models.NormalizeRole(fl.Field().String())
		return ok
	})
}
