package dto

import "gorm.io/datatypes"

type UpdateUserRequest struct {
	Email     *string         `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string         `json:"password,omitempty" validate:"omitempty,min=8"`
	Role      *string         `json:"role,omitempty" validate:"omitempty,role"`
	Name      *string         `json:"name,omitempty" validate:"omitempty,max=25"`
	City      *string         `json:"city,omitempty" validate:"omitempty,max=50"`
	Avatar    *string         `json:"avatarUrl,omitempty"`
	Capacity  *int            `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	Genre     *string         `json:"genre,omitempty"`
	Slogan    *string         `json:"slogan,omitempty"`
	Bio       *string         `json:"bio,omitempty"`
	Musicians *datatypes.JSON `json:"musicians,omitempty"`
}
