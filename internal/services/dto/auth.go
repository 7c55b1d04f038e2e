package dto

import "recruitment_backend/internal/models"

// RegisterRequest - форма регистрации соискателя или компании
type RegisterRequest struct {
	UserType string `form:"user_type" json:"user_type" validate:"required,is-user-type"`
	Email    string `form:"email" json:"email" validate:"required,email,max=120"`
	Password string `form:"password" json:"password" validate:"required"`
	Phone    string `form:"phone" json:"phone" validate:"required,max=20"`
	City     string `form:"city" json:"city" validate:"required,max=100"`

	// Поля соискателя
	FullName string `form:"full_name" json:"full_name,omitempty" validate:"required_if=UserType seeker,max=100"`

	// Поля компании
	CompanyName string `form:"company_name" json:"company_name,omitempty" validate:"required_if=UserType company,max=150"`
	Description string `form:"description" json:"description,omitempty"`
}

// LoginRequest - единая форма входа; роль выбирается полем user_type
type LoginRequest struct {
	UserType string `form:"user_type" json:"user_type" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// RegisterResponse - созданная учетная запись
type RegisterResponse struct {
	ID       uint        `json:"id"`
	Role     models.Role `json:"role"`
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Redirect string      `json:"redirect"`
}
