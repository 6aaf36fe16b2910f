package models

// Request модели

// LoginRequest запрос на вход
type LoginRequest struct {
	UserID   int64  `json:"userId"`
	Password string `json:"password"`
	UserType string `json:"userType"` // doctor | patient | admin
}

// SignUpRequest запрос на регистрацию учетной записи
type SignUpRequest struct {
	Password string `json:"password"`
	UserType string `json:"userType"`
}

// ChangePasswordRequest запрос на смену пароля
type ChangePasswordRequest struct {
	UserID      int64  `json:"userId"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// Response модели

// LoginResponse ответ на успешный вход
type LoginResponse struct {
	UserID   int64  `json:"userId"`
	UserType string `json:"userType"`
}

// SignUpResponse ответ с выданным ID учетной записи
type SignUpResponse struct {
	UserID   int64  `json:"userId"`
	UserType string `json:"userType"`
}
