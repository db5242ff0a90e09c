package dto

type RegisterRequestDTO struct {
	Login           string `json:"login" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required,min=8"`
	Role            string `json:"role" validate:"required,oneof=operator affiliate" example:"affiliate"`
	ContactEmail    string `json:"contact_email,omitempty" example:"partner@example.com"`
	ContactPhone    string `json:"contact_phone,omitempty" example:"+35799123456"`
	ContactTelegram string `json:"contact_telegram,omitempty" example:"@partner"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
