package request

type RegisterUserRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=60"`
	Phone     string `json:"phone" validate:"required,min=6,max=20"`
	Instagram string `json:"instagram" validate:"omitempty,max=30"`
}
