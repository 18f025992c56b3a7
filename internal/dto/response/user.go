package response

import (
	"time"

	"nocturne/internal/data/entity"
)

type UserResponse struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Phone         string             `json:"phone"`
	Instagram     string             `json:"instagram,omitempty"`
	IsAdmin       bool               `json:"is_admin"`
	LoyaltyTier   entity.LoyaltyTier `json:"loyalty_tier"`
	LoyaltyPoints int                `json:"loyalty_points"`
	CreatedAt     time.Time          `json:"created_at"`
}

func UserToResponse(u *entity.UserProfile) UserResponse {
	return UserResponse{
		ID:            u.ID.String(),
		Name:          u.Name,
		Phone:         u.Phone,
		Instagram:     u.Instagram,
		IsAdmin:       u.IsAdmin,
		LoyaltyTier:   u.LoyaltyTier,
		LoyaltyPoints: u.LoyaltyPoints,
		CreatedAt:     u.CreatedAt,
	}
}
