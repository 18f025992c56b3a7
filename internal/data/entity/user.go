package entity

import (
	"time"

	"github.com/google/uuid"
)

type LoyaltyTier string

const (
	TierSilver   LoyaltyTier = "SILVER"
	TierGold     LoyaltyTier = "GOLD"
	TierPlatinum LoyaltyTier = "PLATINUM"
	TierBlack    LoyaltyTier = "BLACK"
)

type UserProfile struct {
	ID            uuid.UUID
	Name          string
	Phone         string
	Instagram     string
	IsAdmin       bool
	LoyaltyTier   LoyaltyTier
	LoyaltyPoints int
	CreatedAt     time.Time
}
