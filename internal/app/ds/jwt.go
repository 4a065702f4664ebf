package ds

import (
	"github.com/golang-jwt/jwt/v4"
)

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID         int64  `json:"user_id"`
	Username       string `json:"username"`
	IsStaff        bool   `json:"is_staff"`
	IsManager      bool   `json:"is_manager"`
	IsDeliveryCrew bool   `json:"is_delivery_crew"`
}
