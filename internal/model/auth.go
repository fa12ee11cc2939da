package model

import "github.com/golang-jwt/jwt/v5"

// DashboardClaims are JWT claims for clinic dashboard sessions
type DashboardClaims struct {
	DashboardID string `json:"dashboardId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for dashboard login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token       string `json:"token"`
	DashboardID string `json:"dashboardId"`
}
