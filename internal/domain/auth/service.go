package auth

import "context"

// AuthService defines business logic for authentication operations
type AuthService interface {
	// Register creates a new user account with the default cashier role
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)

	// Login authenticates with email and password
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// LoginWithGoogle authenticates with a verified Google profile,
	// creating the account on first login
	LoginWithGoogle(ctx context.Context, googleID string, email string, name string, avatarURL string) (TokenResponse, error)

	// Refresh exchanges a refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error

	// Me returns the authenticated user's profile
	Me(ctx context.Context, userID string) (UserResponse, error)
}
