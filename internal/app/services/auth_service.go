package services

import (
	"context"
	"fmt"

	"github.com/mertcan/coursehub/internal/app/models"
	"github.com/mertcan/coursehub/internal/app/models/dto"
	"github.com/mertcan/coursehub/internal/pkg/apperrors"
	"github.com/mertcan/coursehub/internal/pkg/auth"
	"github.com/mertcan/coursehub/internal/pkg/logger"
)

// AuthService handles registration, login and token refresh.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID int64) error
	GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

type authServiceImpl struct {
	userRepo   UserStore
	tokenRepo  TokenStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo UserStore, tokenRepo TokenStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
	}
}

// Register creates a new active account with a hashed password.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.Role(req.Role),
		IsActive:  true,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	logger.Info().Int64("userID", id).Str("role", req.Role).Msg("User registered")
	resp := newUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a token pair. The refresh token is
// persisted so it can be revoked or rotated.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrPermissionDenied
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login")
	}

	return &dto.LoginResponse{
		User:  newUserResponse(user),
		Token: *tokens,
	}, nil
}

// RefreshToken rotates a valid refresh token into a fresh pair.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokenRepo.Lookup(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrPermissionDenied
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the user's stored refresh token. The access token stays
// valid until it expires; only the refresh path is cut off.
func (s *authServiceImpl) Logout(ctx context.Context, userID int64) error {
	if err := s.tokenRepo.Revoke(ctx, userID); err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	logger.Info().Int64("userID", userID).Msg("User logged out")
	return nil
}

// GetProfile returns the public profile of the given user.
func (s *authServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := newUserResponse(user)
	return &resp, nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}
	if err := s.tokenRepo.Store(ctx, user.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("error storing refresh token: %w", err)
	}
	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
	}, nil
}

func newUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
	}
}
