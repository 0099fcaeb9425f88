package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"item-catalog/internal/data/entity"
	"item-catalog/internal/data/repository"
	"item-catalog/internal/dto/request"
	"item-catalog/internal/dto/response"
	"item-catalog/pkg/utils"

	"go.uber.org/zap"
)

const bearerScheme = "Bearer "

// AuthService is the credential-to-identity boundary. Tokens are opaque lookup
// keys: IssueToken and ResolveToken are inverses for every known user, and
// resolution fails closed for anything else.
type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	IssueToken(userID string) string
	ResolveToken(ctx context.Context, authorizationHeader string) (*entity.User, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate input
	if errs := req.Validate(); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, &ValidationError{Errors: errs}
	}

	email := request.StringValue(req.Email)
	password := request.StringValue(req.Password)

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", err)
	}

	// 3. Unknown email and wrong password get the same generic answer
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	// 4. Plain equality check: credentials are stored unhashed in this system
	if subtle.ConstantTimeCompare([]byte(password), []byte(user.Password)) != 1 {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	return &response.LoginResponse{
		Token: s.IssueToken(user.ID),
		User:  response.UserToResponse(user),
	}, nil
}

// IssueToken is deterministic and has no side effects.
func (s *authService) IssueToken(userID string) string {
	return s.config.Auth.TokenPrefix + userID
}

func (s *authService) ResolveToken(ctx context.Context, authorizationHeader string) (*entity.User, error) {
	// 1. Require the Bearer scheme
	if !strings.HasPrefix(authorizationHeader, bearerScheme) {
		return nil, ErrMissingAuth
	}
	token := strings.TrimPrefix(authorizationHeader, bearerScheme)

	// 2. Strip the known prefix to recover the user ID
	if !strings.HasPrefix(token, s.config.Auth.TokenPrefix) {
		return nil, ErrInvalidToken
	}
	userID := strings.TrimPrefix(token, s.config.Auth.TokenPrefix)
	if userID == "" {
		return nil, ErrInvalidToken
	}

	// 3. Look up the user
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to resolve token", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}
