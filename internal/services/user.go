package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"playerone/internal/domain"
)

const tokenType = "Bearer"

type userService struct {
	userRepo       domain.UserRepository
	hasher         domain.PasswordHasher
	tokenIssuer    domain.TokenIssuer
	tokenExpiry    time.Duration
	emailService   domain.EmailService
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
}

// NewUserService creates a UserService with the given repository and auth ports.
func NewUserService(userRepo domain.UserRepository,
	hasher domain.PasswordHasher,
	tokenIssuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	emailService domain.EmailService,
	logger *slog.Logger,
	timeout time.Duration,
	opts ...Option,
) domain.UserService {
	o := applyOptions(opts)
	return &userService{
		userRepo:       userRepo,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		tokenExpiry:    tokenExpiry,
		emailService:   emailService,
		logger:         logger,
		now:            o.now,
		contextTimeout: timeout,
	}
}

func (s *userService) SignUp(ctx context.Context, in domain.SignUpInput) (*domain.AuthResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(strings.ToLower(in.Email))
	phone := strings.TrimSpace(in.PhoneNumber)
	if username == "" || email == "" || phone == "" {
		return nil, invalid("username, email and phone number are required")
	}

	role := in.Role
	if role == "" {
		role = domain.RolePlayer
	}
	switch role {
	case domain.RolePlayer, domain.RoleOrganizer:
	case domain.RoleAdmin:
		return nil, forbidden("admin accounts cannot be created through signup")
	default:
		return nil, invalid("unknown role %q", role)
	}

	now := s.now()
	user := domain.NewUser(username, email, phone, role, now, now)
	if role == domain.RolePlayer {
		gameID := strings.TrimSpace(in.GameID)
		ign := strings.TrimSpace(in.InGameName)
		if gameID == "" || ign == "" {
			return nil, invalid("game id and in-game name are required for players")
		}
		user.GameID = &gameID
		user.InGameName = &ign
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, wrapErr("sign up", err)
	}
	hash, err := s.hasher.Hash(salt, in.Password)
	if err != nil {
		return nil, wrapErr("sign up", err)
	}
	user.Salt = salt
	user.PasswordHash = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, wrapErr("sign up", err)
	}

	result, err := s.authResult(user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user signed up", "user_id", user.ID, "username", user.Username, "role", user.Role)

	err = s.emailService.SendWelcome(context.WithoutCancel(ctx), &domain.WelcomeEmailData{
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		s.logger.Error("send welcome email", "user_id", user.ID, "error", err)
	}
	return result, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, wrapErr("login", err)
	}
	if !user.Enabled {
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.authResult(user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return result, nil
}

func (s *userService) authResult(user *domain.User) (*domain.AuthResult, error) {
	token, err := s.tokenIssuer.Issue(user.ID, user.Username, user.Role, s.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &domain.AuthResult{Token: token, TokenType: tokenType, User: user}, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapErr("get user", notFound("user", id, err))
	}
	return user, nil
}

func (s *userService) ResolvePrincipal(ctx context.Context, userID string) (domain.Principal, error) {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Principal{}, domain.ErrInvalidCredentials
		}
		return domain.Principal{}, err
	}
	if !user.Enabled {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}
	return domain.Principal{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}
