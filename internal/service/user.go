package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"artzone/internal/model"
	"artzone/internal/repository"
)

// UserService implements signup, login and profile retrieval.
type UserService struct {
	userRepo     repository.UserRepository
	cartRepo     repository.CartRepository
	favoriteRepo repository.FavoriteRepository
	auth         *AuthService
}

func NewUserService(
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	favoriteRepo repository.FavoriteRepository,
	auth *AuthService,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		cartRepo:     cartRepo,
		favoriteRepo: favoriteRepo,
		auth:         auth,
	}
}

// Signup creates an account and returns a signed token for it. Emails are
// normalized to lower case, so the uniqueness check is case-insensitive.
func (s *UserService) Signup(ctx context.Context, req *model.SignupRequest) (*model.AuthResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, model.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		PasswordHashed: string(hashed),
		Role:           role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := s.auth.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &model.AuthResponse{Status: "success", Token: token, User: user.Public()}, nil
}

// Login verifies credentials and returns a signed token. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHashed), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	return &model.AuthResponse{Status: "success", Token: token, User: user.Public()}, nil
}

// GetProfile returns the user with their favorites and cart resolved
// against the current catalog.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*model.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	favorites, err := s.favoriteRepo.GetArtworks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching favorites: %w", err)
	}

	cart, err := s.cartRepo.GetItems(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetching cart: %w", err)
	}

	return &model.Profile{
		PublicUser: user.Public(),
		Favorites:  favorites,
		Cart:       cart,
	}, nil
}
