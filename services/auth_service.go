package services

import (
	"errors"
	"strings"
	"time"

	"github.com/nguyendat030805/FinalProjectMobile/entity"
	"github.com/nguyendat030805/FinalProjectMobile/repository"
	"github.com/nguyendat030805/FinalProjectMobile/utils"

	"golang.org/x/crypto/bcrypt"
)

var validRoles = map[string]bool{"admin": true, "user": true, "guest": true}

// AuthService handles signup, login and user administration.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register creates a user with a hashed password. A taken username is an
// error, not a crash; the uniqueness constraint is the source of truth.
func (s *AuthService) Register(username, password, role string) (*entity.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username is required")
	}
	if len(password) < 6 {
		return nil, errors.New("password must be at least 6 characters")
	}
	if role == "" {
		role = "user"
	}
	if !validRoles[role] {
		return nil, errors.New("invalid role")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, errors.New("username already taken")
	}
	return user, nil
}

// Login checks credentials and issues a JWT carrying {id, username, role}.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	user, err := s.userRepo.FindByCredentials(strings.TrimSpace(username), password)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// Users lists all accounts, optionally filtered by a username/role keyword.
func (s *AuthService) Users(keyword string) ([]entity.User, error) {
	if keyword != "" {
		return s.userRepo.Search(keyword)
	}
	return s.userRepo.Fetch()
}

// UpdateUser edits username/role and, when non-empty, rehashes the password.
func (s *AuthService) UpdateUser(id uint, username, password, role string) (*entity.User, error) {
	updates := map[string]any{}
	if u := strings.TrimSpace(username); u != "" {
		updates["username"] = u
	}
	if role != "" {
		if !validRoles[role] {
			return nil, errors.New("invalid role")
		}
		updates["role"] = role
	}
	if password != "" {
		if len(password) < 6 {
			return nil, errors.New("password must be at least 6 characters")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, errors.New("hash password failed")
		}
		updates["password"] = string(hashed)
	}
	if len(updates) > 0 {
		if err := s.userRepo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.userRepo.FindByID(id)
}

func (s *AuthService) DeleteUser(id uint) error {
	return s.userRepo.Delete(id)
}
