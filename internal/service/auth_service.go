package service

import (
	"errors"

	"github.com/infektyd/FoundationWriting/internal/config"
	"github.com/infektyd/FoundationWriting/internal/model"
	"github.com/infektyd/FoundationWriting/internal/repository"
	"github.com/infektyd/FoundationWriting/internal/util"
	"github.com/infektyd/FoundationWriting/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Users *repository.UserRepository
	Cfg   *config.Config
}

func NewAuthService(users *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{Users: users, Cfg: cfg}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a writer account with a bcrypt-hashed password.
func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	if _, err := s.Users.FindByEmail(input.Email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Role:     model.Writer,
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}

	logger.Log.Info("user registered", zap.Uint("user_id", user.ID), zap.String("email", user.Email))
	return user, nil
}

// Login verifies credentials and issues a signed token. Wrong email and
// wrong password return the same error.
func (s *AuthService) Login(input LoginInput) (string, *model.User, error) {
	user, err := s.Users.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, util.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.Disabled {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	if err := s.Users.UpdateLastLogin(user.ID); err != nil {
		logger.Log.Warn("last login update failed", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return token, user, nil
}
