package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"

	"chirp/internal/config"
	"chirp/internal/mailer"
	"chirp/internal/models"
	"chirp/internal/repository"
)

type AuthService interface {
	Signup(ctx context.Context, username, password, email string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	GetAccount(ctx context.Context, userID string) (*models.Account, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type authService struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	mail      mailer.Mailer
	cfg       *config.Config
}

func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, mail mailer.Mailer, cfg *config.Config) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mail:      mail,
		cfg:       cfg,
	}
}

// Signup создает пользователя; формат полей уже проверен хендлером
func (s *authService) Signup(ctx context.Context, username, password, email string) (*models.User, error) {
	taken, err := s.userRepo.UsernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.userRepo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	user, err := s.userRepo.CreateUser(ctx, username, email, password)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return user, nil
}

// Login не различает неизвестное имя и неверный пароль: оба случая дают
// один и тот же ErrInvalidCredentials
func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.VerifyPassword(ctx, username, password)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrWrongPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return user, nil
}

func (s *authService) GetAccount(ctx context.Context, userID string) (*models.Account, error) {
	account, err := s.userRepo.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return account, nil
}

// ForgotPassword всегда завершается одинаково для вызывающего: токен
// создается и письмо уходит только когда email известен
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// не раскрываем, существует ли аккаунт
			return nil
		}
		return err
	}

	token, err := s.tokenRepo.Create(ctx, user.UserID, s.cfg.ResetTokenTTL)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendURL, url.QueryEscape(token.Token))

	if err := s.mail.SendPasswordReset(user.Email, resetURL); err != nil {
		log.Printf("Ошибка при отправке письма сброса пароля: %v", err)
		return err
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	resetToken, err := s.tokenRepo.FindValid(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, resetToken.UserID, newPassword); err != nil {
		return err
	}

	if err := s.tokenRepo.Invalidate(ctx, token); err != nil {
		return err
	}

	return nil
}
