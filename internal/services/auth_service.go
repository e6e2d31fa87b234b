package services

import (
	"fmt"
	"log"
	"time"

	"katalog/internal/apperror"
	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// invalidCredentials is returned for both an unknown email and a wrong
// password so a caller cannot probe which accounts exist.
const invalidCredentials = "Invalid credentials"

// EmailPublisher pushes email tasks onto the background queue.
// *rabbitmq.Client satisfies it.
type EmailPublisher interface {
	PublishEmailTask(task rabbitmq.EmailTask) error
}

// AuthService handles business logic for registration and authentication.
type AuthService struct {
	userRepo   repositories.UserRepository
	mailQueue  EmailPublisher
	jwtSecret  []byte
	tokenDurat time.Duration
}

// NewAuthService creates a new AuthService. mailQueue may be nil, in which
// case welcome emails are skipped.
func NewAuthService(userRepo repositories.UserRepository, mailQueue EmailPublisher, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		mailQueue:  mailQueue,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterUser hashes the password and persists a new user. Taken usernames
// and emails come back as conflicts. On success a welcome email task is
// queued best-effort.
func (s *AuthService) RegisterUser(username, email, password string) (*models.User, error) {
	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, apperror.NewConflict(fmt.Sprintf("username '%s' already taken", username), nil)
	} else if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, apperror.NewConflict(fmt.Sprintf("email '%s' already registered", email), nil)
	} else if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		// A concurrent registration can still trip the unique index.
		if column, ok := apperror.AsUniqueViolation(err); ok {
			return nil, apperror.NewConflict(fmt.Sprintf("%s already taken", column), err)
		}
		return nil, err
	}

	if s.mailQueue != nil {
		task := rabbitmq.EmailTask{
			To:      user.Email,
			Subject: "Welcome",
			Message: fmt.Sprintf("Hi %s, thanks for registering!", user.Username),
		}
		if err := s.mailQueue.PublishEmailTask(task); err != nil {
			log.Printf("Warning: failed to queue welcome email for %s: %v", user.Email, err)
		}
	}

	return user, nil
}

// LoginUser authenticates by email and password and returns a signed JWT
// over the public profile.
func (s *AuthService) LoginUser(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", apperror.NewAuth(invalidCredentials, nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", apperror.NewAuth(invalidCredentials, nil)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      time.Now().Add(s.tokenDurat).Unix(),
		"iat":      time.Now().Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", apperror.NewInternal("failed to generate token", err)
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the claims if
// valid.
func (s *AuthService) ValidateToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return nil, apperror.NewAuth("invalid token", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperror.NewAuth("invalid token", nil)
}
