package service

import (
	"database/sql"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"amur-backend/internal/domain"
	"amur-backend/internal/i18n"
)

type AuthService struct {
	users  UserRepository
	secret []byte
	ttl    time.Duration
}

func NewAuthService(users UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{users: users, secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	Role   string `json:"role"`
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

func (s *AuthService) Register(req domain.RegisterRequest) (*domain.User, error) {
	if _, err := s.users.GetUserByNumber(req.Number); err == nil {
		return nil, ErrDuplicateUser
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	language := req.Language
	if !i18n.Supported(language) {
		language = i18n.DefaultLanguage
	}

	user := &domain.User{
		ID:        newID("user"),
		Number:    req.Number,
		Password:  string(hash),
		Role:      "user",
		FullName:  req.FullName,
		Email:     req.Email,
		TgID:      req.TgID,
		Language:  language,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := s.users.InsertUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.users.GetUserByNumber(req.Number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}
	return &domain.LoginResponse{
		Token:    token,
		Role:     user.Role,
		UserID:   user.ID,
		Language: user.Language,
	}, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role:   user.Role,
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Number,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseToken validates a bearer token and extracts the caller's identity.
func (s *AuthService) ParseToken(tokenString string) (*domain.Claims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &domain.Claims{
		Number: claims.Subject,
		Role:   claims.Role,
		UserID: claims.UserID,
	}, nil
}

func (s *AuthService) Profile(number string) (*domain.User, error) {
	user, err := s.users.GetUserByNumber(number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) SetLanguage(userID, language string) error {
	if !i18n.Supported(language) {
		return ErrUnsupportedLanguage
	}
	return s.users.UpdateUserLanguage(userID, language)
}
