package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/EatRateLove/eatratelove_backend/internal/config"
	"github.com/EatRateLove/eatratelove_backend/internal/models"
	"github.com/EatRateLove/eatratelove_backend/internal/repository"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxUsernameLength = 64
	minPasswordLength = 6
)

// AuthService 認証に関するサービスインターフェース
type AuthService interface {
	Register(username, email, password string) (*models.User, string, error)
	Login(username, password string) (*models.User, string, error)
	ValidateToken(tokenString string) (*Claims, error)
	GetUserFromToken(tokenString string) (*models.User, error)
}

// authService AuthServiceの実装
type authService struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthService AuthServiceを作成
func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   cfg,
	}
}

// Claims JWTのペイロード
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.StandardClaims
}

// Register ユーザー登録
func (s *authService) Register(username, email, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	// 入力のバリデーション
	if username == "" {
		return nil, "", newValidationError("username", "ユーザー名は必須です")
	}
	if len(username) > maxUsernameLength {
		return nil, "", newValidationError("username", "ユーザー名が長すぎます")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", newValidationError("email", "メールアドレスの形式が正しくありません")
	}
	if len(password) < minPasswordLength {
		return nil, "", newValidationError("password", "パスワードは6文字以上にしてください")
	}

	// ユーザー名とメールアドレスの重複を確認
	if existing, err := s.userRepo.FindByUsername(username); err == nil && existing != nil {
		return nil, "", ErrConflict
	} else if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, "", err
	}
	if existing, err := s.userRepo.FindByEmail(email); err == nil && existing != nil {
		return nil, "", ErrConflict
	} else if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, "", err
	}

	// パスワードをハッシュ化
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	// 同時登録による一意制約違反もConflictとして返す
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", mapRepoError(err)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login ログイン
func (s *authService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, "", ErrUnauthorized
		}
		return nil, "", err
	}

	// パスワードを検証
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrUnauthorized
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// ValidateToken トークンを検証
func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 署名方法を確認
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}

	return claims, nil
}

// GetUserFromToken トークンからユーザーを取得
func (s *authService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}

// generateToken JWTトークンを生成
func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: now.Add(s.config.Auth.TokenExpiry).Unix(),
			IssuedAt:  now.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Auth.JWTSecret))
}
