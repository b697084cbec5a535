package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken 令牌无效或已过期
	ErrInvalidToken = errors.New("无效的令牌")
	// ErrRevokedToken 令牌已登出
	ErrRevokedToken = errors.New("令牌已失效")
)

// Claims 管理员令牌声明
type Claims struct {
	AdminID  uint   `json:"admin_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Token 签发结果
type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int       `json:"expires_in"`
	ExpiresAt   time.Time `json:"-"`
}

// TokenManager 负责签发、解析和撤销管理员令牌
type TokenManager struct {
	secret    []byte
	issuer    string
	ttl       time.Duration
	blacklist *TokenBlacklist
	now       func() time.Time
}

// NewTokenManager 创建令牌管理器
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret:    []byte(secret),
		issuer:    issuer,
		ttl:       ttl,
		blacklist: NewTokenBlacklist(),
		now:       time.Now,
	}
}

// Generate 为管理员签发访问令牌
func (m *TokenManager) Generate(adminID uint, username string) (*Token, error) {
	now := m.now()
	expireAt := now.Add(m.ttl)
	claims := Claims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			Subject:   fmt.Sprint(adminID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expireAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("签发令牌失败: %w", err)
	}
	return &Token{
		AccessToken: signed,
		ExpiresIn:   int(m.ttl.Seconds()),
		ExpiresAt:   expireAt,
	}, nil
}

// Parse 解析并校验令牌，已撤销的令牌返回 ErrRevokedToken
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if m.blacklist.Contains(claims.ID) {
		return nil, ErrRevokedToken
	}
	return claims, nil
}

// Revoke 撤销令牌直到其自然过期
func (m *TokenManager) Revoke(claims *Claims) {
	if claims == nil || claims.ExpiresAt == nil {
		return
	}
	m.blacklist.Add(claims.ID, claims.ExpiresAt.Time)
}
