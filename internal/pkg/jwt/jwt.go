package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"member-query/internal/pkg/config"
	"member-query/pkg/constants"
	pkgErrors "member-query/pkg/errors"
)

// OperatorClaims 批量操作调用方的 Claims
type OperatorClaims struct {
	Type string `json:"type"` // access
	jwt.RegisteredClaims
}

// GenerateAccessToken 生成访问Token，subject 为调用方标识
func GenerateAccessToken(cfg *config.JWTConfig, subject string) (string, error) {
	now := time.Now()
	claims := OperatorClaims{
		Type: constants.JWTTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.AccessTokenExpire) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken 解析Token
func ParseToken(cfg *config.JWTConfig, tokenString string) (*OperatorClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OperatorClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, pkgErrors.ErrTokenExpired
		}
		return nil, pkgErrors.Wrap(pkgErrors.CodeUnauthorized, "解析Token失败", err)
	}

	if claims, ok := token.Claims.(*OperatorClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, pkgErrors.ErrInvalidToken
}

// ValidateToken 验证Token有效性，只接受访问Token
func ValidateToken(cfg *config.JWTConfig, tokenString string) (*OperatorClaims, error) {
	claims, err := ParseToken(cfg, tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Type != constants.JWTTypeAccess {
		return nil, pkgErrors.ErrInvalidToken
	}

	return claims, nil
}
