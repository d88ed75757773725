package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	apperrors "hotelcart/errors"
)

// HandoffSigner ký chuỗi tham số thanh toán bằng HS256 để trang thanh toán
// kiểm tra được dữ liệu giỏ không bị sửa trên đường đi.
type HandoffSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewHandoffSigner(secret string, ttl time.Duration) *HandoffSigner {
	return &HandoffSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Sign tạo token chứa claim params và exp
func (s *HandoffSigner) Sign(params string) (string, time.Time, error) {
	expiresAt := s.now().Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"params": params,
		"iat":    s.now().Unix(),
		"exp":    expiresAt.Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign handoff token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify kiểm tra chữ ký, hạn dùng và trả về chuỗi params
func (s *HandoffSigner) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Token thanh toán không hợp lệ", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Không thể parse token", nil)
	}
	params, ok := claims["params"].(string)
	if !ok {
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "Không tìm thấy params trong token", nil)
	}
	return params, nil
}
