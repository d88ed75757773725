package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	SessionKey    = "sessionId"
	maxSessionLen = 64
)

// SessionMiddleware đọc sessionId từ header (hoặc query với websocket),
// tạo mới nếu chưa có hoặc không hợp lệ, rồi gán vào context
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader(SessionHeader)
		if sessionId == "" {
			sessionId = c.Query(SessionKey)
		}
		if !validSessionID(sessionId) {
			sessionId = uuid.NewString()
		}

		c.Set(SessionKey, sessionId)
		c.Writer.Header().Set(SessionHeader, sessionId)

		c.Next()
	}
}

// GetSessionID lấy sessionId đã được SessionMiddleware gán
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}

func validSessionID(id string) bool {
	if id == "" || len(id) > maxSessionLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
