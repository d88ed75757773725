package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"hotelcart/middleware"
	"hotelcart/response"
	"hotelcart/services/logger"
	"hotelcart/services/notification"
)

// NotificationController nâng cấp kết nối websocket và gắn nó với phiên giỏ hàng
// để CartService gửi thông báo tải danh sách phòng cho đúng phiên.
type NotificationController struct {
	logger logger.Logger
	melody *melody.Melody
}

type NotificationControllerOptions struct {
	Logger logger.Logger
}

func NewNotificationController(opts NotificationControllerOptions, m *melody.Melody) *NotificationController {
	ctl := &NotificationController{
		logger: opts.Logger,
		melody: m,
	}
	m.HandleConnect(func(s *melody.Session) {
		id, _ := s.Get(notification.SessionKey)
		ctl.logger.Debug("Websocket kết nối cho phiên %v", id)
	})
	m.HandleDisconnect(func(s *melody.Session) {
		id, _ := s.Get(notification.SessionKey)
		ctl.logger.Debug("Websocket ngắt kết nối cho phiên %v", id)
	})
	return ctl
}

// Connect xử lý GET /ws
func (ctl *NotificationController) Connect(c *gin.Context) {
	keys := map[string]interface{}{
		notification.SessionKey: middleware.GetSessionID(c),
	}
	if err := ctl.melody.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		ctl.logger.Error("Không nâng cấp được websocket: %v", err)
		if !c.Writer.Written() {
			response.BadRequest(c, "Không thể mở websocket")
		}
	}
}
