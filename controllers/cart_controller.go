package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelcart/dto"
	apperrors "hotelcart/errors"
	"hotelcart/middleware"
	"hotelcart/response"
	"hotelcart/services"
	"hotelcart/services/booking"
	"hotelcart/services/logger"
	"hotelcart/utils"
	"hotelcart/validator"
)

type CartController struct {
	cart   *services.CartService
	logger logger.Logger
}

type CartControllerOptions struct {
	Cart   *services.CartService
	Logger logger.Logger
}

func NewCartController(opts CartControllerOptions) *CartController {
	return &CartController{
		cart:   opts.Cart,
		logger: opts.Logger,
	}
}

// OpenSession mở giỏ cho khách sạn; đổi khách sạn thì giỏ quay về chưa chọn ngày
func (ctl *CartController) OpenSession(c *gin.Context) {
	var req dto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.AppError(c, err)
		return
	}

	sessionID := middleware.GetSessionID(c)
	session, err := ctl.cart.Open(c.Request.Context(), sessionID, req.HotelID, req.HotelName)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	response.Success(c, dto.OpenSessionResponse{
		SessionID: sessionID,
		Cart:      toCartResponse(session),
	})
}

// SelectStay đổi ngày lưu trú: xóa giỏ và bắt đầu tải danh sách phòng ở nền
func (ctl *CartController) SelectStay(c *gin.Context) {
	var req dto.SelectStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.AppError(c, err)
		return
	}
	stay, err := validator.ValidateStay(req.CheckIn, req.CheckOut)
	if err != nil {
		response.AppError(c, err)
		return
	}

	session, ticket, err := ctl.cart.SelectStay(c.Request.Context(), middleware.GetSessionID(c), stay)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	ctl.cart.StartLoad(ticket)
	response.Accepted(c, toCartResponse(session))
}

// GetCart trả về trạng thái giỏ, ô chọn số lượng và tổng tiền
func (ctl *CartController) GetCart(c *gin.Context) {
	session, err := ctl.cart.View(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	response.Success(c, toCartResponse(session))
}

// GetRooms trả về danh sách phòng bán được theo bộ lọc
func (ctl *CartController) GetRooms(c *gin.Context) {
	var query dto.RoomFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Tham số lọc không hợp lệ")
		return
	}
	if err := validator.ValidateStruct(&query); err != nil {
		response.AppError(c, err)
		return
	}

	result, filter, err := ctl.cart.Rooms(c.Request.Context(), middleware.GetSessionID(c), query.ToFilter(), query.Reset)
	if err != nil {
		ctl.fail(c, err)
		return
	}

	rooms := make([]dto.CatalogRoom, 0, len(result.Offers))
	for _, offer := range result.Offers {
		rooms = append(rooms, dto.NewCatalogRoom(offer))
	}
	response.Success(c, dto.RoomListResponse{
		Availability: result.Availability,
		Suggestion:   result.Suggestion,
		Filter:       filter,
		Rooms:        rooms,
	})
}

// SetQuantity đặt số lượng cho một (phòng, hạng giá)
func (ctl *CartController) SetQuantity(c *gin.Context) {
	var req dto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		response.AppError(c, err)
		return
	}
	tier, err := validator.ValidateTier(req.Tier)
	if err != nil {
		response.AppError(c, err)
		return
	}

	res, session, err := ctl.cart.SetQuantity(c.Request.Context(), middleware.GetSessionID(c), req.RoomID, tier, *req.Quantity)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	response.Success(c, dto.SetQuantityResponse{
		Requested: res.Requested,
		Applied:   res.Applied,
		Clamped:   res.Clamped,
		Cart:      toCartResponse(session),
	})
}

// RemoveItem xóa một dòng khỏi giỏ
func (ctl *CartController) RemoveItem(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 32)
	if err != nil || roomID == 0 {
		response.AppError(c, apperrors.NewAppError(apperrors.ErrCodeInvalidFormat, "ID phòng không hợp lệ", err))
		return
	}
	tier, err := validator.ValidateTier(c.Param("tier"))
	if err != nil {
		response.AppError(c, err)
		return
	}

	session, err := ctl.cart.Remove(c.Request.Context(), middleware.GetSessionID(c), uint(roomID), tier)
	if err != nil {
		ctl.fail(c, err)
		return
	}
	response.Success(c, toCartResponse(session))
}

// ClearCart xóa toàn bộ giỏ
func (ctl *CartController) ClearCart(c *gin.Context) {
	session, err := ctl.cart.Clear(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	response.Success(c, toCartResponse(session))
}

// Checkout tạo payload thanh toán đã ký và đóng phiên
func (ctl *CartController) Checkout(c *gin.Context) {
	out, err := ctl.cart.Checkout(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		ctl.fail(c, err)
		return
	}
	response.Success(c, out)
}

func (ctl *CartController) fail(c *gin.Context, err error) {
	if !apperrors.IsAppError(err) || apperrors.CodeOf(err) == apperrors.ErrCodeInternal {
		ctl.logger.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
	}
	response.AppError(c, err)
}

func toCartResponse(session *booking.Session) dto.CartResponse {
	out := dto.CartResponse{
		SessionID:    session.ID,
		HotelID:      session.HotelID,
		HotelName:    session.HotelName,
		Nights:       session.Nights(),
		State:        session.State(),
		Availability: session.Availability(),
		Items:        session.Cart.Snapshot(),
		Selectors:    session.Selectors(),
		Summary:      session.Summary(),
		LastError:    session.LastError,
	}
	if session.Stay != nil {
		out.CheckIn = utils.FormatDate(session.Stay.CheckIn)
		out.CheckOut = utils.FormatDate(session.Stay.CheckOut)
	}
	return out
}

// Ping dùng cho kiểm tra sống
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
