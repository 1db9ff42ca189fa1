package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"hotelsvc/constants"
	"hotelsvc/dto"
	"hotelsvc/response"
	"hotelsvc/services"
	"hotelsvc/validator"
)

type AvailabilityController struct {
	availabilityService *services.AvailabilityService
	calendarService     *services.CalendarService
	policy              *services.AuthPolicy
}

func NewAvailabilityController(availabilityService *services.AvailabilityService, calendarService *services.CalendarService, policy *services.AuthPolicy) *AvailabilityController {
	return &AvailabilityController{
		availabilityService: availabilityService,
		calendarService:     calendarService,
		policy:              policy,
	}
}

// GetAvailability số phòng trống của một hạng phòng trong cửa sổ ngày
func (ctrl *AvailabilityController) GetAvailability(c *gin.Context) {
	hotelID, ok := parseUintQuery(c, "hotelId")
	if !ok {
		response.BadRequest(c, "hotelId không hợp lệ")
		return
	}
	categoryID, ok := parseUintQuery(c, "categoryId")
	if !ok {
		response.BadRequest(c, "categoryId không hợp lệ")
		return
	}

	checkIn, checkOut, err := validator.ValidateStayWindow(c.Query("checkInDate"), c.Query("checkOutDate"))
	if err != nil {
		response.Error(c, err)
		return
	}

	available, err := ctrl.availabilityService.GetAvailability(hotelID, categoryID, checkIn, checkOut)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.AvailabilityResponse{
		HotelID:        hotelID,
		CategoryID:     categoryID,
		CheckInDate:    checkIn.Format(constants.DateLayout),
		CheckOutDate:   checkOut.Format(constants.DateLayout),
		AvailableRooms: available,
	})
}

// BlockRoom block thủ công một phòng trong khoảng ngày
func (ctrl *AvailabilityController) BlockRoom(c *gin.Context) {
	var req dto.BlockRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	role, callerHotelID := callerInfo(c)
	if err := ctrl.policy.Authorize(role, services.ActionManageCalendar, req.HotelID, callerHotelID); err != nil {
		response.Error(c, err)
		return
	}

	fromDate, toDate, err := validator.ValidateDateRange(req.FromDate, req.ToDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := ctrl.calendarService.BlockRoom(req.HotelID, req.RoomID, fromDate, toDate, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := fmt.Sprintf("Đã block %d ngày", result.DaysChanged)
	if result.DaysSkipped > 0 {
		message = fmt.Sprintf("Đã block %d ngày, bỏ qua %d ngày đang có booking", result.DaysChanged, result.DaysSkipped)
	}
	response.SuccessWithMessage(c, message, nil)
}

// UnblockRoom trả các ngày đã block về trạng thái trống
func (ctrl *AvailabilityController) UnblockRoom(c *gin.Context) {
	var req dto.UnblockRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	role, callerHotelID := callerInfo(c)
	if err := ctrl.policy.Authorize(role, services.ActionManageCalendar, req.HotelID, callerHotelID); err != nil {
		response.Error(c, err)
		return
	}

	fromDate, toDate, err := validator.ValidateDateRange(req.FromDate, req.ToDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := ctrl.calendarService.UnblockRoom(req.HotelID, req.RoomID, fromDate, toDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := fmt.Sprintf("Đã unblock %d ngày", result.DaysChanged)
	if result.DaysSkipped > 0 {
		message = fmt.Sprintf("Đã unblock %d ngày, giữ nguyên %d ngày đang có booking", result.DaysChanged, result.DaysSkipped)
	}
	response.SuccessWithMessage(c, message, nil)
}

// ReserveRooms booking service mirror booking đã xác nhận vào lịch
func (ctrl *AvailabilityController) ReserveRooms(c *gin.Context) {
	var req dto.ReserveRoomsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	role, callerHotelID := callerInfo(c)
	if err := ctrl.policy.Authorize(role, services.ActionMarkReserved, req.HotelID, callerHotelID); err != nil {
		response.Error(c, err)
		return
	}

	checkIn, checkOut, err := validator.ValidateStayWindow(req.FromDate, req.ToDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	source := req.Source
	if source == "" {
		source = "BOOKING"
	}

	if err := ctrl.calendarService.MarkRoomsReserved(req.HotelID, req.RoomIDs, checkIn, checkOut, source); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, fmt.Sprintf("Đã ghi nhận %d phòng vào lịch", len(req.RoomIDs)), nil)
}

// SeedRoomCalendar đăng ký lịch cho một phòng mới
func (ctrl *AvailabilityController) SeedRoomCalendar(c *gin.Context) {
	var req dto.SeedRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	role, callerHotelID := callerInfo(c)
	if err := ctrl.policy.Authorize(role, services.ActionMarkReserved, req.HotelID, callerHotelID); err != nil {
		response.Error(c, err)
		return
	}

	fromDate, toDate, err := validator.ValidateDateRange(req.FromDate, req.ToDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := ctrl.calendarService.SeedRoomCalendar(req.HotelID, req.RoomID, fromDate, toDate)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, fmt.Sprintf("Đã tạo %d ngày lịch", created), nil)
}

// SearchAvailability tìm phòng không có ngày bận nào trong cửa sổ yêu cầu
func (ctrl *AvailabilityController) SearchAvailability(c *gin.Context) {
	hotelID, ok := parseUintQuery(c, "hotelId")
	if !ok {
		response.BadRequest(c, "hotelId không hợp lệ")
		return
	}

	checkIn, checkOut, err := validator.ValidateStayWindow(c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		response.Error(c, err)
		return
	}

	roomIDs, err := ctrl.calendarService.SearchAvailability(hotelID, checkIn, checkOut)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.SearchAvailabilityResponse{
		HotelID:          hotelID,
		AvailableRooms:   len(roomIDs),
		AvailableRoomIDs: roomIDs,
	})
}
