package controllers

import (
	"github.com/gin-gonic/gin"

	"hotelsvc/dto"
	"hotelsvc/response"
	"hotelsvc/services"
	"hotelsvc/validator"
)

type HoldController struct {
	holdService *services.HoldService
	policy      *services.AuthPolicy
}

func NewHoldController(holdService *services.HoldService, policy *services.AuthPolicy) *HoldController {
	return &HoldController{
		holdService: holdService,
		policy:      policy,
	}
}

// CreateHold booking service gọi để giữ phòng trước khi ghi booking tạm
func (ctrl *HoldController) CreateHold(c *gin.Context) {
	var req dto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	role, callerHotelID := callerInfo(c)
	if err := ctrl.policy.Authorize(role, services.ActionCreateHold, req.HotelID, callerHotelID); err != nil {
		response.Error(c, err)
		return
	}

	checkIn, checkOut, err := validator.ValidateHoldRequest(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	hold, err := ctrl.holdService.CreateHold(req.HotelID, req.CategoryID, checkIn, checkOut, req.Rooms)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.HoldResponse{
		HoldID:    hold.HoldID,
		ExpiresAt: hold.ExpiresAt,
	})
}

// ReleaseHold booking service gọi ngay sau khi ghi booking xong. Idempotent.
func (ctrl *HoldController) ReleaseHold(c *gin.Context) {
	holdID := c.Param("holdId")
	if holdID == "" {
		response.BadRequest(c, "holdId là bắt buộc")
		return
	}

	role, callerHotelID := callerInfo(c)
	if err := ctrl.policy.Authorize(role, services.ActionReleaseHold, 0, callerHotelID); err != nil {
		response.Error(c, err)
		return
	}

	if _, err := ctrl.holdService.ReleaseHold(holdID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
