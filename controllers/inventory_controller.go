package controllers

import (
	"github.com/gin-gonic/gin"

	"hotelsvc/dto"
	"hotelsvc/models"
	"hotelsvc/response"
	"hotelsvc/services"
)

type InventoryController struct {
	inventoryService *services.InventoryService
	policy           *services.AuthPolicy
}

func NewInventoryController(inventoryService *services.InventoryService, policy *services.AuthPolicy) *InventoryController {
	return &InventoryController{
		inventoryService: inventoryService,
		policy:           policy,
	}
}

func toInventoryResponse(inventory *models.RoomInventory) dto.InventoryResponse {
	return dto.InventoryResponse{
		HotelID:        inventory.HotelID,
		CategoryID:     inventory.CategoryID,
		TotalRooms:     inventory.TotalRooms,
		OutOfService:   inventory.OutOfService,
		AvailableRooms: inventory.AvailableRooms(),
	}
}

// UpsertInventory tạo hoặc cập nhật bộ đếm phòng của một hạng phòng
func (ctrl *InventoryController) UpsertInventory(c *gin.Context) {
	hotelID, ok := parseUintParam(c, "hotelId")
	if !ok {
		response.BadRequest(c, "hotelId không hợp lệ")
		return
	}

	var req dto.UpsertInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	role, callerHotelID := callerInfo(c)
	if err := ctrl.policy.Authorize(role, services.ActionManageInventory, hotelID, callerHotelID); err != nil {
		response.Error(c, err)
		return
	}

	inventory, err := ctrl.inventoryService.UpsertInventory(hotelID, req.CategoryID, *req.TotalRooms)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toInventoryResponse(inventory))
}

// GetInventory lấy toàn bộ bộ đếm của một khách sạn
func (ctrl *InventoryController) GetInventory(c *gin.Context) {
	hotelID, ok := parseUintParam(c, "hotelId")
	if !ok {
		response.BadRequest(c, "hotelId không hợp lệ")
		return
	}

	records, err := ctrl.inventoryService.GetInventory(hotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := make([]dto.InventoryResponse, 0, len(records))
	for i := range records {
		result = append(result, toInventoryResponse(&records[i]))
	}

	response.Success(c, result)
}

// IncrementOutOfService hook bảo trì: một phòng vật lý vào trạng thái bảo trì
func (ctrl *InventoryController) IncrementOutOfService(c *gin.Context) {
	ctrl.adjustOutOfService(c, +1)
}

// DecrementOutOfService hook bảo trì: một phòng vật lý quay lại khai thác
func (ctrl *InventoryController) DecrementOutOfService(c *gin.Context) {
	ctrl.adjustOutOfService(c, -1)
}

func (ctrl *InventoryController) adjustOutOfService(c *gin.Context, delta int) {
	hotelID, ok := parseUintParam(c, "hotelId")
	if !ok {
		response.BadRequest(c, "hotelId không hợp lệ")
		return
	}
	categoryID, ok := parseUintParam(c, "categoryId")
	if !ok {
		response.BadRequest(c, "categoryId không hợp lệ")
		return
	}

	role, callerHotelID := callerInfo(c)
	if err := ctrl.policy.Authorize(role, services.ActionManageInventory, hotelID, callerHotelID); err != nil {
		response.Error(c, err)
		return
	}

	var (
		inventory *models.RoomInventory
		err       error
	)
	if delta > 0 {
		inventory, err = ctrl.inventoryService.IncrementOutOfService(hotelID, categoryID)
	} else {
		inventory, err = ctrl.inventoryService.DecrementOutOfService(hotelID, categoryID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toInventoryResponse(inventory))
}
