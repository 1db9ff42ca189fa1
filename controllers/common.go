package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hotelsvc/constants"
)

// callerInfo lấy role và hotelID của caller từ context (AuthMiddleware đã set)
func callerInfo(c *gin.Context) (int, uint) {
	role := constants.RoleUser
	if v, exists := c.Get("userRole"); exists {
		if r, ok := v.(int); ok {
			role = r
		}
	}

	var hotelID uint
	if v, exists := c.Get("userHotelID"); exists {
		if h, ok := v.(uint); ok {
			hotelID = h
		}
	}

	return role, hotelID
}

// parseUintParam parse một path param dạng số
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// parseUintQuery parse một query param dạng số
func parseUintQuery(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Query(name), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
