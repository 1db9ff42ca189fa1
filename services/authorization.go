package services

import (
	"hotelsvc/constants"
	"hotelsvc/errors"
)

// Action các thao tác cần kiểm tra quyền
type Action string

const (
	ActionManageInventory Action = "inventory:manage"
	ActionManageCalendar  Action = "calendar:manage"
	ActionCreateHold      Action = "hold:create"
	ActionReleaseHold     Action = "hold:release"
	ActionMarkReserved    Action = "calendar:reserve"
)

// AuthPolicy gom toàn bộ kiểm tra quyền về một chỗ thay vì rải rác
// trong từng controller. MANAGER chỉ được thao tác trên khách sạn của mình.
type AuthPolicy struct{}

func NewAuthPolicy() *AuthPolicy {
	return &AuthPolicy{}
}

// Authorize kiểm tra (role, action, hotel đích, hotel của caller) -> allow/deny
func (p *AuthPolicy) Authorize(role int, action Action, resourceHotelID, callerHotelID uint) error {
	switch action {
	case ActionManageInventory, ActionManageCalendar:
		if role == constants.RoleAdmin {
			return nil
		}
		if role == constants.RoleManager {
			if resourceHotelID != 0 && resourceHotelID == callerHotelID {
				return nil
			}
			return errors.NewAppError(errors.ErrCodeAccessDenied, "Quản lý chỉ được thao tác trên khách sạn của mình", nil)
		}
		if role == constants.RoleSystem && action == ActionManageInventory {
			// maintenance hook từ service phòng vật lý
			return nil
		}
	case ActionCreateHold, ActionReleaseHold, ActionMarkReserved:
		if role == constants.RoleSystem {
			return nil
		}
	}
	return errors.NewAppError(errors.ErrCodeAccessDenied, "Không có quyền thực hiện thao tác này", nil)
}
