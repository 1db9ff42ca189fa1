package services

import (
	"testing"

	"hotelsvc/constants"
	"hotelsvc/errors"
)

func TestAuthPolicy(t *testing.T) {
	policy := NewAuthPolicy()

	cases := []struct {
		name            string
		role            int
		action          Action
		resourceHotelID uint
		callerHotelID   uint
		allowed         bool
	}{
		{"admin manages any hotel", constants.RoleAdmin, ActionManageInventory, 5, 0, true},
		{"admin manages any calendar", constants.RoleAdmin, ActionManageCalendar, 5, 0, true},
		{"manager manages own hotel", constants.RoleManager, ActionManageInventory, 5, 5, true},
		{"manager denied other hotel", constants.RoleManager, ActionManageInventory, 5, 6, false},
		{"manager denied without hotel", constants.RoleManager, ActionManageCalendar, 5, 0, false},
		{"system creates holds", constants.RoleSystem, ActionCreateHold, 5, 0, true},
		{"system releases holds", constants.RoleSystem, ActionReleaseHold, 0, 0, true},
		{"system mirrors reservations", constants.RoleSystem, ActionMarkReserved, 5, 0, true},
		{"system runs maintenance hooks", constants.RoleSystem, ActionManageInventory, 5, 0, true},
		{"system denied calendar manage", constants.RoleSystem, ActionManageCalendar, 5, 0, false},
		{"admin denied hold create", constants.RoleAdmin, ActionCreateHold, 5, 0, false},
		{"user denied everything", constants.RoleUser, ActionManageInventory, 5, 5, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.Authorize(tc.role, tc.action, tc.resourceHotelID, tc.callerHotelID)
			if tc.allowed && err != nil {
				t.Fatalf("expected allow, got %v", err)
			}
			if !tc.allowed {
				appErr := errors.GetAppError(err)
				if appErr == nil || appErr.Code != errors.ErrCodeAccessDenied {
					t.Fatalf("expected ACCESS_DENIED, got %v", err)
				}
			}
		})
	}
}
