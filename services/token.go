package services

import (
	"encoding/json"
	"strings"

	"github.com/dgrijalva/jwt-go"

	"hotelsvc/errors"
)

// decodeClaims giải mã phần payload của token (gateway đã verify chữ ký)
func decodeClaims(tokenString string) (jwt.MapClaims, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể giải mã token", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Không thể parse token", err)
	}

	return claimsMap, nil
}

// GetUserIDFromToken lấy userID, role và hotelID từ token
func GetUserIDFromToken(tokenString string) (uint, int, uint, error) {
	claimsMap, err := decodeClaims(tokenString)
	if err != nil {
		return 0, 0, 0, err
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy ID user trong token", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return 0, 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy role trong token", nil)
	}

	// hotelid chỉ có với MANAGER, thiếu thì coi như 0
	hotelID, _ := userInfo["hotelid"].(float64)

	return uint(userID), int(role), uint(hotelID), nil
}
