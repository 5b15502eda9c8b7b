package presenter

import (
	authDTO "github.com/johnquangdev/one-on-one-manager/internal/adapter/dto/auth"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/entities"
	"github.com/johnquangdev/one-on-one-manager/internal/domain/repositories"
	"github.com/johnquangdev/one-on-one-manager/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}
	return &authDTO.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
	}
}

// ToAuthResponse converts usecase AuthResult to DTO AuthResponse
func ToAuthResponse(result *auth.AuthResult) *authDTO.AuthResponse {
	if result == nil {
		return nil
	}
	return &authDTO.AuthResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
		TokenType:    result.TokenType,
		User:         ToUserResponse(result.User),
	}
}

// ToMigrateDataResponse converts claimed row counts
func ToMigrateDataResponse(result *repositories.ClaimResult) *authDTO.MigrateDataResponse {
	resp := &authDTO.MigrateDataResponse{Message: "Data migrated successfully"}
	if result == nil {
		return resp
	}
	resp.Migrated = authDTO.MigratedRows{
		Employees:        result.People,
		Meetings:         result.Meetings,
		Tasks:            result.Tasks,
		QuickNotes:       result.QuickNotes,
		CalendarMeetings: result.CalendarMeetings,
	}
	return resp
}
