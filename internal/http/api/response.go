package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalErr         = "INTERNAL_ERROR"
	ErrValidationErr       = "VALIDATION_ERROR"
	ErrBadRequest          = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeTeamExists      = "TEAM_EXISTS"
	ErrCodeEmailExists     = "EMAIL_EXISTS"
	ErrCodeTeamRequired    = "TEAM_REQUIRED"
	ErrCodeEquipmentExists = "EQUIPMENT_EXISTS"
)

type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        UserSchema `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type MonthlyReportResponse struct {
	Month     string                 `json:"month"`
	TeamID    *string                `json:"team_id"`
	Sites     []SiteHoursSchema      `json:"sites"`
	Equipment []EquipmentTotalSchema `json:"equipment"`
}

type SiteHoursSchema struct {
	SiteName    string  `json:"site_name"`
	TotalHours  float64 `json:"total_hours"`
	RecordCount int     `json:"record_count"`
}

type EquipmentTotalSchema struct {
	EquipmentType string `json:"equipment_type"`
	TotalQuantity int    `json:"total_quantity"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrInternalErr,
			Message: "internal server error",
		},
	}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "max":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be no more than %s", err.Field(), err.Param()),
			)
		case "min", "gte":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be at least %s", err.Field(), err.Param()),
			)
		case "gt":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be greater than %s", err.Field(), err.Param()),
			)
		case "lte":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be no more than %s", err.Field(), err.Param()),
			)
		case "oneof":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be one of [%s]", err.Field(), err.Param()),
			)
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
		},
	}
}
