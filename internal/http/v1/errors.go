package v1

import (
	"net/http"

	"github.com/alnoi/pr-workload-dashboard/internal/domain"
)

func mapDomainErrorToStatus(code domain.ErrorCode) int {
	switch code {
	case domain.ErrorCodeInvalidInput:
		return http.StatusBadRequest
	case domain.ErrorCodeBusy:
		return http.StatusConflict
	case domain.ErrorCodeNetwork:
		return http.StatusBadGateway
	case domain.ErrorCodeAPI:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func newAPIError(code ErrorResponseErrorCode, msg string) ErrorResponse {
	return ErrorResponse{
		Error: struct {
			Code    ErrorResponseErrorCode `json:"code"`
			Message string                 `json:"message"`
		}{
			Code:    code,
			Message: msg,
		},
	}
}
