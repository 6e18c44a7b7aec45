package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/alnoi/pr-workload-dashboard/internal/domain"
	applog "github.com/alnoi/pr-workload-dashboard/internal/logger"
)

// POST /api/v1/workload
func (s *ServerHandler) PostWorkload(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostWorkload called")

	var body PostWorkloadJSONRequestBody

	if err := ctx.Bind(&body); err != nil {
		log.Warn("invalid json in PostWorkload", zap.Error(err))
		resp := newAPIError(ErrorResponseErrorCode("BAD_REQUEST"), "invalid json")
		return ctx.JSON(http.StatusBadRequest, resp)
	}

	report, err := s.workloadUC.Aggregate(ctx.Request().Context(), domain.MilestoneQuery{
		Token:     body.Token,
		Owner:     body.Owner,
		Repo:      body.Repo,
		Milestone: body.Milestone,
	})
	if err != nil {
		var derr *domain.DomainError
		if errors.As(err, &derr) {
			status := mapDomainErrorToStatus(derr.Code)
			resp := newAPIError(ErrorResponseErrorCode(derr.Code), derr.Error())
			return ctx.JSON(status, resp)
		}

		resp := newAPIError(ErrorResponseErrorCode("INTERNAL"), "internal server error")
		return ctx.JSON(http.StatusInternalServerError, resp)
	}

	return ctx.JSON(http.StatusOK, toAPIReport(report))
}
