package v1

import (
	"github.com/labstack/echo/v4"

	"github.com/alnoi/pr-workload-dashboard/internal/presenter"
	"github.com/alnoi/pr-workload-dashboard/internal/usecase"
)

// ServerInterface — набор хендлеров, которые регистрирует роутер.
//
// Routes are registered by hand in NewRouter; there is no generated server or OpenAPI
// document behind this interface or the request/response types in types.go.
type ServerInterface interface {
	// GET /
	GetDashboard(ctx echo.Context) error
	// POST /metrics
	PostMetrics(ctx echo.Context) error
	// GET /chart
	GetChart(ctx echo.Context) error
	// POST /api/v1/workload
	PostWorkload(ctx echo.Context) error
}

var _ (ServerInterface) = &ServerHandler{}

type ServerHandler struct {
	workloadUC usecase.WorkloadUseCase
	sessions   *presenter.Sessions
}

func NewServerHandler(workloadUC usecase.WorkloadUseCase, sessions *presenter.Sessions) *ServerHandler {
	return &ServerHandler{
		workloadUC: workloadUC,
		sessions:   sessions,
	}
}
