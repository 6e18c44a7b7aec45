package v1

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	applog "github.com/alnoi/pr-workload-dashboard/internal/logger"
	"github.com/alnoi/pr-workload-dashboard/internal/presenter"
)

// SessionCookie carries the id of the browser session that owns a rendered dashboard.
const SessionCookie = "dashboard_session"

// GET /
func (s *ServerHandler) GetDashboard(ctx echo.Context) error {
	p, ok := s.sessions.Lookup(sessionID(ctx))
	if !ok {
		return ctx.Render(http.StatusOK, dashboardTemplate, presenter.View{})
	}

	return ctx.Render(http.StatusOK, dashboardTemplate, p.View())
}

// POST /metrics
//
// Failures are logged by the presenter and never shown on the page: the browser is
// always sent back to the dashboard.
func (s *ServerHandler) PostMetrics(ctx echo.Context) error {
	log := applog.FromContext(ctx.Request().Context())
	log.Info("PostMetrics called")

	var form SubmitForm
	if err := ctx.Bind(&form); err != nil {
		log.Warn("invalid form in PostMetrics", zap.Error(err))
		return ctx.Redirect(http.StatusSeeOther, "/")
	}

	id, p := s.sessions.Get(sessionID(ctx))
	ctx.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	_ = p.Submit(ctx.Request().Context(), toDomainQuery(form), s.workloadUC)

	return ctx.Redirect(http.StatusSeeOther, "/")
}

// GET /chart
func (s *ServerHandler) GetChart(ctx echo.Context) error {
	p, ok := s.sessions.Lookup(sessionID(ctx))
	if !ok {
		return ctx.NoContent(http.StatusNotFound)
	}

	var buf bytes.Buffer

	if err := p.WriteChart(&buf); err != nil {
		if errors.Is(err, presenter.ErrNoChart) {
			return ctx.NoContent(http.StatusNotFound)
		}

		applog.FromContext(ctx.Request().Context()).Error("failed to render chart", zap.Error(err))
		return ctx.NoContent(http.StatusInternalServerError)
	}

	return ctx.HTMLBlob(http.StatusOK, buf.Bytes())
}

func sessionID(ctx echo.Context) string {
	c, err := ctx.Cookie(SessionCookie)
	if err != nil {
		return ""
	}

	return c.Value
}
