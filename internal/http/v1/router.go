package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

type RouterOptions struct {
	// SubmitRateLimit limits submissions per second per client IP; 0 disables it.
	SubmitRateLimit float64
}

// NewRouter собирает Echo, шаблоны страницы и хендлеры.
func NewRouter(handler ServerInterface, opts RouterOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = newTemplateRenderer()

	e.Use(middleware.Recover())

	submit := []echo.MiddlewareFunc{}
	if opts.SubmitRateLimit > 0 {
		store := middleware.NewRateLimiterMemoryStore(rate.Limit(opts.SubmitRateLimit))
		submit = append(submit, middleware.RateLimiter(store))
	}

	e.GET("/", handler.GetDashboard)
	e.POST("/metrics", handler.PostMetrics, submit...)
	e.GET("/chart", handler.GetChart)
	e.POST("/api/v1/workload", handler.PostWorkload, submit...)

	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return e
}
