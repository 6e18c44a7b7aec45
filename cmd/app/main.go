package main

import (
	"context"
	"log"
	"net/http"
	"runtime"

	"github.com/grafana/pyroscope-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"

	"github.com/alnoi/pr-workload-dashboard/config"
	v1 "github.com/alnoi/pr-workload-dashboard/internal/http/v1"
	"github.com/alnoi/pr-workload-dashboard/internal/logger"
	"github.com/alnoi/pr-workload-dashboard/internal/presenter"
	"github.com/alnoi/pr-workload-dashboard/internal/repository/github"
	"github.com/alnoi/pr-workload-dashboard/internal/usecase"
)

const serviceName = "pr-workload-dashboard"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.New()
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// --- Observability setup ---

	if cfg.PyroscopeEnabled {
		go runPyroscope(logg, cfg.PyroscopeAddress)
	}

	var shutdownTracer func(context.Context) error
	if cfg.JaegerCollectorURL != "" {
		shutdownTracer = initTracer(logg, cfg.JaegerCollectorURL)
		defer func() {
			if err := shutdownTracer(ctx); err != nil {
				logg.Error("failed to shutdown tracer", zap.Error(err))
			}
		}()
	}

	go runMetricsServer(logg, cfg.MetricsPort)

	// --- App setup ---

	prRepo, err := github.NewPRRepository(cfg.GitHub.APIURL, cfg.GitHub.Timeout)
	if err != nil {
		logg.Fatal("can not create github repository", zap.Error(err))
	}

	useCase := usecase.NewService(prRepo, usecase.Options{
		PageSize: cfg.GitHub.PageSize,
		MaxPages: cfg.GitHub.MaxPages,
	})

	handler := v1.NewServerHandler(useCase, presenter.NewSessions(cfg.SessionTTL))

	r := v1.NewRouter(handler, v1.RouterOptions{SubmitRateLimit: cfg.SubmitRateLimit})
	r.Use(logger.Middleware(logg))

	logg.Info("starting dashboard",
		zap.String("port", cfg.HTTPPort),
		zap.String("github_api_url", cfg.GitHub.APIURL),
		zap.Int("max_pages", cfg.GitHub.MaxPages),
	)

	if err := r.Start(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// --- Pyroscope ---

func runPyroscope(l *zap.Logger, addr string) {
	runtime.SetMutexProfileFraction(1)
	runtime.SetBlockProfileRate(1)

	_, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: serviceName,
		ServerAddress:   addr,

		Logger: pyroscope.StandardLogger,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileMutexCount,
			pyroscope.ProfileMutexDuration,
			pyroscope.ProfileBlockCount,
			pyroscope.ProfileBlockDuration,
		},
	})
	if err != nil {
		l.Fatal("can not set up pyroscope", zap.Error(err))
	}
}

// --- Prometheus ---

func runMetricsServer(l *zap.Logger, port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	l.Info("starting metrics server", zap.String("port", port))

	if err := http.ListenAndServe(":"+port, mux); err != nil {
		l.Fatal("can not start metrics server", zap.Error(err))
	}
}

// --- Tracing (Jaeger) ---

func initTracer(l *zap.Logger, url string) func(context.Context) error {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(url)))
	if err != nil {
		l.Fatal("can not create jaeger collector", zap.Error(err))
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)

	otel.SetTracerProvider(tp)

	l.Info("jaeger tracer initialized", zap.String("url", url))

	return tp.Shutdown
}
