package usecase

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/alnoi/pr-workload-dashboard/internal/domain"
	"github.com/alnoi/pr-workload-dashboard/internal/repository"
)

const (
	DefaultPageSize = 100
	// MaxPageSize is the largest per_page GitHub honours.
	MaxPageSize = 100
)

type (
	WorkloadUseCase interface {
		Aggregate(ctx context.Context, q domain.MilestoneQuery) (domain.Report, error)
	}
)

var _ WorkloadUseCase = (*serviceImpl)(nil)

var tracer = otel.Tracer("pr-workload-dashboard")

type Options struct {
	// PageSize doubles as the last-page signal: a shorter page ends pagination.
	PageSize int
	// MaxPages caps pagination; 0 keeps fetching until the last page.
	MaxPages int
}

type serviceImpl struct {
	prRepo   repository.PullRequestRepository
	pageSize int
	maxPages int
}

func NewService(prRepo repository.PullRequestRepository, opts Options) *serviceImpl {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	maxPages := opts.MaxPages
	if maxPages < 0 {
		maxPages = 0
	}

	return &serviceImpl{
		prRepo:   prRepo,
		pageSize: pageSize,
		maxPages: maxPages,
	}
}
