package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/alnoi/pr-workload-dashboard/internal/domain"
	"github.com/alnoi/pr-workload-dashboard/internal/logger"
	"github.com/alnoi/pr-workload-dashboard/internal/metrics"
)

func (s *serviceImpl) Aggregate(ctx context.Context, q domain.MilestoneQuery) (domain.Report, error) {
	cycleID := logger.RequestIDFromContext(ctx)
	if cycleID == "" {
		cycleID = uuid.NewString()
	}

	ctx, span := tracer.Start(
		ctx,
		"Service.Aggregate",
		trace.WithAttributes(
			attribute.String("cycle.id", cycleID),
			attribute.String("repo.owner", q.Owner),
			attribute.String("repo.name", q.Repo),
			attribute.String("milestone.title", q.Milestone),
		),
	)
	defer span.End()

	ctx = logger.WithContext(ctx, logger.FromContext(ctx).With(
		zap.String("cycle_id", cycleID),
		zap.String("owner", q.Owner),
		zap.String("repo", q.Repo),
		zap.String("milestone", q.Milestone),
	))

	start := time.Now()
	defer func() {
		metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	}()

	if err := q.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "invalid milestone query")
		metrics.AggregationsTotal.WithLabelValues("invalid").Inc()
		return domain.Report{}, err
	}

	prs, err := s.listAllOpenPRs(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.LogDomainAware(ctx, err, "failed to list open pull requests")
		metrics.AggregationsTotal.WithLabelValues("failed").Inc()
		return domain.Report{}, err
	}

	filtered := filterByMilestone(prs, q.Milestone)

	logger.FromContext(ctx).Debug("open pull requests fetched",
		zap.Int("fetched", len(prs)),
		zap.Int("in_milestone", len(filtered)),
	)

	report := domain.Report{
		PRMetrics:    make([]domain.PRMetric, 0, len(filtered)),
		UserWorkload: domain.UserWorkload{},
	}

	for _, pr := range filtered {
		comments, err := s.prRepo.ListReviewComments(ctx, q.Token, pr.ReviewCommentsURL)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.LogDomainAware(ctx, err, "failed to list review comments",
				zap.Int("pr_number", pr.Number),
			)
			metrics.AggregationsTotal.WithLabelValues("failed").Inc()
			return domain.Report{}, err
		}

		requested, err := s.prRepo.ListRequestedReviewers(ctx, q.Token, pr.URL)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.LogDomainAware(ctx, err, "failed to list requested reviewers",
				zap.Int("pr_number", pr.Number),
			)
			metrics.AggregationsTotal.WithLabelValues("failed").Inc()
			return domain.Report{}, err
		}

		assignee := pr.AssigneeLogin()
		reviewers := buildReviewers(assignee, comments, requested)

		if assignee != "" {
			report.UserWorkload.AddAssignedPR(assignee)
		}
		for _, r := range reviewers {
			report.UserWorkload.AddAssignedReview(r)
		}

		report.PRMetrics = append(report.PRMetrics, domain.PRMetric{
			Number:    pr.Number,
			Title:     pr.Title,
			URL:       pr.HTMLURL,
			Assignee:  assignee,
			Reviewers: reviewers,
		})
	}

	span.SetAttributes(
		attribute.Int("prs.fetched", len(prs)),
		attribute.Int("prs.in_milestone", len(filtered)),
		attribute.Int("workload.users", len(report.UserWorkload)),
	)

	metrics.AggregationsTotal.WithLabelValues("ok").Inc()

	return report, nil
}

func (s *serviceImpl) listAllOpenPRs(ctx context.Context, q domain.MilestoneQuery) ([]domain.PullRequest, error) {
	var all []domain.PullRequest

	for page := 1; ; page++ {
		prs, err := s.prRepo.ListOpenPullRequests(ctx, q.Token, q.Owner, q.Repo, page, s.pageSize)
		if err != nil {
			return nil, err
		}

		all = append(all, prs...)
		metrics.PullRequestsFetchedTotal.Add(float64(len(prs)))

		if len(prs) < s.pageSize {
			break
		}
		if s.maxPages > 0 && page >= s.maxPages {
			logger.FromContext(ctx).Warn("pagination stopped at page cap",
				zap.Int("max_pages", s.maxPages),
				zap.Int("fetched", len(all)),
			)
			break
		}
	}

	return all, nil
}

// --------------------HELPERS----------------------

func filterByMilestone(prs []domain.PullRequest, title string) []domain.PullRequest {
	res := make([]domain.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if pr.InMilestone(title) {
			res = append(res, pr)
		}
	}
	return res
}

// buildReviewers unions comment authors (minus the assignee) with requested reviewers,
// keeping first-seen order.
func buildReviewers(assignee string, comments []domain.ReviewComment, requested domain.ReviewerRequest) []string {
	seen := make(map[string]struct{}, len(comments)+len(requested.Users))
	res := make([]string, 0, len(comments)+len(requested.Users))

	add := func(login string) {
		if login == "" {
			return
		}
		if _, dup := seen[login]; dup {
			return
		}
		seen[login] = struct{}{}
		res = append(res, login)
	}

	for _, c := range comments {
		if c.Author.Login == assignee {
			continue
		}
		add(c.Author.Login)
	}
	for _, u := range requested.Users {
		add(u.Login)
	}

	return res
}
