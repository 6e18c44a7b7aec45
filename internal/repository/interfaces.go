package repository

import (
	"context"

	"github.com/alnoi/pr-workload-dashboard/internal/domain"
)

type (
	PullRequestRepository interface {
		ListOpenPullRequests(ctx context.Context, token, owner, repo string, page, perPage int) ([]domain.PullRequest, error)

		// commentsURL and prURL come from the pull request record itself.
		ListReviewComments(ctx context.Context, token, commentsURL string) ([]domain.ReviewComment, error)
		ListRequestedReviewers(ctx context.Context, token, prURL string) (domain.ReviewerRequest, error)
	}
)
