package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v58/github"
	"golang.org/x/oauth2"

	"github.com/alnoi/pr-workload-dashboard/internal/domain"
	"github.com/alnoi/pr-workload-dashboard/internal/metrics"
)

const DefaultBaseURL = "https://api.github.com/"

var errBadResourceURL = errors.New("bad resource url")

const (
	endpointPulls     = "pulls"
	endpointComments  = "review_comments"
	endpointReviewers = "requested_reviewers"
)

type PRRepository struct {
	baseURL *url.URL
	timeout time.Duration
	base    *http.Client
}

func NewPRRepository(baseURL string, timeout time.Duration) (*PRRepository, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid github api url %q: %w", baseURL, err)
	}

	return &PRRepository{
		baseURL: u,
		timeout: timeout,
		base:    http.DefaultClient,
	}, nil
}

func (r *PRRepository) ListOpenPullRequests(ctx context.Context, token, owner, repo string, page, perPage int) ([]domain.PullRequest, error) {
	c := r.client(ctx, token)

	opts := &gh.PullRequestListOptions{
		State: "open",
		ListOptions: gh.ListOptions{
			Page:    page,
			PerPage: perPage,
		},
	}

	prs, _, err := c.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return nil, r.fail(endpointPulls, fmt.Sprintf("list open pull requests of %s/%s, page %d", owner, repo, page), err)
	}
	metrics.GitHubRequestsTotal.WithLabelValues(endpointPulls, "ok").Inc()

	res := make([]domain.PullRequest, 0, len(prs))
	for _, pr := range prs {
		res = append(res, toDomainPR(pr))
	}

	return res, nil
}

func (r *PRRepository) ListReviewComments(ctx context.Context, token, commentsURL string) ([]domain.ReviewComment, error) {
	c := r.client(ctx, token)

	var comments []*gh.PullRequestComment
	if err := r.get(ctx, c, commentsURL, &comments); err != nil {
		return nil, r.fail(endpointComments, "list review comments", err)
	}
	metrics.GitHubRequestsTotal.WithLabelValues(endpointComments, "ok").Inc()

	res := make([]domain.ReviewComment, 0, len(comments))
	for _, cm := range comments {
		res = append(res, domain.ReviewComment{
			Author: domain.User{Login: cm.GetUser().GetLogin()},
		})
	}

	return res, nil
}

func (r *PRRepository) ListRequestedReviewers(ctx context.Context, token, prURL string) (domain.ReviewerRequest, error) {
	c := r.client(ctx, token)

	var reviewers gh.Reviewers
	if err := r.get(ctx, c, strings.TrimSuffix(prURL, "/")+"/requested_reviewers", &reviewers); err != nil {
		return domain.ReviewerRequest{}, r.fail(endpointReviewers, "list requested reviewers", err)
	}
	metrics.GitHubRequestsTotal.WithLabelValues(endpointReviewers, "ok").Inc()

	res := domain.ReviewerRequest{
		Users: make([]domain.User, 0, len(reviewers.Users)),
	}
	for _, u := range reviewers.Users {
		res.Users = append(res.Users, domain.User{Login: u.GetLogin()})
	}

	return res, nil
}

// --------------------HELPERS----------------------

// client builds a go-github client sending `Authorization: token <value>`.
// An empty token means anonymous access and no header at all.
func (r *PRRepository) client(ctx context.Context, token string) *gh.Client {
	httpClient := &http.Client{Transport: r.base.Transport}

	if token != "" {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, r.base)
		ts := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: token,
			TokenType:   "token",
		})
		httpClient = oauth2.NewClient(ctx, ts)
	}
	httpClient.Timeout = r.timeout

	c := gh.NewClient(httpClient)
	c.BaseURL = r.baseURL

	return c
}

func (r *PRRepository) get(ctx context.Context, c *gh.Client, rawURL string, v any) error {
	req, err := c.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%w %q: %v", errBadResourceURL, rawURL, err)
	}

	_, err = c.Do(ctx, req, v)
	return err
}

func (r *PRRepository) fail(endpoint, msg string, err error) error {
	code := classify(err)
	metrics.GitHubRequestsTotal.WithLabelValues(endpoint, string(code)).Inc()
	return domain.WrapDomainError(code, msg, err)
}

// classify splits failures into transport problems and everything the API answered badly:
// non-2xx statuses and bodies that do not decode.
func classify(err error) domain.ErrorCode {
	var urlErr *url.Error
	switch {
	case errors.Is(err, errBadResourceURL):
		return domain.ErrorCodeAPI
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domain.ErrorCodeNetwork
	case errors.As(err, &urlErr):
		return domain.ErrorCodeNetwork
	default:
		return domain.ErrorCodeAPI
	}
}

func toDomainPR(pr *gh.PullRequest) domain.PullRequest {
	res := domain.PullRequest{
		Number:            pr.GetNumber(),
		Title:             pr.GetTitle(),
		HTMLURL:           pr.GetHTMLURL(),
		URL:               pr.GetURL(),
		ReviewCommentsURL: pr.GetReviewCommentsURL(),
	}

	if pr.Milestone != nil {
		res.Milestone = &domain.Milestone{Title: pr.Milestone.GetTitle()}
	}
	if pr.Assignee != nil {
		res.Assignee = &domain.User{Login: pr.Assignee.GetLogin()}
	}

	return res
}
