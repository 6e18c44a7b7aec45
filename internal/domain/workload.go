package domain

import (
	"sort"
	"strings"
)

type MilestoneQuery struct {
	Token     string
	Owner     string
	Repo      string
	Milestone string
}

func (q MilestoneQuery) Validate() error {
	switch {
	case strings.TrimSpace(q.Owner) == "":
		return NewDomainError(ErrorCodeInvalidInput, "repository owner is required")
	case strings.TrimSpace(q.Repo) == "":
		return NewDomainError(ErrorCodeInvalidInput, "repository name is required")
	case strings.TrimSpace(q.Milestone) == "":
		return NewDomainError(ErrorCodeInvalidInput, "milestone title is required")
	}
	return nil
}

type PRMetric struct {
	Number    int
	Title     string
	URL       string
	Assignee  string
	Reviewers []string
}

type WorkloadCounts struct {
	AssignedPRs     int
	AssignedReviews int
	Total           int
}

type UserWorkload map[string]WorkloadCounts

func (w UserWorkload) AddAssignedPR(login string) {
	c := w[login]
	c.AssignedPRs++
	c.Total++
	w[login] = c
}

func (w UserWorkload) AddAssignedReview(login string) {
	c := w[login]
	c.AssignedReviews++
	c.Total++
	w[login] = c
}

// SortedLogins orders users by total workload, heaviest first; equal totals sort by login.
func (w UserWorkload) SortedLogins() []string {
	logins := make([]string, 0, len(w))
	for login := range w {
		logins = append(logins, login)
	}

	sort.Slice(logins, func(i, j int) bool {
		ti, tj := w[logins[i]].Total, w[logins[j]].Total
		if ti != tj {
			return ti > tj
		}
		return logins[i] < logins[j]
	})

	return logins
}

type Report struct {
	PRMetrics    []PRMetric
	UserWorkload UserWorkload
}
