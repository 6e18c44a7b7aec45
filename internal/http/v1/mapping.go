package v1

import (
	"github.com/alnoi/pr-workload-dashboard/internal/domain"
)

func toDomainQuery(f SubmitForm) domain.MilestoneQuery {
	return domain.MilestoneQuery{
		Token:     f.GithubToken,
		Owner:     f.RepoOwner,
		Repo:      f.RepoName,
		Milestone: f.MilestoneTitle,
	}
}

func toAPIReport(r domain.Report) WorkloadReport {
	metrics := make([]PRMetric, 0, len(r.PRMetrics))
	for _, m := range r.PRMetrics {
		metrics = append(metrics, PRMetric{
			PrNumber:  m.Number,
			PrTitle:   m.Title,
			PrUrl:     m.URL,
			Assignee:  m.Assignee,
			Reviewers: append([]string{}, m.Reviewers...),
		})
	}

	// в JSON порядок map не сохранится, поэтому отдаём список в порядке графика
	logins := r.UserWorkload.SortedLogins()
	workload := make([]UserWorkload, 0, len(logins))
	for _, login := range logins {
		c := r.UserWorkload[login]
		workload = append(workload, UserWorkload{
			Login:           login,
			AssignedPrs:     c.AssignedPRs,
			AssignedReviews: c.AssignedReviews,
			Total:           c.Total,
		})
	}

	return WorkloadReport{
		PrMetrics:    metrics,
		UserWorkload: workload,
	}
}
