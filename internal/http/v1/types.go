package v1

type ErrorResponseErrorCode string

type ErrorResponse struct {
	Error struct {
		Code    ErrorResponseErrorCode `json:"code"`
		Message string                 `json:"message"`
	} `json:"error"`
}

// SubmitForm carries the dashboard form fields.
type SubmitForm struct {
	GithubToken    string `form:"githubToken"`
	RepoOwner      string `form:"repoOwner"`
	RepoName       string `form:"repoName"`
	MilestoneTitle string `form:"milestoneTitle"`
}

type PostWorkloadJSONRequestBody struct {
	Token     string `json:"token"`
	Owner     string `json:"owner"`
	Repo      string `json:"repo"`
	Milestone string `json:"milestone"`
}

type PRMetric struct {
	PrNumber  int      `json:"pr_number"`
	PrTitle   string   `json:"pr_title"`
	PrUrl     string   `json:"pr_url"`
	Assignee  string   `json:"assignee"`
	Reviewers []string `json:"reviewers"`
}

type UserWorkload struct {
	Login           string `json:"login"`
	AssignedPrs     int    `json:"assigned_prs"`
	AssignedReviews int    `json:"assigned_reviews"`
	Total           int    `json:"total"`
}

type WorkloadReport struct {
	PrMetrics    []PRMetric     `json:"pr_metrics"`
	UserWorkload []UserWorkload `json:"user_workload"`
}
