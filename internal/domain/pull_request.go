package domain

// PullRequest is the subset of an upstream pull request record the dashboard reads.
type PullRequest struct {
	Number            int
	Title             string
	HTMLURL           string
	URL               string
	ReviewCommentsURL string
	Milestone         *Milestone
	Assignee          *User
}

type Milestone struct {
	Title string
}

type User struct {
	Login string
}

type ReviewComment struct {
	Author User
}

// ReviewerRequest mirrors the `{ "users": [...] }` body of the requested reviewers resource.
type ReviewerRequest struct {
	Users []User
}

func (pr PullRequest) AssigneeLogin() string {
	if pr.Assignee == nil {
		return ""
	}
	return pr.Assignee.Login
}

// InMilestone reports an exact, case-sensitive title match.
func (pr PullRequest) InMilestone(title string) bool {
	return pr.Milestone != nil && pr.Milestone.Title == title
}
