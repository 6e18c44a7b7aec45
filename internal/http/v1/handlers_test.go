package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alnoi/pr-workload-dashboard/internal/domain"
	"github.com/alnoi/pr-workload-dashboard/internal/mocks"
	"github.com/alnoi/pr-workload-dashboard/internal/presenter"
)

// ----------HELPERS FOR TESTS----------

func newTestServer(t *testing.T, opts RouterOptions) (*echo.Echo, *mocks.MockWorkloadUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockWorkloadUseCase(ctrl)

	e := NewRouter(NewServerHandler(uc, presenter.NewSessions(time.Hour)), opts)

	return e, uc
}

func do(e *echo.Echo, method, target, contentType, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func submitForm(e *echo.Echo, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	form := url.Values{
		"githubToken":    {"secret"},
		"repoOwner":      {"acme"},
		"repoName":       {"gateway"},
		"milestoneTitle": {"v1.0"},
	}
	return do(e, http.MethodPost, "/metrics", echo.MIMEApplicationForm, form.Encode(), cookies...)
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}

	require.FailNow(t, "no session cookie set")
	return nil
}

var errUnexpected = errors.New("boom")

var formQuery = domain.MilestoneQuery{Token: "secret", Owner: "acme", Repo: "gateway", Milestone: "v1.0"}

func report() domain.Report {
	return domain.Report{
		PRMetrics: []domain.PRMetric{{
			Number:    5,
			Title:     "<b>Add limiter</b>",
			URL:       "https://github.com/acme/gateway/pull/5",
			Assignee:  "bob",
			Reviewers: []string{"carol", "dave"},
		}},
		UserWorkload: domain.UserWorkload{
			"bob":   {AssignedPRs: 1, Total: 1},
			"carol": {AssignedReviews: 1, Total: 1},
			"dave":  {AssignedReviews: 1, Total: 1},
		},
	}
}

// ----------DASHBOARD TESTS----------

func TestGetDashboard_Empty(t *testing.T) {
	e, _ := newTestServer(t, RouterOptions{})

	rec := do(e, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `id="metricsForm"`)
	require.Contains(t, rec.Body.String(), `id="showData"`)
	require.NotContains(t, rec.Body.String(), `id="userWorkloadChart"`)

	rec = do(e, http.MethodGet, "/chart", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostMetrics_RendersResults(t *testing.T) {
	e, uc := newTestServer(t, RouterOptions{})

	uc.EXPECT().
		Aggregate(gomock.Any(), formQuery).
		Return(report(), nil)

	rec := submitForm(e)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(t, rec)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, "/", cookie.Path)

	rec = do(e, http.MethodGet, "/", "", "", cookie)
	body := rec.Body.String()
	require.Contains(t, body, `<a href="https://github.com/acme/gateway/pull/5" target="_blank">5</a>`)
	require.Contains(t, body, "&lt;b&gt;Add limiter&lt;/b&gt;")
	require.Contains(t, body, "<td>carol, dave</td>")
	require.Contains(t, body, `id="userWorkloadChart"`)
	require.Contains(t, body, `value="gateway"`)
	require.NotContains(t, body, "secret")

	rec = do(e, http.MethodGet, "/chart", "", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Assigned PRs")
	require.Contains(t, rec.Body.String(), "Assigned Reviews")
}

func TestPostMetrics_FailureIsSilent(t *testing.T) {
	e, uc := newTestServer(t, RouterOptions{})

	uc.EXPECT().
		Aggregate(gomock.Any(), formQuery).
		Return(domain.Report{}, domain.NewDomainError(domain.ErrorCodeAPI, "list open pull requests"))

	rec := submitForm(e)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookie := sessionCookie(t, rec)

	rec = do(e, http.MethodGet, "/", "", "", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "API_ERROR")
	require.NotContains(t, rec.Body.String(), `id="loadingSpinner"`)
	require.NotContains(t, rec.Body.String(), "<a href=")

	rec = do(e, http.MethodGet, "/chart", "", "", cookie)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPostMetrics_ResultsStayWithSubmittingSession(t *testing.T) {
	e, uc := newTestServer(t, RouterOptions{})

	uc.EXPECT().
		Aggregate(gomock.Any(), formQuery).
		Return(report(), nil)

	owner := sessionCookie(t, submitForm(e))

	// another browser, no cookie
	rec := do(e, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "Add limiter")
	require.NotContains(t, rec.Body.String(), `id="userWorkloadChart"`)
	require.NotContains(t, rec.Body.String(), `value="gateway"`)
	require.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/chart", "", "").Code)

	// a guessed session id is not honoured
	forged := &http.Cookie{Name: SessionCookie, Value: "not-a-session"}
	require.NotContains(t, do(e, http.MethodGet, "/", "", "", forged).Body.String(), "Add limiter")
	require.Equal(t, http.StatusNotFound, do(e, http.MethodGet, "/chart", "", "", forged).Code)

	require.Contains(t, do(e, http.MethodGet, "/", "", "", owner).Body.String(), "&lt;b&gt;Add limiter&lt;/b&gt;")
}

func TestPostMetrics_ReusesSessionCookie(t *testing.T) {
	e, uc := newTestServer(t, RouterOptions{})

	uc.EXPECT().
		Aggregate(gomock.Any(), formQuery).
		Return(report(), nil).
		Times(2)

	first := sessionCookie(t, submitForm(e))
	second := sessionCookie(t, submitForm(e, first))
	require.Equal(t, first.Value, second.Value)
}

// ----------API TESTS----------

func TestPostWorkload_Success(t *testing.T) {
	e, uc := newTestServer(t, RouterOptions{})

	uc.EXPECT().
		Aggregate(gomock.Any(), formQuery).
		Return(report(), nil)

	rec := do(e, http.MethodPost, "/api/v1/workload", echo.MIMEApplicationJSON,
		`{"token":"secret","owner":"acme","repo":"gateway","milestone":"v1.0"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got WorkloadReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	require.Equal(t, []PRMetric{{
		PrNumber:  5,
		PrTitle:   "<b>Add limiter</b>",
		PrUrl:     "https://github.com/acme/gateway/pull/5",
		Assignee:  "bob",
		Reviewers: []string{"carol", "dave"},
	}}, got.PrMetrics)
	require.Equal(t, []UserWorkload{
		{Login: "bob", AssignedPrs: 1, Total: 1},
		{Login: "carol", AssignedReviews: 1, Total: 1},
		{Login: "dave", AssignedReviews: 1, Total: 1},
	}, got.UserWorkload)
}

func TestPostWorkload_EmptyReportEncodesEmptyLists(t *testing.T) {
	e, uc := newTestServer(t, RouterOptions{})

	uc.EXPECT().
		Aggregate(gomock.Any(), gomock.Any()).
		Return(domain.Report{PRMetrics: []domain.PRMetric{}, UserWorkload: domain.UserWorkload{}}, nil)

	rec := do(e, http.MethodPost, "/api/v1/workload", echo.MIMEApplicationJSON,
		`{"owner":"acme","repo":"gateway","milestone":"none"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"pr_metrics":[],"user_workload":[]}`, rec.Body.String())
}

func TestPostWorkload_ErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid input", domain.NewDomainError(domain.ErrorCodeInvalidInput, "milestone title is required"), http.StatusBadRequest, "INVALID_INPUT"},
		{"network", domain.NewDomainError(domain.ErrorCodeNetwork, "list open pull requests"), http.StatusBadGateway, "NETWORK_ERROR"},
		{"api", domain.NewDomainError(domain.ErrorCodeAPI, "list review comments"), http.StatusBadGateway, "API_ERROR"},
		{"unknown", errUnexpected, http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, uc := newTestServer(t, RouterOptions{})

			uc.EXPECT().
				Aggregate(gomock.Any(), gomock.Any()).
				Return(domain.Report{}, tc.err)

			rec := do(e, http.MethodPost, "/api/v1/workload", echo.MIMEApplicationJSON,
				`{"owner":"acme","repo":"gateway","milestone":"v1.0"}`)
			require.Equal(t, tc.status, rec.Code)

			var got ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Equal(t, ErrorResponseErrorCode(tc.code), got.Error.Code)
		})
	}
}

func TestPostWorkload_InvalidJSON(t *testing.T) {
	e, _ := newTestServer(t, RouterOptions{})

	rec := do(e, http.MethodPost, "/api/v1/workload", echo.MIMEApplicationJSON, `{"owner":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitRateLimit(t *testing.T) {
	e, uc := newTestServer(t, RouterOptions{SubmitRateLimit: 1})

	uc.EXPECT().
		Aggregate(gomock.Any(), gomock.Any()).
		Return(report(), nil).
		Times(1)

	body := `{"owner":"acme","repo":"gateway","milestone":"v1.0"}`
	require.Equal(t, http.StatusOK, do(e, http.MethodPost, "/api/v1/workload", echo.MIMEApplicationJSON, body).Code)
	require.Equal(t, http.StatusTooManyRequests, do(e, http.MethodPost, "/api/v1/workload", echo.MIMEApplicationJSON, body).Code)
}

func TestHealth(t *testing.T) {
	e, _ := newTestServer(t, RouterOptions{})
	require.Equal(t, http.StatusOK, do(e, http.MethodGet, "/health", "", "").Code)
}
