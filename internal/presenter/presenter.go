// Package presenter keeps the dashboard state between submissions: the loading flag,
// the rendered PR table and the current workload chart.
package presenter

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"

	"github.com/alnoi/pr-workload-dashboard/internal/domain"
	"github.com/alnoi/pr-workload-dashboard/internal/logger"
	"github.com/alnoi/pr-workload-dashboard/internal/metrics"
)

const (
	SeriesAssignedPRs     = "Assigned PRs"
	SeriesAssignedReviews = "Assigned Reviews"
)

var ErrNoChart = errors.New("no chart rendered yet")

type Aggregator interface {
	Aggregate(ctx context.Context, q domain.MilestoneQuery) (domain.Report, error)
}

type TableRow struct {
	Number    int
	URL       string
	Title     string
	Assignee  string
	Reviewers string
}

// View is a snapshot of the dashboard for one page render.
type View struct {
	Loading   bool
	Rows      []TableRow
	HasChart  bool
	Owner     string
	Repo      string
	Milestone string
}

type Presenter struct {
	mu sync.Mutex

	busy    bool
	loading bool
	rows    []TableRow
	chart   *charts.Bar
	last    domain.MilestoneQuery
}

func New() *Presenter {
	return &Presenter{}
}

// Submit runs one cycle: loading on, aggregate, render, loading off.
// A failed aggregation is only logged and leaves the previous render in place.
// A submission that arrives while a cycle is running is rejected with ErrorCodeBusy.
func (p *Presenter) Submit(ctx context.Context, q domain.MilestoneQuery, agg Aggregator) error {
	if !p.tryBegin(q) {
		metrics.SubmissionsRejectedTotal.Inc()
		derr := domain.NewDomainError(domain.ErrorCodeBusy, "another submission is in progress")
		logger.LogDomainAware(ctx, derr, "submission rejected")
		return derr
	}
	defer p.finish()

	p.SetLoading(true)
	defer p.SetLoading(false)

	report, err := agg.Aggregate(ctx, q)
	if err != nil {
		logger.LogDomainAware(ctx, err, "error fetching metrics")
		return err
	}

	p.RenderTable(report.PRMetrics)
	p.RenderWorkloadChart(report.UserWorkload)

	logger.FromContext(ctx).Info("dashboard rendered",
		zap.Int("prs", len(report.PRMetrics)),
		zap.Int("users", len(report.UserWorkload)),
	)

	return nil
}

func (p *Presenter) SetLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.loading = loading
}

// RenderTable replaces the table rows with one row per metric.
func (p *Presenter) RenderTable(prMetrics []domain.PRMetric) {
	rows := make([]TableRow, 0, len(prMetrics))
	for _, m := range prMetrics {
		rows = append(rows, TableRow{
			Number:    m.Number,
			URL:       m.URL,
			Title:     m.Title,
			Assignee:  m.Assignee,
			Reviewers: strings.Join(m.Reviewers, ", "),
		})
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.rows = rows
}

// RenderWorkloadChart swaps in a chart for w; the previous chart is released.
func (p *Presenter) RenderWorkloadChart(w domain.UserWorkload) {
	bar := newWorkloadChart(w)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.chart = bar
}

func (p *Presenter) WriteChart(w io.Writer) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.chart == nil {
		return ErrNoChart
	}

	return p.chart.Render(w)
}

func (p *Presenter) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	return View{
		Loading:   p.loading,
		Rows:      append([]TableRow(nil), p.rows...),
		HasChart:  p.chart != nil,
		Owner:     p.last.Owner,
		Repo:      p.last.Repo,
		Milestone: p.last.Milestone,
	}
}

// Busy reports whether a cycle is in flight.
func (p *Presenter) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.busy
}

func (p *Presenter) tryBegin(q domain.MilestoneQuery) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.busy {
		return false
	}

	p.busy = true
	// the token is never kept
	p.last = domain.MilestoneQuery{Owner: q.Owner, Repo: q.Repo, Milestone: q.Milestone}

	return true
}

func (p *Presenter) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.busy = false
}

func newWorkloadChart(w domain.UserWorkload) *charts.Bar {
	logins := w.SortedLogins()

	prs := make([]opts.BarData, 0, len(logins))
	reviews := make([]opts.BarData, 0, len(logins))
	for _, login := range logins {
		c := w[login]
		prs = append(prs, opts.BarData{Name: login, Value: c.AssignedPRs})
		reviews = append(reviews, opts.BarData{Name: login, Value: c.AssignedReviews})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "User workload",
			Width:     "100%",
			Height:    "480px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "User workload"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0}),
	)

	bar.SetXAxis(logins).
		AddSeries(SeriesAssignedPRs, prs).
		AddSeries(SeriesAssignedReviews, reviews)

	return bar
}
