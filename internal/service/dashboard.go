package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/steelcraft/catalog-server/internal/config"
	"github.com/steelcraft/catalog-server/internal/model"
	"github.com/steelcraft/catalog-server/internal/repository"
)

// Placeholder values surfaced on the dashboard; there is no analytics or
// billing source behind them.
const (
	placeholderActiveUsers = 1247
	placeholderRevenue     = 45231
)

const activityAction = "New quote request received"

type DashboardStats struct {
	ProductCount      int `json:"productCount"`
	QuoteRequestCount int `json:"quoteRequestCount"`
	ThisMonthQuotes   int `json:"thisMonthQuotes"`
	ActiveUsers       int `json:"activeUsers"`
	Revenue           int `json:"revenue"`
}

type Activity struct {
	Action  string `json:"action"`
	Details string `json:"details"`
	Time    string `json:"time"`
	Type    string `json:"type"`
}

type Dashboard struct {
	Stats            DashboardStats `json:"stats"`
	RecentActivities []Activity     `json:"recentActivities"`
}

// DashboardService derives read-only statistics and a recent-activity feed
// from the quote request log. Authorization has already happened by the time
// it runs.
type DashboardService struct {
	productRepo repository.ProductRepository
	quoteRepo   repository.QuoteRequestRepository
	now         func() time.Time
}

func NewDashboardService(productRepo repository.ProductRepository, quoteRepo repository.QuoteRequestRepository) *DashboardService {
	return &DashboardService{
		productRepo: productRepo,
		quoteRepo:   quoteRepo,
		now:         time.Now,
	}
}

func (s *DashboardService) Dashboard(ctx context.Context) (*Dashboard, error) {
	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	quotes, err := s.quoteRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	return &Dashboard{
		Stats: DashboardStats{
			ProductCount:      productCount,
			QuoteRequestCount: len(quotes),
			ThisMonthQuotes:   countThisMonth(quotes, now),
			ActiveUsers:       placeholderActiveUsers,
			Revenue:           placeholderRevenue,
		},
		RecentActivities: recentActivity(quotes, config.RecentActivityLimit, now),
	}, nil
}

// countThisMonth counts quotes created on or after the first instant of the
// current calendar month in server-local time. The boundary is recomputed on
// every call, never cached.
func countThisMonth(quotes []model.QuoteRequest, now time.Time) int {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	count := 0
	for _, q := range quotes {
		if q.CreatedAt != nil && !q.CreatedAt.Before(monthStart) {
			count++
		}
	}
	return count
}

// recentActivity maps the newest quotes to activity entries. The sort is
// stable and descending by creation time; a missing timestamp sorts as oldest.
func recentActivity(quotes []model.QuoteRequest, limit int, now time.Time) []Activity {
	sorted := make([]model.QuoteRequest, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return quoteUnixMillis(sorted[i]) > quoteUnixMillis(sorted[j])
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	activities := make([]Activity, 0, len(sorted))
	for _, q := range sorted {
		activities = append(activities, Activity{
			Action:  activityAction,
			Details: activityDetails(q),
			Time:    activityTime(q, now),
			Type:    "quote",
		})
	}
	return activities
}

func quoteUnixMillis(q model.QuoteRequest) int64 {
	if q.CreatedAt == nil {
		return 0
	}
	return q.CreatedAt.UnixMilli()
}

func activityDetails(q model.QuoteRequest) string {
	interest := "General inquiry"
	if q.ProductInterest != nil && *q.ProductInterest != "" {
		interest = *q.ProductInterest
	}

	who := q.FirstName + " " + q.LastName
	if q.Company != nil && *q.Company != "" {
		who = *q.Company
	}

	return interest + " - " + who
}

func activityTime(q model.QuoteRequest, now time.Time) string {
	if q.CreatedAt == nil {
		return "Unknown"
	}
	return relativeTime(*q.CreatedAt, now)
}

// relativeTime renders elapsed time as "N minutes/hours/days ago". The unit is
// always plural, even for 1, and negative elapsed time clamps to zero; callers
// may depend on these exact strings.
func relativeTime(t, now time.Time) string {
	minutes := int(now.Sub(t) / time.Minute)
	if minutes < 0 {
		minutes = 0
	}

	hours := minutes / 60
	days := hours / 24

	switch {
	case minutes < 60:
		return fmt.Sprintf("%d minutes ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
