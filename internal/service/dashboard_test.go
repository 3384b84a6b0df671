package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steelcraft/catalog-server/internal/model"
	"github.com/steelcraft/catalog-server/internal/repository"
	"github.com/steelcraft/catalog-server/internal/seed"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func quoteAt(created *time.Time, firstName string) model.QuoteRequest {
	return model.QuoteRequest{
		FirstName: firstName,
		LastName:  "Doe",
		Email:     firstName + "@example.com",
		Message:   "Need pricing",
		CreatedAt: created,
	}
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"five minutes", 5 * time.Minute, "5 minutes ago"},
		{"zero elapsed", 0, "0 minutes ago"},
		{"negative elapsed clamps to zero", -10 * time.Minute, "0 minutes ago"},
		{"one minute stays plural", time.Minute, "1 minutes ago"},
		{"sub-minute floors to zero", 59 * time.Second, "0 minutes ago"},
		{"59 minutes", 59 * time.Minute, "59 minutes ago"},
		{"60 minutes rolls to hours", 60 * time.Minute, "1 hours ago"},
		{"130 minutes", 130 * time.Minute, "2 hours ago"},
		{"23 hours", 23 * time.Hour, "23 hours ago"},
		{"24 hours rolls to days", 24 * time.Hour, "1 days ago"},
		{"3000 minutes", 3000 * time.Minute, "2 days ago"},
		{"ten days", 10 * 24 * time.Hour, "10 days ago"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, relativeTime(now.Add(-tc.elapsed), now))
		})
	}
}

func TestCountThisMonth(t *testing.T) {
	now := time.Date(2025, time.March, 20, 15, 30, 0, 0, time.UTC)

	lastMonth := time.Date(2025, time.February, 25, 10, 0, 0, 0, time.UTC)
	monthDay1 := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	monthDay15 := time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)

	quotes := []model.QuoteRequest{
		quoteAt(&lastMonth, "Alice"),
		quoteAt(&monthDay1, "Bob"),
		quoteAt(&monthDay15, "Carol"),
	}

	assert.Equal(t, 2, countThisMonth(quotes, now))

	t.Run("first instant of the month is inclusive", func(t *testing.T) {
		assert.Equal(t, 1, countThisMonth([]model.QuoteRequest{quoteAt(&monthDay1, "Bob")}, now))
	})

	t.Run("nil timestamps never count", func(t *testing.T) {
		assert.Equal(t, 0, countThisMonth([]model.QuoteRequest{quoteAt(nil, "Nobody")}, now))
	})
}

func TestRecentActivity(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("never returns more than limit entries, newest first", func(t *testing.T) {
		var quotes []model.QuoteRequest
		for i := 0; i < 8; i++ {
			created := now.Add(-time.Duration(i) * time.Hour)
			quotes = append(quotes, quoteAt(&created, fmt.Sprintf("Person%d", i)))
		}

		activities := recentActivity(quotes, 5, now)
		require.Len(t, activities, 5)
		assert.Equal(t, "General inquiry - Person0 Doe", activities[0].Details)
		assert.Equal(t, "General inquiry - Person4 Doe", activities[4].Details)
	})

	t.Run("ties preserve insertion order", func(t *testing.T) {
		created := now.Add(-10 * time.Minute)
		quotes := []model.QuoteRequest{
			quoteAt(&created, "First"),
			quoteAt(&created, "Second"),
			quoteAt(&created, "Third"),
		}

		activities := recentActivity(quotes, 5, now)
		require.Len(t, activities, 3)
		assert.Equal(t, "General inquiry - First Doe", activities[0].Details)
		assert.Equal(t, "General inquiry - Second Doe", activities[1].Details)
		assert.Equal(t, "General inquiry - Third Doe", activities[2].Details)
	})

	t.Run("nil timestamp sorts oldest and renders Unknown", func(t *testing.T) {
		created := now.Add(-30 * time.Minute)
		quotes := []model.QuoteRequest{
			quoteAt(nil, "Ghost"),
			quoteAt(&created, "Recent"),
		}

		activities := recentActivity(quotes, 5, now)
		require.Len(t, activities, 2)
		assert.Equal(t, "General inquiry - Recent Doe", activities[0].Details)
		assert.Equal(t, "30 minutes ago", activities[0].Time)
		assert.Equal(t, "General inquiry - Ghost Doe", activities[1].Details)
		assert.Equal(t, "Unknown", activities[1].Time)
	})

	t.Run("details prefer product interest and company", func(t *testing.T) {
		created := now.Add(-5 * time.Minute)
		quote := quoteAt(&created, "Jane")
		quote.ProductInterest = strPtr("Hydraulic Press")
		quote.Company = strPtr("Acme Fabrication")

		activities := recentActivity([]model.QuoteRequest{quote}, 5, now)
		require.Len(t, activities, 1)
		assert.Equal(t, "Hydraulic Press - Acme Fabrication", activities[0].Details)
		assert.Equal(t, "New quote request received", activities[0].Action)
		assert.Equal(t, "quote", activities[0].Type)
	})

	t.Run("empty optional strings fall back like missing ones", func(t *testing.T) {
		created := now.Add(-5 * time.Minute)
		quote := quoteAt(&created, "Jane")
		quote.ProductInterest = strPtr("")
		quote.Company = strPtr("")

		activities := recentActivity([]model.QuoteRequest{quote}, 5, now)
		require.Len(t, activities, 1)
		assert.Equal(t, "General inquiry - Jane Doe", activities[0].Details)
	})
}

func TestDashboardService_Dashboard(t *testing.T) {
	ctx := context.Background()

	productRepo := repository.NewMemoryProductRepository()
	for _, p := range seed.Products() {
		_, err := productRepo.Insert(ctx, p)
		require.NoError(t, err)
	}

	quoteRepo := repository.NewMemoryQuoteRequestRepository()
	now := time.Date(2025, time.March, 20, 15, 30, 0, 0, time.UTC)

	quoteRepo.Append(quoteAt(timePtr(time.Date(2025, time.February, 25, 10, 0, 0, 0, time.UTC)), "Alice"))
	quoteRepo.Append(quoteAt(timePtr(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)), "Bob"))
	quoteRepo.Append(quoteAt(timePtr(time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC)), "Carol"))

	svc := NewDashboardService(productRepo, quoteRepo)
	svc.now = func() time.Time { return now }

	dashboard, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 28, dashboard.Stats.ProductCount)
	assert.Equal(t, 3, dashboard.Stats.QuoteRequestCount)
	assert.Equal(t, 2, dashboard.Stats.ThisMonthQuotes)
	assert.Equal(t, 1247, dashboard.Stats.ActiveUsers)
	assert.Equal(t, 45231, dashboard.Stats.Revenue)

	require.Len(t, dashboard.RecentActivities, 3)
	assert.Equal(t, "General inquiry - Carol Doe", dashboard.RecentActivities[0].Details)
	assert.Equal(t, "General inquiry - Alice Doe", dashboard.RecentActivities[2].Details)
}
