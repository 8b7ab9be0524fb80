package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JemAndrew/JemAndrewWebsite/internal/config"
	"github.com/rs/zerolog"
)

func newTestGitHub(baseURL string) *githubService {
	cfg := &config.GitHubConfig{Username: "testuser", Timeout: 2 * time.Second}
	svc := newGitHubService(cfg, zerolog.Nop())
	svc.baseURL = baseURL
	return svc
}

func TestGitHubUserProfile(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/testuser" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"login":"testuser","name":"Test User","public_repos":12,"followers":3,"following":7}`)
	}))
	defer server.Close()

	svc := newTestGitHub(server.URL)

	profile := svc.UserProfile(context.Background())
	if profile.Login != "testuser" || profile.PublicRepos != 12 {
		t.Fatalf("Unexpected profile: %+v", profile)
	}

	// Second call must come from the cache.
	svc.UserProfile(context.Background())
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("Expected 1 upstream call, got %d", got)
	}
}

func TestGitHubUserProfile_FallbackOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := newTestGitHub(server.URL)

	profile := svc.UserProfile(context.Background())
	if profile == nil {
		t.Fatal("Expected fallback profile, got nil")
	}
	if profile.Login != "testuser" {
		t.Errorf("Fallback should carry the configured username, got %q", profile.Login)
	}
	if profile.Name == "" {
		t.Error("Fallback profile should be populated")
	}
}

func TestGitHubRepositories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/testuser/repos":
			fmt.Fprint(w, `[
				{"name":"alpha","description":"First repo","html_url":"https://github.com/testuser/alpha","language":"Go","stargazers_count":4,"fork":false},
				{"name":"beta","description":"","html_url":"https://github.com/testuser/beta","language":"Python","stargazers_count":1,"fork":false}
			]`)
		case "/repos/testuser/alpha/languages":
			fmt.Fprint(w, `{"Go":750,"Makefile":250}`)
		case "/repos/testuser/beta/languages":
			fmt.Fprint(w, `{}`)
		default:
			t.Errorf("Unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	svc := newTestGitHub(server.URL)

	repos := svc.Repositories(context.Background(), 6)
	if len(repos) != 2 {
		t.Fatalf("Expected 2 repositories, got %d", len(repos))
	}
	if repos[0].Name != "alpha" || repos[0].Stars != 4 {
		t.Errorf("Unexpected first repo: %+v", repos[0])
	}
	if repos[1].Description != "No description available" {
		t.Errorf("Expected default description, got %q", repos[1].Description)
	}
	if repos[0].Languages["Go"] != 75.0 || repos[0].Languages["Makefile"] != 25.0 {
		t.Errorf("Unexpected language percentages: %v", repos[0].Languages)
	}
	if len(repos[1].Languages) != 0 {
		t.Errorf("Expected empty languages for beta, got %v", repos[1].Languages)
	}
}

func TestGitHubRepositories_FallbackOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := newTestGitHub(server.URL)

	repos := svc.Repositories(context.Background(), 6)
	if len(repos) == 0 {
		t.Fatal("Expected fallback repositories")
	}
	for _, repo := range repos {
		if repo.Name == "" || repo.HTMLURL == "" {
			t.Errorf("Fallback repo missing fields: %+v", repo)
		}
	}
}

func TestGitHubCommitActivity(t *testing.T) {
	recent := time.Now().UTC().Add(-24 * time.Hour)
	old := time.Now().UTC().AddDate(0, 0, -60)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[
			{"type":"PushEvent","created_at":%q,"payload":{"commits":[{},{},{}]}},
			{"type":"PushEvent","created_at":%q,"payload":{"commits":[{}]}},
			{"type":"WatchEvent","created_at":%q,"payload":{}},
			{"type":"PushEvent","created_at":%q,"payload":{"commits":[{}]}}
		]`,
			recent.Format(time.RFC3339),
			recent.Format(time.RFC3339),
			recent.Format(time.RFC3339),
			old.Format(time.RFC3339))
	}))
	defer server.Close()

	svc := newTestGitHub(server.URL)

	activity := svc.CommitActivity(context.Background(), 30)
	day := recent.Format("2006-01-02")
	if activity[day] != 4 {
		t.Errorf("Expected 4 commits on %s, got %d", day, activity[day])
	}
	if len(activity) != 1 {
		t.Errorf("Expected only recent push events counted, got %v", activity)
	}
}

func TestGitHubCommitActivity_EmptyOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	svc := newTestGitHub(server.URL)

	activity := svc.CommitActivity(context.Background(), 30)
	if activity == nil {
		t.Fatal("Expected empty map, got nil")
	}
	if len(activity) != 0 {
		t.Errorf("Expected empty activity, got %v", activity)
	}
}

func TestGitHubContributionCalendar(t *testing.T) {
	recent := time.Now().UTC().Add(-24 * time.Hour)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[
			{"type":"PushEvent","created_at":%q,"payload":{"commits":[{},{},{},{},{},{},{}]}}
		]`, recent.Format(time.RFC3339))
	}))
	defer server.Close()

	svc := newTestGitHub(server.URL)

	calendar := svc.ContributionCalendar(context.Background())
	if len(calendar) != 366 {
		t.Fatalf("Expected 366 calendar days, got %d", len(calendar))
	}

	day := recent.Format("2006-01-02")
	var active, zeros int
	for i, entry := range calendar {
		if i > 0 && entry.Date <= calendar[i-1].Date {
			t.Fatalf("Calendar not in ascending date order at %d: %q after %q", i, entry.Date, calendar[i-1].Date)
		}
		switch {
		case entry.Date == day:
			active++
			if entry.Count != 7 {
				t.Errorf("Expected 7 commits on %s, got %d", day, entry.Count)
			}
			if entry.Level != 4 {
				t.Errorf("Expected level capped at 4, got %d", entry.Level)
			}
		default:
			zeros++
			if entry.Count != 0 || entry.Level != 0 {
				t.Errorf("Expected empty day %s, got %+v", entry.Date, entry)
			}
		}
	}
	if active != 1 {
		t.Errorf("Expected the active day to appear once, got %d", active)
	}
}

func TestGitHubLanguageStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/testuser/repos":
			fmt.Fprint(w, `[
				{"name":"alpha","html_url":"https://github.com/testuser/alpha"},
				{"name":"beta","html_url":"https://github.com/testuser/beta"}
			]`)
		case "/repos/testuser/alpha/languages":
			fmt.Fprint(w, `{"Go":1000}`)
		case "/repos/testuser/beta/languages":
			fmt.Fprint(w, `{"Go":500,"Python":500}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	svc := newTestGitHub(server.URL)

	stats := svc.LanguageStats(context.Background())
	// alpha is 100% Go, beta is 50/50, so Go should dominate.
	if stats["Go"] <= stats["Python"] {
		t.Errorf("Expected Go to dominate, got %v", stats)
	}
	var sum float64
	for _, pct := range stats {
		sum += pct
	}
	if sum < 99.0 || sum > 101.0 {
		t.Errorf("Expected percentages summing to ~100, got %v (sum %f)", stats, sum)
	}
}
