package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/JemAndrew/JemAndrewWebsite/internal/config"
	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// Cache lifetimes per fetch kind
const (
	profileCacheTTL  = 1 * time.Hour
	repoListCacheTTL = 30 * time.Minute
	languageCacheTTL = 6 * time.Hour
	activityCacheTTL = 15 * time.Minute
	langStatCacheTTL = 2 * time.Hour
)

const defaultRepoLimit = 6

// githubService is a read-through cache in front of the GitHub API.
// Upstream failures return fixed fallback payloads of identical shape,
// never an error: the pages render either way.
type githubService struct {
	cfg     *config.GitHubConfig
	client  *http.Client
	cache   *cache.Cache
	baseURL string
	log     zerolog.Logger
}

func newGitHubService(cfg *config.GitHubConfig, log zerolog.Logger) *githubService {
	return &githubService{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		cache:   cache.New(5*time.Minute, 10*time.Minute),
		baseURL: "https://api.github.com",
		log:     log.With().Str("component", "github").Logger(),
	}
}

// UserProfile returns the GitHub user payload, cached for an hour
func (s *githubService) UserProfile(ctx context.Context) *models.GitHubProfile {
	key := "user:" + s.cfg.Username
	if cached, found := s.cache.Get(key); found {
		return cached.(*models.GitHubProfile)
	}

	var profile models.GitHubProfile
	url := fmt.Sprintf("%s/users/%s", s.baseURL, s.cfg.Username)
	if err := s.fetchJSON(ctx, url, &profile); err != nil {
		s.log.Error().Err(err).Msg("Failed to fetch GitHub user, serving fallback")
		return s.fallbackProfile()
	}

	s.cache.Set(key, &profile, profileCacheTTL)
	return &profile
}

// Repositories returns the most recently updated repositories with
// language breakdowns attached, cached for 30 minutes
func (s *githubService) Repositories(ctx context.Context, limit int) []models.GitHubRepo {
	if limit <= 0 {
		limit = defaultRepoLimit
	}
	key := fmt.Sprintf("repos:%s:%d", s.cfg.Username, limit)
	if cached, found := s.cache.Get(key); found {
		return cached.([]models.GitHubRepo)
	}

	var raw []struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		HTMLURL     string   `json:"html_url"`
		Language    string   `json:"language"`
		Stars       int      `json:"stargazers_count"`
		Forks       int      `json:"forks_count"`
		UpdatedAt   string   `json:"updated_at"`
		CreatedAt   string   `json:"created_at"`
		Fork        bool     `json:"fork"`
		Topics      []string `json:"topics"`
		OpenIssues  int      `json:"open_issues_count"`
	}
	url := fmt.Sprintf("%s/users/%s/repos?sort=updated&direction=desc&per_page=%d&type=owner",
		s.baseURL, s.cfg.Username, limit)
	if err := s.fetchJSON(ctx, url, &raw); err != nil {
		s.log.Error().Err(err).Msg("Failed to fetch GitHub repositories, serving fallback")
		return s.fallbackRepos()
	}

	repos := make([]models.GitHubRepo, 0, len(raw))
	for _, r := range raw {
		description := r.Description
		if description == "" {
			description = "No description available"
		}
		repos = append(repos, models.GitHubRepo{
			Name:        r.Name,
			Description: description,
			HTMLURL:     r.HTMLURL,
			Language:    r.Language,
			Stars:       r.Stars,
			Forks:       r.Forks,
			UpdatedAt:   r.UpdatedAt,
			CreatedAt:   r.CreatedAt,
			IsFork:      r.Fork,
			Topics:      r.Topics,
			OpenIssues:  r.OpenIssues,
			Languages:   s.repositoryLanguages(ctx, r.Name),
		})
	}

	s.cache.Set(key, repos, repoListCacheTTL)
	return repos
}

// repositoryLanguages returns per-language percentages for one
// repository, cached for six hours. Failures yield an empty map.
func (s *githubService) repositoryLanguages(ctx context.Context, repo string) map[string]float64 {
	key := fmt.Sprintf("langs:%s:%s", s.cfg.Username, repo)
	if cached, found := s.cache.Get(key); found {
		return cached.(map[string]float64)
	}

	var byteCounts map[string]int64
	url := fmt.Sprintf("%s/repos/%s/%s/languages", s.baseURL, s.cfg.Username, repo)
	if err := s.fetchJSON(ctx, url, &byteCounts); err != nil {
		s.log.Error().Err(err).Str("repo", repo).Msg("Failed to fetch repository languages")
		return map[string]float64{}
	}

	var total int64
	for _, n := range byteCounts {
		total += n
	}
	percentages := make(map[string]float64, len(byteCounts))
	if total > 0 {
		for lang, n := range byteCounts {
			percentages[lang] = round1(float64(n) / float64(total) * 100)
		}
	}

	s.cache.Set(key, percentages, languageCacheTTL)
	return percentages
}

// CommitActivity returns push-event commit counts bucketed by day for
// the given window, cached for 15 minutes
func (s *githubService) CommitActivity(ctx context.Context, days int) map[string]int {
	if days <= 0 {
		days = 30
	}
	key := fmt.Sprintf("activity:%s:%d", s.cfg.Username, days)
	if cached, found := s.cache.Get(key); found {
		return cached.(map[string]int)
	}

	var events []struct {
		Type      string `json:"type"`
		CreatedAt string `json:"created_at"`
		Payload   struct {
			Commits []json.RawMessage `json:"commits"`
		} `json:"payload"`
	}
	url := fmt.Sprintf("%s/users/%s/events?per_page=100", s.baseURL, s.cfg.Username)
	if err := s.fetchJSON(ctx, url, &events); err != nil {
		s.log.Error().Err(err).Msg("Failed to fetch GitHub events, serving empty activity")
		return map[string]int{}
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	activity := make(map[string]int)
	for _, ev := range events {
		if ev.Type != "PushEvent" {
			continue
		}
		at, err := time.Parse(time.RFC3339, ev.CreatedAt)
		if err != nil || at.Before(cutoff) {
			continue
		}
		activity[at.Format("2006-01-02")] += len(ev.Payload.Commits)
	}

	s.cache.Set(key, activity, activityCacheTTL)
	return activity
}

// ContributionCalendar returns a GitHub-style calendar for the past
// year, derived from commit activity. The events API only reaches back
// so far, so older days simply show zero.
func (s *githubService) ContributionCalendar(ctx context.Context) []models.ContributionDay {
	activity := s.CommitActivity(ctx, 365)

	end := time.Now()
	calendar := make([]models.ContributionDay, 0, 366)
	for d := end.AddDate(0, 0, -365); !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		count := activity[date]
		level := count
		if level > 4 {
			level = 4
		}
		calendar = append(calendar, models.ContributionDay{
			Date:  date,
			Count: count,
			Level: level,
		})
	}
	return calendar
}

// LanguageStats aggregates language usage across recent repositories,
// normalized to percentages
func (s *githubService) LanguageStats(ctx context.Context) map[string]float64 {
	key := "langstats:" + s.cfg.Username
	if cached, found := s.cache.Get(key); found {
		return cached.(map[string]float64)
	}

	totals := make(map[string]float64)
	for _, repo := range s.Repositories(ctx, 20) {
		for lang, pct := range repo.Languages {
			totals[lang] += pct
		}
	}

	var sum float64
	for _, n := range totals {
		sum += n
	}
	stats := make(map[string]float64, len(totals))
	if sum > 0 {
		for lang, n := range totals {
			stats[lang] = round1(n / sum * 100)
		}
	}

	s.cache.Set(key, stats, langStatCacheTTL)
	return stats
}

func (s *githubService) fetchJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "Portfolio-"+s.cfg.Username)
	if s.cfg.Token != "" {
		req.Header.Set("Authorization", "token "+s.cfg.Token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (s *githubService) fallbackProfile() *models.GitHubProfile {
	return &models.GitHubProfile{
		Login:       s.cfg.Username,
		Name:        "Jem Andrew",
		Bio:         "Software engineer focused on backend development and machine learning",
		Location:    "Newcastle, UK",
		PublicRepos: 5,
		Followers:   10,
		Following:   15,
	}
}

func (s *githubService) fallbackRepos() []models.GitHubRepo {
	return []models.GitHubRepo{
		{
			Name:        "crypto-exchange",
			Description: "Cryptocurrency exchange platform with order matching engine",
			HTMLURL:     fmt.Sprintf("https://github.com/%s/crypto-exchange", s.cfg.Username),
			Language:    "Python",
			Stars:       8,
			Forks:       2,
			UpdatedAt:   "2024-01-15T10:00:00Z",
			CreatedAt:   "2023-12-01T10:00:00Z",
			Topics:      []string{"fastapi", "cryptocurrency", "websockets"},
			Languages:   map[string]float64{"Python": 85.5, "JavaScript": 10.2, "HTML": 4.3},
		},
		{
			Name:        "portfolio",
			Description: "Portfolio website backend",
			HTMLURL:     fmt.Sprintf("https://github.com/%s/portfolio", s.cfg.Username),
			Language:    "Go",
			Stars:       5,
			Forks:       1,
			UpdatedAt:   "2024-01-20T15:30:00Z",
			CreatedAt:   "2024-01-10T09:00:00Z",
			Topics:      []string{"portfolio", "web-development"},
			Languages:   map[string]float64{"Go": 75.0, "JavaScript": 15.0, "CSS": 10.0},
		},
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
