package models

// GitHubProfile is the subset of the GitHub user payload the site shows
type GitHubProfile struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Company     string `json:"company"`
	Blog        string `json:"blog"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// ContributionDay is one cell of the contribution calendar
type ContributionDay struct {
	Date  string `json:"date"`  // YYYY-MM-DD
	Count int    `json:"count"`
	Level int    `json:"level"` // 0-4, GitHub-style intensity
}

// GitHubRepo is a repository summary with its language breakdown attached
type GitHubRepo struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	HTMLURL     string             `json:"html_url"`
	Language    string             `json:"language"`
	Stars       int                `json:"stars"`
	Forks       int                `json:"forks"`
	UpdatedAt   string             `json:"updated_at"`
	CreatedAt   string             `json:"created_at"`
	IsFork      bool               `json:"is_fork"`
	Topics      []string           `json:"topics"`
	OpenIssues  int                `json:"open_issues"`
	Languages   map[string]float64 `json:"languages"` // language -> percentage
}
