package models

// Profile holds the personal information shown across the site.
// At most one row exists; the store rejects a second insert.
type Profile struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Title        string `json:"title" db:"title"`
	Email        string `json:"email" db:"email"`
	Phone        string `json:"phone,omitempty" db:"phone"`
	Location     string `json:"location" db:"location"`
	Bio          string `json:"bio" db:"bio"`
	ExtendedBio  string `json:"extended_bio,omitempty" db:"extended_bio"`
	TypingTexts  string `json:"-" db:"typing_texts"` // comma-separated phrases for the typing animation
	ProfileImage string `json:"profile_image,omitempty" db:"profile_image"`
	CVFile       string `json:"cv_file,omitempty" db:"cv_file"`
	GitHubURL    string `json:"github_url,omitempty" db:"github_url"`
	LinkedInURL  string `json:"linkedin_url,omitempty" db:"linkedin_url"`
}

// ProfileView is the render-ready profile with the typing phrases parsed out.
type ProfileView struct {
	Profile
	TypingPhrases []string `json:"typing_phrases"`
}

// SiteSettings holds site-wide presentation configuration.
// Singleton with the same insert policy as Profile.
type SiteSettings struct {
	ID              int64  `json:"id" db:"id"`
	SiteTitle       string `json:"site_title" db:"site_title"`
	SiteDescription string `json:"site_description" db:"site_description"`
	ThemeColor      string `json:"theme_color" db:"theme_color"`
	EnableDarkMode  bool   `json:"enable_dark_mode" db:"enable_dark_mode"`
	AnalyticsID     string `json:"analytics_id,omitempty" db:"analytics_id"`
}
