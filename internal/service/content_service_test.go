package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
	"github.com/JemAndrew/JemAndrewWebsite/internal/repository"
	"github.com/rs/zerolog"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y, m, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func newTestContent(seed repository.Seed) *contentService {
	svc := newContentService(repository.NewMemory(seed), zerolog.Nop())
	svc.now = func() time.Time { return date(2026, 1, 15) }
	return svc
}

func TestEducationDuration(t *testing.T) {
	tests := []struct {
		name string
		rec  models.Education
		want float64
	}{
		{
			name: "finished degree rounds to one decimal",
			rec: models.Education{
				StartDate: date(2021, 9, 1),
				EndDate:   datePtr(2024, 5, 1),
			},
			want: 2.7,
		},
		{
			name: "exactly one year",
			rec: models.Education{
				StartDate: date(2022, 1, 1),
				EndDate:   datePtr(2023, 1, 1),
			},
			want: 1.0,
		},
		{
			name: "current record measures to today",
			rec: models.Education{
				StartDate: date(2025, 1, 15),
				IsCurrent: true,
			},
			want: 1.0,
		},
		{
			name: "current record ignores stale end date",
			rec: models.Education{
				StartDate: date(2025, 1, 15),
				EndDate:   datePtr(2025, 2, 1),
				IsCurrent: true,
			},
			want: 1.0,
		},
		{
			name: "not current without end date has no duration",
			rec: models.Education{
				StartDate: date(2020, 1, 1),
			},
			want: 0,
		},
		{
			name: "end before start surfaces as negative",
			rec: models.Education{
				StartDate: date(2024, 1, 1),
				EndDate:   datePtr(2023, 1, 1),
			},
			want: -1.0,
		},
	}

	svc := newTestContent(repository.Seed{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.educationDuration(tt.rec); got != tt.want {
				t.Errorf("educationDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExperienceDuration(t *testing.T) {
	tests := []struct {
		name string
		rec  models.Experience
		want string
	}{
		{
			name: "years and months",
			rec: models.Experience{
				StartDate: date(2023, 1, 15),
				EndDate:   datePtr(2025, 5, 15),
			},
			want: "2 years, 4 months",
		},
		{
			name: "singular year and month",
			rec: models.Experience{
				StartDate: date(2024, 1, 1),
				EndDate:   datePtr(2025, 2, 5),
			},
			want: "1 year, 1 month",
		},
		{
			name: "under a year",
			rec: models.Experience{
				StartDate: date(2025, 3, 1),
				EndDate:   datePtr(2025, 10, 1),
			},
			want: "7 months",
		},
		{
			name: "single month",
			rec: models.Experience{
				StartDate: date(2025, 9, 1),
				EndDate:   datePtr(2025, 10, 1),
			},
			want: "1 month",
		},
		{
			name: "zero months",
			rec: models.Experience{
				StartDate: date(2025, 10, 1),
				EndDate:   datePtr(2025, 10, 15),
			},
			want: "0 months",
		},
		{
			name: "current position measures to today",
			rec: models.Experience{
				StartDate: date(2025, 10, 1),
				IsCurrent: true,
			},
			want: "3 months",
		},
		{
			name: "no end date and not current",
			rec: models.Experience{
				StartDate: date(2020, 1, 1),
			},
			want: "0 months",
		},
		{
			name: "end before start clamps to zero",
			rec: models.Experience{
				StartDate: date(2025, 6, 1),
				EndDate:   datePtr(2025, 1, 1),
			},
			want: "0 months",
		},
	}

	svc := newTestContent(repository.Seed{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.experienceDuration(tt.rec); got != tt.want {
				t.Errorf("experienceDuration() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildEducationList_Ordering(t *testing.T) {
	svc := newTestContent(repository.Seed{
		Education: []models.Education{
			{ID: 1, Subject: "Older", StartDate: date(2021, 9, 1), EndDate: datePtr(2024, 5, 1)},
			{ID: 2, Subject: "Newer", StartDate: date(2024, 9, 1), EndDate: datePtr(2025, 8, 1)},
			{ID: 3, Subject: "SameDateSecond", StartDate: date(2021, 9, 1), DisplayOrder: 2, EndDate: datePtr(2024, 5, 1)},
		},
	})

	views, err := svc.BuildEducationList(context.Background())
	if err != nil {
		t.Fatalf("BuildEducationList failed: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(views))
	}
	if views[0].Subject != "Newer" {
		t.Errorf("Expected newest first, got %q", views[0].Subject)
	}
	if views[1].Subject != "Older" || views[2].Subject != "SameDateSecond" {
		t.Errorf("Expected display order tie-break, got %q then %q", views[1].Subject, views[2].Subject)
	}
}

func TestCurrentExperience(t *testing.T) {
	svc := newTestContent(repository.Seed{
		Experience: []models.Experience{
			{ID: 1, Position: "Past", StartDate: date(2023, 1, 1), EndDate: datePtr(2024, 1, 1)},
			{ID: 2, Position: "Now", StartDate: date(2025, 10, 1), IsCurrent: true},
		},
	})

	current, err := svc.CurrentExperience(context.Background())
	if err != nil {
		t.Fatalf("CurrentExperience failed: %v", err)
	}
	if len(current) != 1 || current[0].Position != "Now" {
		t.Fatalf("Expected only the current position, got %+v", current)
	}
}

func TestCurrentPrimary(t *testing.T) {
	t.Run("no primary returns nil", func(t *testing.T) {
		svc := newTestContent(repository.Seed{
			Experience: []models.Experience{
				{ID: 1, Position: "Now", StartDate: date(2025, 10, 1), IsCurrent: true},
			},
		})
		got, err := svc.CurrentPrimary(context.Background())
		if err != nil {
			t.Fatalf("CurrentPrimary failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil, got %+v", got)
		}
	})

	t.Run("primary must also be current", func(t *testing.T) {
		svc := newTestContent(repository.Seed{
			Experience: []models.Experience{
				{ID: 1, Position: "OldPrimary", StartDate: date(2023, 1, 1), EndDate: datePtr(2024, 1, 1), IsPrimaryFocus: true},
			},
		})
		got, err := svc.CurrentPrimary(context.Background())
		if err != nil {
			t.Fatalf("CurrentPrimary failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil for ended primary, got %+v", got)
		}
	})

	t.Run("multiple primaries resolve by start date", func(t *testing.T) {
		svc := newTestContent(repository.Seed{
			Experience: []models.Experience{
				{ID: 1, Position: "Earlier", StartDate: date(2025, 1, 1), IsCurrent: true, IsPrimaryFocus: true},
				{ID: 2, Position: "Later", StartDate: date(2025, 10, 1), IsCurrent: true, IsPrimaryFocus: true},
			},
		})
		got, err := svc.CurrentPrimary(context.Background())
		if err != nil {
			t.Fatalf("CurrentPrimary failed: %v", err)
		}
		if got == nil || got.Position != "Later" {
			t.Errorf("Expected most recent primary, got %+v", got)
		}
	})
}

func projectSeed() repository.Seed {
	return repository.Seed{
		Projects: []models.Project{
			{ID: 1, Title: "Portfolio Site", ShortDescription: "Personal website", Category: models.CategoryPersonal, Status: models.StatusCompleted, Technologies: "Go, PostgreSQL", CreatedDate: date(2025, 1, 1)},
			{ID: 2, Title: "Skin Cancer CNN", ShortDescription: "MSc dissertation", Category: models.CategoryAcademic, Status: models.StatusCompleted, Technologies: "Python, TensorFlow", CreatedDate: date(2025, 6, 1), Featured: true},
			{ID: 3, Title: "Chat Server", ShortDescription: "Realtime chat", Category: models.CategoryPersonal, Status: models.StatusInProgress, Technologies: "Go, Redis", CreatedDate: date(2025, 8, 1), Featured: true},
			{ID: 4, Title: "Data Pipeline", ShortDescription: "ETL tooling", Category: models.CategoryProfessional, Status: models.StatusCompleted, Technologies: "Python, Airflow", CreatedDate: date(2025, 3, 1)},
		},
	}
}

func TestBuildProjectList_Ordering(t *testing.T) {
	svc := newTestContent(projectSeed())

	views, err := svc.BuildProjectList(context.Background())
	if err != nil {
		t.Fatalf("BuildProjectList failed: %v", err)
	}
	if len(views) != 4 {
		t.Fatalf("Expected 4 projects, got %d", len(views))
	}

	// Featured first, newest created first within each band.
	wantOrder := []string{"Chat Server", "Skin Cancer CNN", "Portfolio Site", "Data Pipeline"}
	for i, want := range wantOrder {
		if views[i].Title != want {
			t.Errorf("Position %d: expected %q, got %q", i, want, views[i].Title)
		}
	}
}

func TestBuildProjectList_AssignsMissingIDs(t *testing.T) {
	svc := newTestContent(repository.Seed{
		Projects: []models.Project{
			{Title: "First", CreatedDate: date(2025, 1, 1)},
			{Title: "Second", CreatedDate: date(2025, 2, 1)},
		},
	})

	views, err := svc.BuildProjectList(context.Background())
	if err != nil {
		t.Fatalf("BuildProjectList failed: %v", err)
	}
	seen := map[int64]string{}
	for _, v := range views {
		if v.ID == 0 {
			t.Errorf("Project %q has no ID", v.Title)
		}
		if other, dup := seen[v.ID]; dup {
			t.Errorf("Duplicate ID %d for %q and %q", v.ID, other, v.Title)
		}
		seen[v.ID] = v.Title
	}
}

func TestProjectByID(t *testing.T) {
	svc := newTestContent(projectSeed())

	got, err := svc.ProjectByID(context.Background(), 2)
	if err != nil {
		t.Fatalf("ProjectByID failed: %v", err)
	}
	if got == nil || got.Title != "Skin Cancer CNN" {
		t.Fatalf("Expected project 2, got %+v", got)
	}

	missing, err := svc.ProjectByID(context.Background(), 99)
	if err != nil {
		t.Fatalf("ProjectByID failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for unknown ID, got %+v", missing)
	}
}

func TestFeaturedProjects(t *testing.T) {
	svc := newTestContent(projectSeed())

	featured, err := svc.FeaturedProjects(context.Background(), 0)
	if err != nil {
		t.Fatalf("FeaturedProjects failed: %v", err)
	}
	if len(featured) != 2 {
		t.Fatalf("Expected 2 featured projects, got %d", len(featured))
	}
	for _, v := range featured {
		if !v.Featured {
			t.Errorf("Non-featured project %q in featured list", v.Title)
		}
	}

	one, err := svc.FeaturedProjects(context.Background(), 1)
	if err != nil {
		t.Fatalf("FeaturedProjects failed: %v", err)
	}
	if len(one) != 1 || one[0].Title != "Chat Server" {
		t.Errorf("Expected truncation to newest featured, got %+v", one)
	}
}

func TestProjectsFiltered(t *testing.T) {
	svc := newTestContent(projectSeed())

	tests := []struct {
		name       string
		category   string
		status     string
		search     string
		wantTitles []string
	}{
		{
			name:       "no filters returns everything",
			wantTitles: []string{"Chat Server", "Skin Cancer CNN", "Portfolio Site", "Data Pipeline"},
		},
		{
			name:       "category filter",
			category:   "personal",
			wantTitles: []string{"Chat Server", "Portfolio Site"},
		},
		{
			name:       "status filter",
			status:     "in_progress",
			wantTitles: []string{"Chat Server"},
		},
		{
			name:       "search matches technologies case-insensitively",
			search:     "PYTHON",
			wantTitles: []string{"Skin Cancer CNN", "Data Pipeline"},
		},
		{
			name:       "search matches short description",
			search:     "dissertation",
			wantTitles: []string{"Skin Cancer CNN"},
		},
		{
			name:       "filters compose with AND",
			category:   "personal",
			status:     "completed",
			search:     "go",
			wantTitles: []string{"Portfolio Site"},
		},
		{
			name:       "no matches yields empty list",
			category:   "open_source",
			wantTitles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := svc.ProjectsFiltered(context.Background(), tt.category, tt.status, tt.search)
			if err != nil {
				t.Fatalf("ProjectsFiltered failed: %v", err)
			}
			if len(views) != len(tt.wantTitles) {
				t.Fatalf("Expected %d projects, got %d", len(tt.wantTitles), len(views))
			}
			for i, want := range tt.wantTitles {
				if views[i].Title != want {
					t.Errorf("Position %d: expected %q, got %q", i, want, views[i].Title)
				}
			}
		})
	}
}

func TestBuildSkillsByCategory(t *testing.T) {
	svc := newTestContent(repository.Seed{
		Skills: []models.Skill{
			{ID: 1, Name: "Go", Category: models.SkillProgramming, Proficiency: 4},
			{ID: 2, Name: "Python", Category: models.SkillProgramming, Proficiency: 5},
			{ID: 3, Name: "Django", Category: models.SkillFramework, Proficiency: 3},
			{ID: 4, Name: "Gin", Category: models.SkillFramework, Proficiency: 3, DisplayOrder: 1},
			{ID: 5, Name: "PostgreSQL", Category: models.SkillDatabase, Proficiency: 4},
		},
	})

	views, err := svc.BuildSkillsByCategory(context.Background())
	if err != nil {
		t.Fatalf("BuildSkillsByCategory failed: %v", err)
	}

	if len(views) != 3 {
		t.Fatalf("Expected 3 categories, got %d", len(views))
	}
	// Categories come back in declaration order, empty ones omitted.
	if views[0].Key != "programming_languages" || views[1].Key != "frameworks_and_libraries" || views[2].Key != "databases" {
		t.Errorf("Unexpected category order: %q, %q, %q", views[0].Key, views[1].Key, views[2].Key)
	}

	prog := views[0]
	if prog.Name != "Programming Languages" {
		t.Errorf("Expected display name, got %q", prog.Name)
	}
	if prog.Skills[0].Name != "Python" || prog.Skills[1].Name != "Go" {
		t.Errorf("Expected proficiency descending, got %q then %q", prog.Skills[0].Name, prog.Skills[1].Name)
	}

	frameworks := views[1]
	if frameworks.Skills[0].Name != "Django" || frameworks.Skills[1].Name != "Gin" {
		t.Errorf("Expected display order tie-break, got %q then %q", frameworks.Skills[0].Name, frameworks.Skills[1].Name)
	}

	py := prog.Skills[0]
	if py.ProficiencyPercentage != 100 || py.ProficiencyLabel != "Expert" {
		t.Errorf("Expected 100%%/Expert for proficiency 5, got %d%%/%q", py.ProficiencyPercentage, py.ProficiencyLabel)
	}
	django := frameworks.Skills[0]
	if django.ProficiencyPercentage != 60 || django.ProficiencyLabel != "Intermediate" {
		t.Errorf("Expected 60%%/Intermediate for proficiency 3, got %d%%/%q", django.ProficiencyPercentage, django.ProficiencyLabel)
	}
}

func TestBuildSkillsByCategory_Idempotent(t *testing.T) {
	svc := newTestContent(repository.Seed{
		Skills: []models.Skill{
			{ID: 1, Name: "Go", Category: models.SkillProgramming, Proficiency: 4},
			{ID: 2, Name: "Python", Category: models.SkillProgramming, Proficiency: 5},
			{ID: 3, Name: "Django", Category: models.SkillFramework, Proficiency: 3},
			{ID: 4, Name: "PostgreSQL", Category: models.SkillDatabase, Proficiency: 4, DisplayOrder: 1},
		},
	})

	first, err := svc.BuildSkillsByCategory(context.Background())
	if err != nil {
		t.Fatalf("BuildSkillsByCategory failed: %v", err)
	}
	second, err := svc.BuildSkillsByCategory(context.Background())
	if err != nil {
		t.Fatalf("BuildSkillsByCategory failed: %v", err)
	}

	// Unchanged data must yield identical grouping, ordering and
	// computed fields on every call.
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated calls diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestBuildProfile(t *testing.T) {
	t.Run("parses typing phrases", func(t *testing.T) {
		svc := newTestContent(repository.Seed{
			Profile: &models.Profile{
				ID:          1,
				Name:        "Jem Andrew",
				TypingTexts: "Software Engineer, Backend Developer , AI Enthusiast",
			},
		})
		view, err := svc.BuildProfile(context.Background())
		if err != nil {
			t.Fatalf("BuildProfile failed: %v", err)
		}
		want := []string{"Software Engineer", "Backend Developer", "AI Enthusiast"}
		if len(view.TypingPhrases) != len(want) {
			t.Fatalf("Expected %d phrases, got %d", len(want), len(view.TypingPhrases))
		}
		for i, phrase := range want {
			if view.TypingPhrases[i] != phrase {
				t.Errorf("Phrase %d: expected %q, got %q", i, phrase, view.TypingPhrases[i])
			}
		}
	})

	t.Run("missing profile yields zero-valued view", func(t *testing.T) {
		svc := newTestContent(repository.Seed{})
		view, err := svc.BuildProfile(context.Background())
		if err != nil {
			t.Fatalf("BuildProfile failed: %v", err)
		}
		if view == nil {
			t.Fatal("Expected a view, got nil")
		}
		if view.TypingPhrases == nil || len(view.TypingPhrases) != 0 {
			t.Errorf("Expected empty phrase list, got %v", view.TypingPhrases)
		}
	})
}

func TestSiteConfig_DefaultsWhenMissing(t *testing.T) {
	svc := newTestContent(repository.Seed{})
	settings, err := svc.SiteConfig(context.Background())
	if err != nil {
		t.Fatalf("SiteConfig failed: %v", err)
	}
	if settings == nil {
		t.Fatal("Expected zero-valued settings, got nil")
	}
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty string", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"single tag", "Go", []string{"Go"}},
		{"trims entries", " Go , PostgreSQL ,Docker", []string{"Go", "PostgreSQL", "Docker"}},
		{"drops empty entries", "Go,,PostgreSQL,", []string{"Go", "PostgreSQL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitTags(tt.raw)
			if got == nil {
				t.Fatal("splitTags returned nil")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Entry %d: expected %q, got %q", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func BenchmarkBuildSkillsByCategory(b *testing.B) {
	skills := make([]models.Skill, 0, 200)
	cats := models.SkillCategoryOrder
	for i := 0; i < 200; i++ {
		skills = append(skills, models.Skill{
			ID:           int64(i + 1),
			Name:         "Skill",
			Category:     cats[i%len(cats)],
			Proficiency:  i%5 + 1,
			DisplayOrder: i,
		})
	}
	svc := newTestContent(repository.Seed{Skills: skills})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := svc.BuildSkillsByCategory(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}
