package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
	"github.com/JemAndrew/JemAndrewWebsite/internal/repository"
	"github.com/rs/zerolog"
)

// DefaultFeaturedLimit caps the featured project strip on the home page
const DefaultFeaturedLimit = 3

// contentService is the concrete implementation of ContentService.
// It never writes to the stores; every operation derives view models
// from whatever the store currently holds.
type contentService struct {
	stores *repository.Stores
	log    zerolog.Logger
	now    func() time.Time
}

func newContentService(stores *repository.Stores, log zerolog.Logger) *contentService {
	return &contentService{
		stores: stores,
		log:    log.With().Str("component", "content").Logger(),
		now:    time.Now,
	}
}

// BuildProfile returns the profile with typing phrases parsed out.
// A missing profile yields a zero-valued view, never nil, so pages
// render without guards.
func (s *contentService) BuildProfile(ctx context.Context) (*models.ProfileView, error) {
	profile, err := s.stores.Profile.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return &models.ProfileView{TypingPhrases: []string{}}, nil
	}
	return &models.ProfileView{
		Profile:       *profile,
		TypingPhrases: splitTags(profile.TypingTexts),
	}, nil
}

// SiteConfig returns the site settings, defaulting to a zero-valued
// object when none are stored (same policy as BuildProfile).
func (s *contentService) SiteConfig(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.stores.Settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return &models.SiteSettings{}, nil
	}
	return settings, nil
}

// BuildEducationList returns all education records with parsed tags and
// computed durations, ordered by start date descending then display order.
func (s *contentService) BuildEducationList(ctx context.Context) ([]models.EducationView, error) {
	records, err := s.stores.Education.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.EducationView, 0, len(records))
	for _, rec := range records {
		views = append(views, models.EducationView{
			Education:      rec,
			TechnologyList: splitTags(rec.Technologies),
			DurationYears:  s.educationDuration(rec),
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		if !views[i].StartDate.Equal(views[j].StartDate) {
			return views[i].StartDate.After(views[j].StartDate)
		}
		return views[i].DisplayOrder < views[j].DisplayOrder
	})
	return views, nil
}

// educationDuration computes the duration in years, rounded to one
// decimal place. An ongoing record measures up to today; a finished
// record without an end date has no measurable duration. An end date
// before the start surfaces as a negative value rather than an error.
func (s *contentService) educationDuration(rec models.Education) float64 {
	end, ok := s.endOrToday(rec.IsCurrent, rec.EndDate)
	if !ok {
		return 0
	}
	days := daysBetween(rec.StartDate, end)
	return math.Round(float64(days)/365.25*10) / 10
}

// BuildExperienceList returns all experience records with parsed skills
// and a human duration string, in canonical order.
func (s *contentService) BuildExperienceList(ctx context.Context) ([]models.ExperienceView, error) {
	records, err := s.stores.Experience.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.ExperienceView, 0, len(records))
	for _, rec := range records {
		views = append(views, s.experienceView(rec))
	}

	sort.SliceStable(views, func(i, j int) bool {
		if !views[i].StartDate.Equal(views[j].StartDate) {
			return views[i].StartDate.After(views[j].StartDate)
		}
		return views[i].DisplayOrder < views[j].DisplayOrder
	})
	return views, nil
}

// CurrentExperience returns all current positions in canonical order
func (s *contentService) CurrentExperience(ctx context.Context) ([]models.ExperienceView, error) {
	views, err := s.BuildExperienceList(ctx)
	if err != nil {
		return nil, err
	}
	current := make([]models.ExperienceView, 0, len(views))
	for _, v := range views {
		if v.IsCurrent {
			current = append(current, v)
		}
	}
	return current, nil
}

// CurrentPrimary returns the single headline position: current and
// flagged as primary focus. The source data never enforces uniqueness,
// so multiple matches are disambiguated by start date descending then
// display order; no match returns nil.
func (s *contentService) CurrentPrimary(ctx context.Context) (*models.ExperienceView, error) {
	views, err := s.BuildExperienceList(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		if v.IsCurrent && v.IsPrimaryFocus {
			matched := v
			return &matched, nil
		}
	}
	return nil, nil
}

func (s *contentService) experienceView(rec models.Experience) models.ExperienceView {
	return models.ExperienceView{
		Experience:      rec,
		SkillList:       splitTags(rec.Skills),
		DurationDisplay: s.experienceDuration(rec),
	}
}

// experienceDuration renders a duration like "2 years, 3 months" or,
// under a year, "7 months".
func (s *contentService) experienceDuration(rec models.Experience) string {
	days := 0
	if end, ok := s.endOrToday(rec.IsCurrent, rec.EndDate); ok {
		days = daysBetween(rec.StartDate, end)
	}
	if days < 0 {
		days = 0
	}

	years := days / 365
	months := (days % 365) / 30

	if years > 0 {
		return plural(years, "year") + ", " + plural(months, "month")
	}
	return plural(months, "month")
}

// endOrToday resolves the effective end of a date range. Current
// records always measure to today, even with a stale end date.
func (s *contentService) endOrToday(isCurrent bool, end *time.Time) (time.Time, bool) {
	if isCurrent {
		return s.now(), true
	}
	if end != nil {
		return *end, true
	}
	return time.Time{}, false
}

// BuildProjectList returns all projects with parsed technologies, in
// canonical order: featured first, then creation date descending, then
// display order. Records without a stored identity get one assigned by
// enumeration order.
func (s *contentService) BuildProjectList(ctx context.Context) ([]models.ProjectView, error) {
	records, err := s.stores.Project.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.ProjectView, 0, len(records))
	for i, rec := range records {
		if rec.ID == 0 {
			rec.ID = int64(i + 1)
		}
		views = append(views, models.ProjectView{
			Project:        rec,
			TechnologyList: splitTags(rec.Technologies),
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Featured != views[j].Featured {
			return views[i].Featured
		}
		if !views[i].CreatedDate.Equal(views[j].CreatedDate) {
			return views[i].CreatedDate.After(views[j].CreatedDate)
		}
		return views[i].DisplayOrder < views[j].DisplayOrder
	})
	return views, nil
}

// ProjectByID returns a single project view, or nil when absent
func (s *contentService) ProjectByID(ctx context.Context, id int64) (*models.ProjectView, error) {
	views, err := s.BuildProjectList(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		if v.ID == id {
			matched := v
			return &matched, nil
		}
	}
	return nil, nil
}

// FeaturedProjects returns up to limit featured projects in canonical
// order. Fewer featured projects than the limit returns all of them;
// the list is never padded with non-featured items.
func (s *contentService) FeaturedProjects(ctx context.Context, limit int) ([]models.ProjectView, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	views, err := s.BuildProjectList(ctx)
	if err != nil {
		return nil, err
	}
	featured := make([]models.ProjectView, 0, limit)
	for _, v := range views {
		if !v.Featured {
			continue
		}
		featured = append(featured, v)
		if len(featured) == limit {
			break
		}
	}
	return featured, nil
}

// ProjectsFiltered returns projects matching the given filters, in
// canonical order. Category and status are exact matches, search is a
// case-insensitive substring over title, short description and
// technologies; the three filters compose with AND.
func (s *contentService) ProjectsFiltered(ctx context.Context, category, status, search string) ([]models.ProjectView, error) {
	views, err := s.BuildProjectList(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	filtered := make([]models.ProjectView, 0, len(views))
	for _, v := range views {
		if category != "" && string(v.Category) != category {
			continue
		}
		if status != "" && string(v.Status) != status {
			continue
		}
		if search != "" && !projectMatches(v, search) {
			continue
		}
		filtered = append(filtered, v)
	}
	return filtered, nil
}

func projectMatches(v models.ProjectView, search string) bool {
	return strings.Contains(strings.ToLower(v.Title), search) ||
		strings.Contains(strings.ToLower(v.ShortDescription), search) ||
		strings.Contains(strings.ToLower(v.Technologies), search)
}

// BuildSkillsByCategory groups all skills by category in declaration
// order, with derived proficiency fields. Within a category skills are
// ordered by proficiency descending then display order. Categories
// without skills are omitted.
func (s *contentService) BuildSkillsByCategory(ctx context.Context) ([]models.SkillCategoryView, error) {
	records, err := s.stores.Skill.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[models.SkillCategory][]models.SkillView)
	for _, rec := range records {
		grouped[rec.Category] = append(grouped[rec.Category], models.SkillView{
			Skill:                 rec,
			ProficiencyPercentage: rec.Proficiency * 20,
			ProficiencyLabel:      proficiencyLabel(rec.Proficiency),
			CategoryKey:           categoryKey(rec.Category),
		})
	}

	views := make([]models.SkillCategoryView, 0, len(grouped))
	for _, cat := range models.SkillCategoryOrder {
		skills, ok := grouped[cat]
		if !ok {
			continue
		}
		sort.SliceStable(skills, func(i, j int) bool {
			if skills[i].Proficiency != skills[j].Proficiency {
				return skills[i].Proficiency > skills[j].Proficiency
			}
			return skills[i].DisplayOrder < skills[j].DisplayOrder
		})
		views = append(views, models.SkillCategoryView{
			Name:   models.SkillCategoryNames[cat],
			Key:    categoryKey(cat),
			Skills: skills,
		})
	}
	return views, nil
}

func proficiencyLabel(p int) string {
	if p < 1 || p > 5 {
		return ""
	}
	return models.ProficiencyLabels[p]
}

// categoryKey normalizes a category display name for use as a CSS class
func categoryKey(cat models.SkillCategory) string {
	name := strings.ToLower(models.SkillCategoryNames[cat])
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, "&", "and")
}

// splitTags parses a comma-separated tag field into trimmed entries.
// An empty field yields an empty list, not nil, so it serializes as [].
func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
