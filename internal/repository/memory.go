package repository

import (
	"context"
	"sync"

	"github.com/JemAndrew/JemAndrewWebsite/internal/models"
)

// Seed is the initial content for an in-memory store set
type Seed struct {
	Profile    *models.Profile
	Settings   *models.SiteSettings
	Education  []models.Education
	Experience []models.Experience
	Projects   []models.Project
	Skills     []models.Skill
}

// NewMemory creates all stores backed by in-process memory, preloaded with
// the given seed. This is the static data source and the test double.
func NewMemory(seed Seed) *Stores {
	return &Stores{
		Profile:    &MemoryProfileStore{profile: seed.Profile},
		Settings:   &MemorySettingsStore{settings: seed.Settings},
		Education:  &MemoryEducationStore{records: seed.Education},
		Experience: &MemoryExperienceStore{records: seed.Experience},
		Project:    &MemoryProjectStore{records: seed.Projects},
		Skill:      &MemorySkillStore{records: seed.Skills},
		Contact:    &MemoryContactStore{},
	}
}

// MemoryProfileStore is an in-memory ProfileStore
type MemoryProfileStore struct {
	mu      sync.RWMutex
	profile *models.Profile
}

func (s *MemoryProfileStore) Get(ctx context.Context) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, nil
	}
	p := *s.profile
	return &p, nil
}

func (s *MemoryProfileStore) Save(ctx context.Context, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if profile.ID == 0 {
		if s.profile != nil {
			return ErrSingletonExists
		}
		profile.ID = 1
	}
	p := *profile
	s.profile = &p
	return nil
}

// MemorySettingsStore is an in-memory SettingsStore
type MemorySettingsStore struct {
	mu       sync.RWMutex
	settings *models.SiteSettings
}

func (s *MemorySettingsStore) Get(ctx context.Context) (*models.SiteSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, nil
	}
	settings := *s.settings
	return &settings, nil
}

func (s *MemorySettingsStore) Save(ctx context.Context, settings *models.SiteSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if settings.ID == 0 {
		if s.settings != nil {
			return ErrSingletonExists
		}
		settings.ID = 1
	}
	copied := *settings
	s.settings = &copied
	return nil
}

// MemoryEducationStore is an in-memory EducationStore
type MemoryEducationStore struct {
	mu      sync.RWMutex
	records []models.Education
}

func (s *MemoryEducationStore) List(ctx context.Context) ([]models.Education, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Education, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryEducationStore) Create(ctx context.Context, education *models.Education) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if education.ID == 0 {
		education.ID = int64(len(s.records) + 1)
	}
	s.records = append(s.records, *education)
	return nil
}

// MemoryExperienceStore is an in-memory ExperienceStore
type MemoryExperienceStore struct {
	mu      sync.RWMutex
	records []models.Experience
}

func (s *MemoryExperienceStore) List(ctx context.Context) ([]models.Experience, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Experience, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryExperienceStore) Create(ctx context.Context, experience *models.Experience) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if experience.ID == 0 {
		experience.ID = int64(len(s.records) + 1)
	}
	s.records = append(s.records, *experience)
	return nil
}

// MemoryProjectStore is an in-memory ProjectStore
type MemoryProjectStore struct {
	mu      sync.RWMutex
	records []models.Project
}

func (s *MemoryProjectStore) List(ctx context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryProjectStore) Create(ctx context.Context, project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if project.ID == 0 {
		project.ID = int64(len(s.records) + 1)
	}
	s.records = append(s.records, *project)
	return nil
}

// MemorySkillStore is an in-memory SkillStore
type MemorySkillStore struct {
	mu      sync.RWMutex
	records []models.Skill
}

func (s *MemorySkillStore) List(ctx context.Context) ([]models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Skill, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemorySkillStore) Create(ctx context.Context, skill *models.Skill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if skill.ID == 0 {
		skill.ID = int64(len(s.records) + 1)
	}
	s.records = append(s.records, *skill)
	return nil
}

// MemoryContactStore is an in-memory ContactStore.
// Stored messages are never handed out by reference, so the
// sender-supplied fields cannot be mutated after Create.
type MemoryContactStore struct {
	mu       sync.RWMutex
	messages []models.ContactMessage
}

func (s *MemoryContactStore) Create(ctx context.Context, msg *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *MemoryContactStore) List(ctx context.Context) ([]models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ContactMessage, len(s.messages))
	copy(out, s.messages)
	// Newest first, matching the postgres store
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (s *MemoryContactStore) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			m := s.messages[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (s *MemoryContactStore) MarkRead(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryContactStore) MarkReplied(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].Replied = true
			return true, nil
		}
	}
	return false, nil
}
