package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aretw0/logframe/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Seed writes every table of data in one pipeline. Existing keys are overwritten.
func (s *Store) Seed(ctx context.Context, data domain.ReferenceData) error {
	pipe := s.client.Pipeline()

	set := func(key string, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal %s: %w", key, err)
		}
		pipe.Set(ctx, key, raw, 0)
		return nil
	}

	for _, p := range data.EcosystemPatterns {
		if err := set(s.ecosystemKey(p.Theme), p); err != nil {
			return err
		}
	}
	for _, p := range data.PathwayPatterns {
		if err := set(s.pathwayKey(p.Theme), p); err != nil {
			return err
		}
	}
	for _, sc := range data.StateChallenges {
		if err := set(s.stateKey(sc.State), sc.Challenges); err != nil {
			return err
		}
	}
	for _, dc := range data.DistrictChallenges {
		if err := set(s.districtKey(dc.State, dc.District), dc.Challenges); err != nil {
			return err
		}
	}
	for _, it := range data.IndicatorTemplates {
		if err := set(s.indicatorKey(it.IndicatorKey), it.Templates); err != nil {
			return err
		}
	}

	byTheme := make(map[string][]domain.Methodology)
	var themes []string
	for _, m := range data.Methodologies {
		if _, seen := byTheme[m.Theme]; !seen {
			themes = append(themes, m.Theme)
		}
		byTheme[m.Theme] = append(byTheme[m.Theme], m)
	}
	for _, theme := range themes {
		if err := set(s.methodologiesKey(theme), byTheme[theme]); err != nil {
			return err
		}
	}
	if len(data.Stakeholders) > 0 {
		if err := set(s.stakeholdersKey(), data.Stakeholders); err != nil {
			return err
		}
	}
	for _, p := range data.PracticeTemplates {
		if err := set(s.practiceKey(p.StakeholderID, p.Theme), p); err != nil {
			return err
		}
	}
	for _, f := range data.Competencies {
		if err := set(s.competenciesKey(f.Theme, f.GradeRange), f.Competencies); err != nil {
			return err
		}
	}
	if len(data.PolicyReferences) > 0 {
		if err := set(s.policiesKey(), data.PolicyReferences); err != nil {
			return err
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed redis: %w", err)
	}
	return nil
}

// get decodes key into out. found is false when the key does not exist.
func (s *Store) get(ctx context.Context, key string, out any) (found bool, err error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == backend.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get from redis: %w", err)
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) EcosystemPattern(ctx context.Context, theme string) (*domain.EcosystemPattern, error) {
	var p domain.EcosystemPattern
	found, err := s.get(ctx, s.ecosystemKey(theme), &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *Store) PathwayPattern(ctx context.Context, theme string) (*domain.PathwayPattern, error) {
	var p domain.PathwayPattern
	found, err := s.get(ctx, s.pathwayKey(theme), &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *Store) StateChallenges(ctx context.Context, state string) ([]domain.Challenge, error) {
	var out []domain.Challenge
	if _, err := s.get(ctx, s.stateKey(state), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) DistrictChallenges(ctx context.Context, state, district string) ([]string, error) {
	var out []string
	if _, err := s.get(ctx, s.districtKey(state, district), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) IndicatorTemplates(ctx context.Context, key domain.IndicatorKey) ([]string, error) {
	var out []string
	if _, err := s.get(ctx, s.indicatorKey(key), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Methodologies(ctx context.Context, theme string) ([]domain.Methodology, error) {
	var out []domain.Methodology
	if _, err := s.get(ctx, s.methodologiesKey(theme), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Stakeholders(ctx context.Context) ([]domain.Stakeholder, error) {
	var out []domain.Stakeholder
	if _, err := s.get(ctx, s.stakeholdersKey(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) PracticeTemplate(ctx context.Context, stakeholderID, theme string) (*domain.PracticeTemplate, error) {
	var p domain.PracticeTemplate
	found, err := s.get(ctx, s.practiceKey(stakeholderID, theme), &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (s *Store) Competencies(ctx context.Context, theme, gradeRange string) ([]string, error) {
	var out []string
	if _, err := s.get(ctx, s.competenciesKey(theme, gradeRange), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) PolicyReferences(ctx context.Context) ([]string, error) {
	var out []string
	if _, err := s.get(ctx, s.policiesKey(), &out); err != nil {
		return nil, err
	}
	return out, nil
}
