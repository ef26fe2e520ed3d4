package services

import (
	"context"
	"fmt"
	"os"
	"sort"

	"festivos/builders"
	"festivos/errors"
	"festivos/types"

	"gopkg.in/yaml.v3"
)

type rulesFile struct {
	Countries []countryEntry `yaml:"countries"`
}

type countryEntry struct {
	ID       uint           `yaml:"id"`
	Name     string         `yaml:"name"`
	Holidays []holidayEntry `yaml:"holidays"`
}

type holidayEntry struct {
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	Month        int    `yaml:"month"`
	Day          int    `yaml:"day"`
	EasterOffset *int   `yaml:"easterOffset"`
}

// FileRuleStore serves rules from a YAML document. Rule ids follow file order.
type FileRuleStore struct {
	countries []types.Country
	rules     map[uint][]types.HolidayRule
}

// LoadFileRuleStore reads the rules file at path
func LoadFileRuleStore(path string) (*FileRuleStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return NewFileRuleStore(data)
}

// NewFileRuleStore parses a rules document
func NewFileRuleStore(data []byte) (*FileRuleStore, error) {
	var doc rulesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "rules file is not valid YAML", err)
	}

	store := &FileRuleStore{rules: make(map[uint][]types.HolidayRule)}
	var nextID uint = 1
	for _, country := range doc.Countries {
		if _, dup := store.rules[country.ID]; dup {
			return nil, errors.NewAppError(errors.ErrCodeValidation, fmt.Sprintf("country %d declared twice", country.ID), nil)
		}
		store.countries = append(store.countries, types.Country{ID: country.ID, Name: country.Name})

		rules := make([]types.HolidayRule, 0, len(country.Holidays))
		for _, entry := range country.Holidays {
			rule, err := entry.toRule(nextID, country.ID)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
			nextID++
		}
		store.rules[country.ID] = rules
	}

	sort.SliceStable(store.countries, func(i, j int) bool {
		return store.countries[i].Name < store.countries[j].Name
	})
	return store, nil
}

func (e holidayEntry) toRule(id, countryID uint) (types.HolidayRule, error) {
	ruleType, err := types.ParseRuleType(e.Type)
	if err != nil {
		return types.HolidayRule{}, errors.InvalidRule("holiday %q: %v", e.Name, err)
	}

	b := builders.NewHolidayRuleBuilder(e.Name).WithID(id).ForCountry(countryID)
	if ruleType.FixedBased() {
		if e.EasterOffset != nil {
			return types.HolidayRule{}, errors.InvalidRule("holiday %q: %s rule cannot carry an easter offset", e.Name, ruleType)
		}
		b.OnFixedDate(e.Month, e.Day)
	} else {
		if e.Month != 0 || e.Day != 0 {
			return types.HolidayRule{}, errors.InvalidRule("holiday %q: %s rule cannot carry month/day", e.Name, ruleType)
		}
		if e.EasterOffset == nil {
			return types.HolidayRule{}, errors.InvalidRule("holiday %q: %s rule needs easterOffset", e.Name, ruleType)
		}
		b.OnEasterOffset(*e.EasterOffset)
	}
	if ruleType.MovedToMonday() {
		b.MovedToMonday()
	}
	return b.Build()
}

func (s *FileRuleStore) FetchRulesForCountry(_ context.Context, countryID uint) ([]types.HolidayRule, error) {
	rules := s.rules[countryID]
	out := make([]types.HolidayRule, len(rules))
	copy(out, rules)
	return out, nil
}

func (s *FileRuleStore) ListCountries(context.Context) ([]types.Country, error) {
	out := make([]types.Country, len(s.countries))
	copy(out, s.countries)
	return out, nil
}

func (s *FileRuleStore) GetCountry(_ context.Context, id uint) (types.Country, error) {
	for _, country := range s.countries {
		if country.ID == id {
			return country, nil
		}
	}
	return types.Country{}, errors.NewAppError(errors.ErrCodeDBNotFound, fmt.Sprintf("country %d not found", id), nil)
}
