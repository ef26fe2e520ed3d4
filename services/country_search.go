package services

import (
	"context"
	"sort"
	"strings"

	"festivos/types"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const minNameSimilarity = 0.7

// CountryMatch is a search hit ranked by name similarity
type CountryMatch struct {
	Country    types.Country
	Similarity float64
}

// CountrySearch finds countries by accent- and case-insensitive name
type CountrySearch struct {
	countries CountryLister
}

func NewCountrySearch(countries CountryLister) *CountrySearch {
	return &CountrySearch{countries: countries}
}

// Search returns the countries whose name contains or closely resembles query.
// When nothing matches, suggestion holds the closest known name.
func (s *CountrySearch) Search(ctx context.Context, query string) (matches []CountryMatch, suggestion string, err error) {
	countries, err := s.countries.ListCountries(ctx)
	if err != nil {
		return nil, "", err
	}

	normalizedQuery := normalizeInput(query)
	byName := make(map[string]types.Country, len(countries))
	names := make([]string, 0, len(countries))

	for _, country := range countries {
		name := normalizeInput(country.Name)
		byName[name] = country
		names = append(names, name)

		similarity := calculateSimilarity(normalizedQuery, name)
		if strings.Contains(name, normalizedQuery) || similarity >= minNameSimilarity {
			matches = append(matches, CountryMatch{Country: country, Similarity: similarity})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Similarity != matches[j].Similarity {
			return matches[i].Similarity > matches[j].Similarity
		}
		return matches[i].Country.Name < matches[j].Country.Name
	})

	if len(matches) == 0 && len(names) > 0 && normalizedQuery != "" {
		closest := closestmatch.New(names, []int{2, 3}).Closest(normalizedQuery)
		if country, ok := byName[closest]; ok {
			suggestion = country.Name
		}
	}
	return matches, suggestion, nil
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}
