// Package fallback provides the process-wide synonym table used by the
// deterministic extraction strategy. The table is built once at startup and is
// read-only afterwards, so it is safe to share across worker goroutines.
package fallback

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Species is a canonical (latin, common) name pair for one keyword.
type Species struct {
	Latin  string `yaml:"latin"`
	Common string `yaml:"common"`
}

// SpeciesMatch is one keyword hit inside a description, with its byte offset
// so callers can reason about ordering and pairing.
type SpeciesMatch struct {
	Pos     int
	Keyword string
	Latin   string
	Common  string
}

// Table maps known phrase fragments to canonical names. Immutable after Build.
type Table struct {
	countries  map[string]string
	species    map[string]Species
	countryPat []countryPattern
	speciesPat []speciesPattern
}

type countryPattern struct {
	re        *regexp.Regexp
	canonical string
	synonym   string
}

type speciesPattern struct {
	re      *regexp.Regexp
	keyword string
	entry   Species
}

// overrides is the YAML shape of a user-supplied table extension file.
type overrides struct {
	Countries map[string]string  `yaml:"countries"`
	Species   map[string]Species `yaml:"species"`
}

// Builtin returns the compiled-in table.
func Builtin() *Table {
	t, err := build(builtinCountries, builtinSpecies)
	if err != nil {
		// Builtin data is validated by tests; a compile failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return t
}

// Load returns the builtin table merged with overrides from a YAML file.
// An empty path returns the builtin table unchanged.
func Load(path string) (*Table, error) {
	if path == "" {
		return Builtin(), nil
	}

	data, err := os.ReadFile(path) // nolint:gosec // path comes from user config
	if err != nil {
		return nil, fmt.Errorf("failed to read fallback table %s: %w", path, err)
	}

	var ov overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("failed to parse fallback table %s: %w", path, err)
	}

	countries := make(map[string]string, len(builtinCountries)+len(ov.Countries))
	for k, v := range builtinCountries {
		countries[k] = v
	}
	for k, v := range ov.Countries {
		countries[strings.ToLower(strings.TrimSpace(k))] = v
	}

	species := make(map[string]Species, len(builtinSpecies)+len(ov.Species))
	for k, v := range builtinSpecies {
		species[k] = v
	}
	for k, v := range ov.Species {
		species[strings.ToLower(strings.TrimSpace(k))] = v
	}

	return build(countries, species)
}

func build(countries map[string]string, species map[string]Species) (*Table, error) {
	t := &Table{
		countries: countries,
		species:   species,
	}

	// Longer synonyms compile first so "united kingdom" wins over "united".
	synonyms := make([]string, 0, len(countries))
	for syn := range countries {
		synonyms = append(synonyms, syn)
	}
	sort.Slice(synonyms, func(i, j int) bool {
		if len(synonyms[i]) != len(synonyms[j]) {
			return len(synonyms[i]) > len(synonyms[j])
		}
		return synonyms[i] < synonyms[j]
	})
	for _, syn := range synonyms {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(syn) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("bad country synonym %q: %w", syn, err)
		}
		t.countryPat = append(t.countryPat, countryPattern{re: re, canonical: countries[syn], synonym: syn})
	}

	keywords := make([]string, 0, len(species))
	for kw := range species {
		keywords = append(keywords, kw)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if len(keywords[i]) != len(keywords[j]) {
			return len(keywords[i]) > len(keywords[j])
		}
		return keywords[i] < keywords[j]
	})
	for _, kw := range keywords {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("bad species keyword %q: %w", kw, err)
		}
		t.speciesPat = append(t.speciesPat, speciesPattern{re: re, keyword: kw, entry: species[kw]})
	}

	return t, nil
}

// MatchCountry scans text for a known country synonym and returns the
// canonical name. Longer synonyms take precedence; among equal lengths the
// lexicographically first synonym wins, so results are deterministic.
func (t *Table) MatchCountry(text string) (string, bool) {
	for _, p := range t.countryPat {
		if p.re.MatchString(text) {
			return p.canonical, true
		}
	}
	return "", false
}

// MatchSpecies returns every species keyword hit in text, ordered by position.
// Overlapping hits keep only the longest keyword at each position.
func (t *Table) MatchSpecies(text string) []SpeciesMatch {
	var matches []SpeciesMatch
	claimed := make(map[int]bool)

	// speciesPat is ordered longest-first, so the longest keyword claims a
	// region before any shorter keyword contained in it.
	for _, p := range t.speciesPat {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			overlap := false
			for i := loc[0]; i < loc[1]; i++ {
				if claimed[i] {
					overlap = true
					break
				}
			}
			if overlap {
				continue
			}
			for i := loc[0]; i < loc[1]; i++ {
				claimed[i] = true
			}
			matches = append(matches, SpeciesMatch{
				Pos:     loc[0],
				Keyword: p.keyword,
				Latin:   p.entry.Latin,
				Common:  p.entry.Common,
			})
		}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Pos < matches[j].Pos })
	return matches
}

// Countries returns the synonym count, for reporting.
func (t *Table) Countries() int { return len(t.countries) }

// SpeciesKeywords returns the keyword count, for reporting.
func (t *Table) SpeciesKeywords() int { return len(t.species) }
