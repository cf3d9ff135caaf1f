// Package lexicon loads the read-only, versioned word lists spec.md §6
// calls "lexicon resources": title prefixes, name particles, stopwords,
// person-role words, fantasy headword sets, event keywords, geographic and
// organisational markers, known place/org gazetteers, and the
// nickname-equivalence table used by internal/mint's alias classifier.
//
// The bundle is loaded once at process start (grounded on the bundled-skill
// loader in platform/brain-core/internal/activities/insight_registry.go:
// an env var names an override directory, falling back to a bundled
// default) and is never mutated afterward, so callers may share a *Bundle
// across concurrent extraction calls without locking.
package lexicon

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// raw mirrors the YAML shape of lexicons/default.yaml.
type raw struct {
	TitlePrefixes         []string            `yaml:"title_prefixes"`
	NameParticles         []string            `yaml:"name_particles"`
	Stopwords             []string            `yaml:"stopwords"`
	Months                []string            `yaml:"months"`
	PersonRoles           []string            `yaml:"person_roles"`
	GenericTitles         []string            `yaml:"generic_titles"`
	EventKeywords         []string            `yaml:"event_keywords"`
	GeographicMarkers     []string            `yaml:"geographic_markers"`
	OrganisationalMarkers []string            `yaml:"organisational_markers"`
	SchoolSuffixes        []string            `yaml:"school_suffixes"`
	KnownPlaces           []string            `yaml:"known_places"`
	KnownOrgs             []string            `yaml:"known_orgs"`
	AmbiguousPlaces       []string            `yaml:"ambiguous_places"`
	FantasyHeadwords      map[string][]string `yaml:"fantasy_headwords"`
	Nicknames             map[string]string   `yaml:"nicknames"`
	Whitelist             map[string]string   `yaml:"whitelist"`
}

// Bundle is the parsed, lookup-ready form of one lexicon YAML file. All set
// fields are lowercase-keyed so callers can probe with a folded surface
// without re-normalising.
type Bundle struct {
	TitlePrefixes         map[string]bool
	NameParticles         map[string]bool
	Stopwords             map[string]bool
	Months                map[string]bool
	PersonRoles           map[string]bool
	GenericTitles         map[string]bool
	EventKeywords         map[string]bool
	GeographicMarkers     map[string]bool
	OrganisationalMarkers map[string]bool
	SchoolSuffixes        []string
	KnownPlaces           map[string]bool
	KnownOrgs             map[string]bool
	AmbiguousPlaces       map[string]bool
	FantasyHeadwords      map[string]map[string]bool // headword -> set of type names
	Nicknames             map[string]string          // nickname -> canonical first name
	Whitelist             map[string]string          // normalised surface -> EntityType name
}

const defaultBundleEnv = "LEXICON_DIR"

// Load reads every *.yaml file in dir (sorted by name) and returns the
// merged Bundle: list entries accumulate across files, while map entries
// (nicknames, whitelist, fantasy headwords) merge key-by-key with later
// files overriding earlier ones. When
// dir is empty, Load checks LEXICON_DIR and finally falls back to the
// bundled "lexicons" directory shipped alongside the module.
func Load(dir string) (*Bundle, error) {
	if dir == "" {
		dir = strings.TrimSpace(os.Getenv(defaultBundleEnv))
	}
	if dir == "" {
		dir = "lexicons"
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("lexicon: read bundle dir %q: %w", dir, err)
	}
	merged := newRaw()
	found := false
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, ent.Name())
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("lexicon: read %q: %w", path, err)
		}
		var r raw
		if err := yaml.Unmarshal(b, &r); err != nil {
			return nil, fmt.Errorf("lexicon: parse %q: %w", path, err)
		}
		merged.merge(r)
		found = true
	}
	if !found {
		return nil, fmt.Errorf("lexicon: no *.yaml files in %q", dir)
	}
	return merged.toBundle(), nil
}

// MustLoad is Load with a panic on error, for use in package init()s that
// have no error-returning path back to a caller (cmd/extractctl,
// cmd/extractworker main functions use Load directly instead).
func MustLoad(dir string) *Bundle {
	b, err := Load(dir)
	if err != nil {
		panic(err)
	}
	return b
}

func newRaw() *raw {
	return &raw{
		FantasyHeadwords: map[string][]string{},
		Nicknames:        map[string]string{},
		Whitelist:        map[string]string{},
	}
}

func (r *raw) merge(o raw) {
	r.TitlePrefixes = append(r.TitlePrefixes, o.TitlePrefixes...)
	r.NameParticles = append(r.NameParticles, o.NameParticles...)
	r.Stopwords = append(r.Stopwords, o.Stopwords...)
	r.Months = append(r.Months, o.Months...)
	r.PersonRoles = append(r.PersonRoles, o.PersonRoles...)
	r.GenericTitles = append(r.GenericTitles, o.GenericTitles...)
	r.EventKeywords = append(r.EventKeywords, o.EventKeywords...)
	r.GeographicMarkers = append(r.GeographicMarkers, o.GeographicMarkers...)
	r.OrganisationalMarkers = append(r.OrganisationalMarkers, o.OrganisationalMarkers...)
	r.SchoolSuffixes = append(r.SchoolSuffixes, o.SchoolSuffixes...)
	r.KnownPlaces = append(r.KnownPlaces, o.KnownPlaces...)
	r.KnownOrgs = append(r.KnownOrgs, o.KnownOrgs...)
	r.AmbiguousPlaces = append(r.AmbiguousPlaces, o.AmbiguousPlaces...)
	for k, v := range o.FantasyHeadwords {
		r.FantasyHeadwords[k] = append(r.FantasyHeadwords[k], v...)
	}
	for k, v := range o.Nicknames {
		r.Nicknames[strings.ToLower(k)] = strings.ToLower(v)
	}
	for k, v := range o.Whitelist {
		r.Whitelist[strings.ToLower(k)] = strings.ToUpper(v)
	}
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(strings.TrimSpace(w))] = true
	}
	return set
}

func (r *raw) toBundle() *Bundle {
	fantasy := make(map[string]map[string]bool, len(r.FantasyHeadwords))
	for typeName, words := range r.FantasyHeadwords {
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if fantasy[w] == nil {
				fantasy[w] = map[string]bool{}
			}
			fantasy[w][strings.ToUpper(typeName)] = true
		}
	}
	return &Bundle{
		TitlePrefixes:         toSet(r.TitlePrefixes),
		NameParticles:         toSet(r.NameParticles),
		Stopwords:             toSet(r.Stopwords),
		Months:                toSet(r.Months),
		PersonRoles:           toSet(r.PersonRoles),
		GenericTitles:         toSet(r.GenericTitles),
		EventKeywords:         toSet(r.EventKeywords),
		GeographicMarkers:     toSet(r.GeographicMarkers),
		OrganisationalMarkers: toSet(r.OrganisationalMarkers),
		SchoolSuffixes:        append([]string(nil), r.SchoolSuffixes...),
		KnownPlaces:           toSet(r.KnownPlaces),
		KnownOrgs:             toSet(r.KnownOrgs),
		AmbiguousPlaces:       toSet(r.AmbiguousPlaces),
		FantasyHeadwords:      fantasy,
		Nicknames:             r.Nicknames,
		Whitelist:             r.Whitelist,
	}
}

// IsTitlePrefix reports whether word (already lowercased) is a title such
// as "mr" or "professor".
func (b *Bundle) IsTitlePrefix(word string) bool {
	return b.TitlePrefixes[strings.ToLower(word)]
}

// IsStopword reports whether word is a closed-class function word excluded
// from candidate surfaces by internal/nominate.
func (b *Bundle) IsStopword(word string) bool {
	return b.Stopwords[strings.ToLower(word)]
}

// FantasyTypesFor returns the set of EntityType names (as strings) whose
// headword set contains word, or nil if word is not a recognised fantasy
// headword.
func (b *Bundle) FantasyTypesFor(word string) map[string]bool {
	return b.FantasyHeadwords[strings.ToLower(word)]
}

// CanonicalNickname resolves a nickname to its canonical first name,
// returning ok=false when nick is not in the closed nickname table (spec.md
// §9 Open Question: nickname table is closed, not heuristic).
func (b *Bundle) CanonicalNickname(nick string) (canonical string, ok bool) {
	canonical, ok = b.Nicknames[strings.ToLower(nick)]
	return canonical, ok
}

// WhitelistType returns the EntityType name whitelisted for normalised, if
// any.
func (b *Bundle) WhitelistType(normalised string) (string, bool) {
	t, ok := b.Whitelist[strings.ToLower(normalised)]
	return t, ok
}
