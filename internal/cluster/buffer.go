package cluster

import (
	"sort"
	"strconv"

	"github.com/nucleus/entity-extractor/internal/lexicon"
	"github.com/nucleus/entity-extractor/internal/model"
)

// Buffer groups and merges durable mentions into clusters (spec.md §4.4).
// It holds no cyclic graph: a flat slice of clusters plus a secondary->
// primary merge map, applied once at the end of the second pass.
type Buffer struct {
	clusters []*model.MentionCluster
	byID     map[string]*model.MentionCluster
	nextID   int
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{byID: map[string]*model.MentionCluster{}}
}

// Cluster runs the full two-pass algorithm over mentions, in document
// order, and returns the resulting clusters sorted by each cluster's
// earliest mention position (for deterministic downstream processing). lex
// supplies the title vocabulary used by the last-name merge's supporting-
// evidence check (spec.md §4.4).
func Cluster(mentions []model.DurableMention, lex *lexicon.Bundle) []*model.MentionCluster {
	b := NewBuffer()
	b.firstPass(mentions)
	b.secondPass(lex)
	return b.sorted()
}

func (b *Buffer) firstPass(mentions []model.DurableMention) {
	byExact := map[string]*model.MentionCluster{}
	for _, m := range mentions {
		key := ExactKey(m.Surface)
		c, ok := byExact[key]
		if !ok {
			b.nextID++
			c = model.NewMentionCluster(clusterID(b.nextID), m)
			byExact[key] = c
			b.clusters = append(b.clusters, c)
			b.byID[c.ID] = c
			continue
		}
		c.Add(m)
	}
}

func clusterID(n int) string {
	return "c" + strconv.Itoa(n)
}

func (b *Buffer) secondPass(lex *lexicon.Bundle) {
	mergeInto := map[string]string{} // secondary ID -> primary ID

	mergeGroups := func(keyer func(*model.MentionCluster) (string, bool), extra func(primary, secondary *model.MentionCluster) bool) {
		groups := map[string][]*model.MentionCluster{}
		for _, c := range b.clusters {
			if _, merged := mergeInto[c.ID]; merged {
				continue
			}
			key, ok := keyer(c)
			if !ok {
				continue
			}
			groups[key] = append(groups[key], c)
		}
		for _, group := range groups {
			if len(group) < 2 {
				continue
			}
			primary := choosePrimary(group)
			for _, secondary := range group {
				if secondary == primary {
					continue
				}
				if !NERCompatible(primary, secondary) {
					continue
				}
				if extra != nil && !extra(primary, secondary) {
					continue
				}
				mergeInto[secondary.ID] = primary.ID
			}
		}
	}

	mergeGroups(func(c *model.MentionCluster) (string, bool) {
		return TitleStrippedKey(c.Canonical)
	}, nil)
	mergeGroups(func(c *model.MentionCluster) (string, bool) {
		return LastNameKey(c.Canonical)
	}, func(primary, secondary *model.MentionCluster) bool {
		return SharesSupportingContext(primary, secondary, lex)
	})

	b.applyMerges(mergeInto)
}

// choosePrimary picks the cluster with more mentions, ties broken
// lexicographically by canonical (spec.md §4.4).
func choosePrimary(group []*model.MentionCluster) *model.MentionCluster {
	best := group[0]
	for _, c := range group[1:] {
		if c.MentionCount() > best.MentionCount() {
			best = c
		} else if c.MentionCount() == best.MentionCount() && c.Canonical < best.Canonical {
			best = c
		}
	}
	return best
}

func (b *Buffer) applyMerges(mergeInto map[string]string) {
	resolve := func(id string) string {
		seen := map[string]bool{}
		for {
			next, ok := mergeInto[id]
			if !ok || seen[next] {
				return id
			}
			seen[id] = true
			id = next
		}
	}

	var kept []*model.MentionCluster
	for _, c := range b.clusters {
		if _, isSecondary := mergeInto[c.ID]; isSecondary {
			continue
		}
		kept = append(kept, c)
	}
	for secondaryID := range mergeInto {
		secondary := b.byID[secondaryID]
		primary := b.byID[resolve(secondaryID)]
		if primary == nil || primary == secondary {
			continue
		}
		primary.Absorb(secondary)
	}
	b.clusters = kept
}

func (b *Buffer) sorted() []*model.MentionCluster {
	out := append([]*model.MentionCluster(nil), b.clusters...)
	sort.Slice(out, func(i, j int) bool {
		return earliestPosition(out[i]) < earliestPosition(out[j])
	})
	return out
}

func earliestPosition(c *model.MentionCluster) int {
	best := -1
	for _, p := range c.Positions() {
		if best == -1 || p < best {
			best = p
		}
	}
	return best
}
