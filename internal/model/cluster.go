package model

// MentionCluster is a set of durable mentions judged to refer to the same
// referent (spec.md §3). Clusters are mutable only during the buffer/
// cluster and promotion stages; internal/mint reads them but never writes
// them, and internal/cluster never hands out a pointer into a slice that
// outlives the clustering pass, per the "no cyclic cluster graph" design
// note: merges are tracked as an id->id map and applied once, in
// internal/cluster/buffer.go's final pass.
type MentionCluster struct {
	ID            string
	Canonical     string
	Mentions      []DurableMention
	AliasVariants map[string]struct{}
	NERHints      map[string]int
}

// NewMentionCluster starts a cluster from its first mention.
func NewMentionCluster(id string, first DurableMention) *MentionCluster {
	c := &MentionCluster{
		ID:            id,
		Canonical:     first.Surface,
		AliasVariants: map[string]struct{}{},
		NERHints:      map[string]int{},
	}
	c.Add(first)
	return c
}

// Add folds another mention into the cluster, updating alias variants and
// NER hint counts.
func (c *MentionCluster) Add(m DurableMention) {
	c.Mentions = append(c.Mentions, m)
	c.AliasVariants[m.Surface] = struct{}{}
	if m.NERHint != "" {
		c.NERHints[m.NERHint]++
	}
}

// Absorb merges another cluster's mentions and alias variants into c.
func (c *MentionCluster) Absorb(other *MentionCluster) {
	for _, m := range other.Mentions {
		c.Mentions = append(c.Mentions, m)
		c.AliasVariants[m.Surface] = struct{}{}
	}
	for hint, n := range other.NERHints {
		c.NERHints[hint] += n
	}
}

// Positions returns the document start offset of every mention, in the
// order the mentions were added. spec.md defines positions as
// [m.start for m in mentions]; this is derived rather than stored so it can
// never drift from Mentions.
func (c *MentionCluster) Positions() []int {
	positions := make([]int, len(c.Mentions))
	for i, m := range c.Mentions {
		positions[i] = m.Start
	}
	return positions
}

// MentionCount returns len(mentions).
func (c *MentionCluster) MentionCount() int {
	return len(c.Mentions)
}

// strongNERLabels are the NER labels that can singly justify promotion
// (spec.md §4.4).
var strongNERLabels = map[string]bool{
	"PERSON": true, "GPE": true, "ORG": true, "LOC": true,
}

// HasStrongNER reports whether any NER label in {PERSON, GPE, ORG, LOC} has
// count >= 2, or count >= 1 when the cluster has <= 2 mentions.
func (c *MentionCluster) HasStrongNER() bool {
	small := c.MentionCount() <= 2
	for label, n := range c.NERHints {
		if !strongNERLabels[label] {
			continue
		}
		if n >= 2 || (small && n >= 1) {
			return true
		}
	}
	return false
}

// RepresentativeNER returns the most frequent NER hint and whether one exists.
func (c *MentionCluster) RepresentativeNER() (string, bool) {
	best, bestN := "", 0
	for label, n := range c.NERHints {
		if n > bestN {
			best, bestN = label, n
		}
	}
	return best, bestN > 0
}

// introductionRoles are dependency roles that by themselves signal an
// introduction pattern (spec.md §4.4).
var introductionRoles = map[string]bool{"appos": true}

// HasIntroductionPattern reports whether any mention carries an appositive
// dependency role, or a textual "X, a <role>" / "named X" cue. The textual
// cues are detected on the sentence text surrounding the mention by the
// caller (internal/gate), which sets Candidate.Strategy to
// "introduction-cue" when it recognises one; HasIntroductionPattern checks
// both signals.
func (c *MentionCluster) HasIntroductionPattern() bool {
	for _, m := range c.Mentions {
		for _, t := range m.Tokens {
			if introductionRoles[t.Dep] {
				return true
			}
		}
		if m.Strategy == "introduction-cue" {
			return true
		}
	}
	return false
}
