package postprocess

import (
	"strings"

	"github.com/google/uuid"
	"github.com/nucleus/entity-extractor/internal/model"
)

// SplitCoordination splits a minted PERSON entity whose canonical is a
// coordinated span ("James and Lily Potter") into one entity per named
// person. When the leading segment is a single token and the trailing
// segment carries a surname, that surname is attached to the leading
// segment's canonical and kept as its alias (spec.md §4.7). The trailing
// segment keeps the original entity ID; every other segment is minted as a
// new entity.
func SplitCoordination(entities []model.Entity, spans []model.EntitySpan) ([]model.Entity, []model.EntitySpan) {
	spansByEntity := map[string][]model.EntitySpan{}
	for _, s := range spans {
		spansByEntity[s.EntityID] = append(spansByEntity[s.EntityID], s)
	}

	var outEntities []model.Entity
	var outSpans []model.EntitySpan
	for _, e := range entities {
		segments := splitOnAnd(e.Canonical)
		if e.Type != model.TypePerson || len(segments) < 2 {
			outEntities = append(outEntities, e)
			outSpans = append(outSpans, spansByEntity[e.ID]...)
			continue
		}
		newEntities, newSpans := splitPersonEntity(e, spansByEntity[e.ID], segments)
		outEntities = append(outEntities, newEntities...)
		outSpans = append(outSpans, newSpans...)
	}
	return outEntities, outSpans
}

func splitPersonEntity(e model.Entity, origSpans []model.EntitySpan, segments []string) ([]model.Entity, []model.EntitySpan) {
	surname := sharedSurname(segments)

	ids := make([]string, len(segments))
	for i := range segments {
		if i == len(segments)-1 {
			ids[i] = e.ID
			continue
		}
		ids[i] = uuid.NewString()
	}

	var outEntities []model.Entity
	for i, seg := range segments {
		attach := i < len(segments)-1
		canonical := withSurname(seg, attach, surname)
		ent := e
		ent.ID = ids[i]
		ent.Canonical = canonical
		ent.Aliases = nil
		if canonical != seg {
			ent.AddAlias(seg)
		} else if !attach {
			// Trailing segment already carries the surname ("Lily Potter");
			// its bare first name is still a useful alias ("Lily").
			if first, ok := firstNameOf(seg, surname); ok {
				ent.AddAlias(first)
			}
		}
		for _, a := range e.Aliases {
			ent.AddAlias(a)
		}
		outEntities = append(outEntities, ent)
	}

	var outSpans []model.EntitySpan
	for _, s := range origSpans {
		segs := splitOnAnd(s.Surface)
		if len(segs) != len(segments) {
			s.EntityID = e.ID
			outSpans = append(outSpans, s)
			continue
		}
		offset := s.Start
		for i, seg := range segs {
			outSpans = append(outSpans, model.EntitySpan{
				EntityID: ids[i],
				Start:    offset,
				End:      offset + len(seg),
				Surface:  strings.TrimSpace(withSurname(seg, i < len(segs)-1, surname)),
				Source:   s.Source,
			})
			offset += len(seg) + len(" and ")
		}
	}
	return outEntities, outSpans
}

// sharedSurname returns the last word of the final coordinated segment when
// that segment has more than one word, empty otherwise.
func sharedSurname(segments []string) string {
	last := strings.Fields(segments[len(segments)-1])
	if len(last) < 2 {
		return ""
	}
	return last[len(last)-1]
}

// withSurname attaches surname to seg when seg is a single bare token and
// attach is true (i.e. seg is not the trailing, surname-bearing segment).
func withSurname(seg string, attach bool, surname string) string {
	if attach && surname != "" && len(strings.Fields(seg)) == 1 {
		return seg + " " + surname
	}
	return seg
}

// firstNameOf returns the leading word of seg when seg is "<first> <surname>"
// and surname is non-empty.
func firstNameOf(seg, surname string) (string, bool) {
	if surname == "" {
		return "", false
	}
	fields := strings.Fields(seg)
	if len(fields) != 2 || fields[1] != surname {
		return "", false
	}
	return fields[0], true
}

func splitOnAnd(surface string) []string {
	parts := strings.Split(surface, " and ")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
