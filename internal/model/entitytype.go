package model

// EntityType is a closed vocabulary of entity tags. Adding a member is a
// data change: see validatorTable in validators.go.
type EntityType string

// Core types.
const (
	TypePerson  EntityType = "PERSON"
	TypePlace   EntityType = "PLACE"
	TypeOrg     EntityType = "ORG"
	TypeEvent   EntityType = "EVENT"
	TypeConcept EntityType = "CONCEPT"
	TypeObject  EntityType = "OBJECT"
)

// Fiction types.
const (
	TypeRace       EntityType = "RACE"
	TypeCreature   EntityType = "CREATURE"
	TypeArtifact   EntityType = "ARTIFACT"
	TypeTechnology EntityType = "TECHNOLOGY"
	TypeMagic      EntityType = "MAGIC"
	TypeLanguage   EntityType = "LANGUAGE"
	TypeCurrency   EntityType = "CURRENCY"
	TypeMaterial   EntityType = "MATERIAL"
	TypeDrug       EntityType = "DRUG"
	TypeDeity      EntityType = "DEITY"
)

// Ability types.
const (
	TypeAbility   EntityType = "ABILITY"
	TypeSkill     EntityType = "SKILL"
	TypePower     EntityType = "POWER"
	TypeTechnique EntityType = "TECHNIQUE"
	TypeSpell     EntityType = "SPELL"
)

// Schema-extra types.
const (
	TypeDate    EntityType = "DATE"
	TypeTime    EntityType = "TIME"
	TypeWork    EntityType = "WORK"
	TypeItem    EntityType = "ITEM"
	TypeMisc    EntityType = "MISC"
	TypeSpecies EntityType = "SPECIES"
	TypeHouse   EntityType = "HOUSE"
	TypeTribe   EntityType = "TRIBE"
	TypeTitle   EntityType = "TITLE"
)

// AllTypes lists every member of the closed vocabulary.
var AllTypes = []EntityType{
	TypePerson, TypePlace, TypeOrg, TypeEvent, TypeConcept, TypeObject,
	TypeRace, TypeCreature, TypeArtifact, TypeTechnology, TypeMagic,
	TypeLanguage, TypeCurrency, TypeMaterial, TypeDrug, TypeDeity,
	TypeAbility, TypeSkill, TypePower, TypeTechnique, TypeSpell,
	TypeDate, TypeTime, TypeWork, TypeItem, TypeMisc, TypeSpecies,
	TypeHouse, TypeTribe, TypeTitle,
}

// Valid reports whether t is a member of the closed vocabulary.
func (t EntityType) Valid() bool {
	for _, candidate := range AllTypes {
		if candidate == t {
			return true
		}
	}
	return false
}
