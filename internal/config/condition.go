package config

// ConditionType discriminates the condition union.
type ConditionType string

const (
	ConditionPressure           ConditionType = "pressure"
	ConditionPressureCompare    ConditionType = "pressureCompare"
	ConditionEntityCount        ConditionType = "entityCount"
	ConditionRelationshipCount  ConditionType = "relationshipCount"
	ConditionEntityExists       ConditionType = "entityExists"
	ConditionRelationshipExists ConditionType = "relationshipExists"
	ConditionHasTag             ConditionType = "hasTag"
	ConditionLacksTag           ConditionType = "lacksTag"
	ConditionStatus             ConditionType = "status"
	ConditionPath               ConditionType = "path"
	ConditionAllOf              ConditionType = "allOf"
	ConditionAnyOf              ConditionType = "anyOf"
)

// ConditionTypes lists every condition variant, in declaration order.
var ConditionTypes = []ConditionType{
	ConditionPressure,
	ConditionPressureCompare,
	ConditionEntityCount,
	ConditionRelationshipCount,
	ConditionEntityExists,
	ConditionRelationshipExists,
	ConditionHasTag,
	ConditionLacksTag,
	ConditionStatus,
	ConditionPath,
	ConditionAllOf,
	ConditionAnyOf,
}

// Condition is a boolean predicate over world state. A pressure condition
// names either one pressure or a list, all compared against Value;
// pressureCompare names a Left/Right pair compared against each other.
// allOf/anyOf recurse into Conditions.
type Condition struct {
	Type ConditionType `yaml:"type" json:"type"`

	Pressure  string   `yaml:"pressure,omitempty" json:"pressure,omitempty"`
	Pressures []string `yaml:"pressures,omitempty" json:"pressures,omitempty"`
	Left      string   `yaml:"left,omitempty" json:"left,omitempty"`
	Right     string   `yaml:"right,omitempty" json:"right,omitempty"`
	Op        string   `yaml:"op,omitempty" json:"op,omitempty"`
	Value     float64  `yaml:"value,omitempty" json:"value,omitempty"`

	EntityKind       string `yaml:"entityKind,omitempty" json:"entityKind,omitempty"`
	Subtype          string `yaml:"subtype,omitempty" json:"subtype,omitempty"`
	RelationshipKind string `yaml:"relationshipKind,omitempty" json:"relationshipKind,omitempty"`
	Tag              string `yaml:"tag,omitempty" json:"tag,omitempty"`
	Status           string `yaml:"status,omitempty" json:"status,omitempty"`

	Path       *PathAssertion `yaml:"path,omitempty" json:"path,omitempty"`
	Conditions []Condition    `yaml:"conditions,omitempty" json:"conditions,omitempty"`
}
