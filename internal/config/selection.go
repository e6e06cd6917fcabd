package config

// FilterType discriminates the selection-filter union.
type FilterType string

const (
	FilterHasRelationship   FilterType = "hasRelationship"
	FilterLacksRelationship FilterType = "lacksRelationship"
	FilterHasTag            FilterType = "hasTag"
	FilterLacksTag          FilterType = "lacksTag"
	FilterHasStatus         FilterType = "hasStatus"
	FilterPath              FilterType = "path"
)

// FilterTypes lists every filter variant, in declaration order.
var FilterTypes = []FilterType{
	FilterHasRelationship,
	FilterLacksRelationship,
	FilterHasTag,
	FilterLacksTag,
	FilterHasStatus,
	FilterPath,
}

// Filter narrows a selection. Exactly the fields relevant to Type are set;
// the rest stay at their zero value.
type Filter struct {
	Type             FilterType     `yaml:"type" json:"type"`
	RelationshipKind string         `yaml:"relationshipKind,omitempty" json:"relationshipKind,omitempty"`
	Tag              string         `yaml:"tag,omitempty" json:"tag,omitempty"`
	Tags             []string       `yaml:"tags,omitempty" json:"tags,omitempty"`
	Status           string         `yaml:"status,omitempty" json:"status,omitempty"`
	Path             *PathAssertion `yaml:"path,omitempty" json:"path,omitempty"`
}

// Saturation caps how many relationships of one kind a selected entity may
// already hold, optionally counting only those from a given source kind.
type Saturation struct {
	RelationshipKind string `yaml:"relationshipKind" json:"relationshipKind"`
	SourceKind       string `yaml:"sourceKind,omitempty" json:"sourceKind,omitempty"`
	Limit            int    `yaml:"limit,omitempty" json:"limit,omitempty"`
}

// Selection describes which entities a generator, system, or action
// operates on. All fields are optional; an empty selection matches nothing
// useful but is structurally valid.
type Selection struct {
	Kind             string      `yaml:"kind,omitempty" json:"kind,omitempty"`
	Kinds            []string    `yaml:"kinds,omitempty" json:"kinds,omitempty"`
	Subtypes         []string    `yaml:"subtypes,omitempty" json:"subtypes,omitempty"`
	ExcludeSubtypes  []string    `yaml:"excludeSubtypes,omitempty" json:"excludeSubtypes,omitempty"`
	Status           string      `yaml:"status,omitempty" json:"status,omitempty"`
	Statuses         []string    `yaml:"statuses,omitempty" json:"statuses,omitempty"`
	NotStatus        string      `yaml:"notStatus,omitempty" json:"notStatus,omitempty"`
	RelationshipKind string      `yaml:"relationshipKind,omitempty" json:"relationshipKind,omitempty"`
	Filters          []Filter    `yaml:"filters,omitempty" json:"filters,omitempty"`
	Saturation       *Saturation `yaml:"saturation,omitempty" json:"saturation,omitempty"`
}

// VariableSelection is a selection bound to a named variable. From names an
// incoming relationship kind to follow from the primary selection;
// PreferFilters bias the pick without excluding candidates.
type VariableSelection struct {
	Selection     `yaml:",inline"`
	From          string   `yaml:"from,omitempty" json:"from,omitempty"`
	PreferFilters []Filter `yaml:"preferFilters,omitempty" json:"preferFilters,omitempty"`
}
