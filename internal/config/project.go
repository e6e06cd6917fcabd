package config

// Project is the complete authoring-format configuration tree handed to
// the validation engine. It is treated as immutable input; the engine
// never mutates it.
type Project struct {
	Schema     Schema      `yaml:"schema,omitempty" json:"schema,omitempty"`
	Pressures  []Pressure  `yaml:"pressures,omitempty" json:"pressures,omitempty"`
	Eras       []Era       `yaml:"eras,omitempty" json:"eras,omitempty"`
	Generators []Generator `yaml:"generators,omitempty" json:"generators,omitempty"`
	Systems    []System    `yaml:"systems,omitempty" json:"systems,omitempty"`
	Actions    []Action    `yaml:"actions,omitempty" json:"actions,omitempty"`
	Seeds      []Seed      `yaml:"seeds,omitempty" json:"seeds,omitempty"`
}
