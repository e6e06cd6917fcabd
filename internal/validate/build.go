package validate

import (
	"github.com/loreweave-dev/loreweave/internal/config"
)

// Build computes the full usage map for a project: registry
// initialization, one scan pass per construct family in fixed order, then
// the orphan and compatibility passes over the completed index. It is a
// pure function of its input; every call recomputes from scratch.
func Build(project *config.Project) *UsageMap {
	b := NewBuilder(project)

	for _, pressure := range project.Pressures {
		scanPressure(b, pressure)
	}
	for _, era := range project.Eras {
		scanEra(b, era)
	}
	for _, gen := range project.Generators {
		scanGenerator(b, gen)
	}
	for _, sys := range project.Systems {
		scanSystem(b, sys)
	}
	for _, action := range project.Actions {
		scanAction(b, action)
	}

	b.detectOrphans()
	b.checkCompatibility()

	return b.Map()
}
