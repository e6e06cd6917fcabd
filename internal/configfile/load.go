package configfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/loreweave-dev/loreweave/internal/config"
)

// Authoring documents a project directory may contain. Every file is
// optional; a missing file reads as an empty collection.
const (
	SchemaFile     = "schema.yaml"
	PressuresFile  = "pressures.yaml"
	ErasFile       = "eras.yaml"
	GeneratorsFile = "generators.yaml"
	SystemsFile    = "systems.yaml"
	ActionsFile    = "actions.yaml"
	SeedsFile      = "seeds.yaml"
)

// Load reads a project directory into a typed config tree and checks
// structural shape (required ids, known system kinds). Semantic problems
// are left to the validation engine; this layer only guarantees the
// engine's input is well-typed.
func Load(root string) (*config.Project, error) {
	project := &config.Project{}

	if err := loadYAML(filepath.Join(root, SchemaFile), &project.Schema); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(root, PressuresFile), &project.Pressures); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(root, ErasFile), &project.Eras); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(root, GeneratorsFile), &project.Generators); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(root, SystemsFile), &project.Systems); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(root, ActionsFile), &project.Actions); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(root, SeedsFile), &project.Seeds); err != nil {
		return nil, err
	}

	if err := checkStructure(project); err != nil {
		return nil, err
	}
	return project, nil
}

// loadYAML unmarshals one document into out. A missing file is not an
// error.
func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return nil
}

// checkStructure rejects input the engine is not specified to handle:
// missing or duplicate top-level ids and unknown system kinds.
func checkStructure(project *config.Project) error {
	if err := checkIDs("entity kind", entityKindIDs(project.Schema.EntityKinds)); err != nil {
		return err
	}
	if err := checkIDs("relationship kind", relationshipKindIDs(project.Schema.RelationshipKinds)); err != nil {
		return err
	}

	ids := make([]string, 0, len(project.Pressures))
	for _, pressure := range project.Pressures {
		ids = append(ids, pressure.ID)
	}
	if err := checkIDs("pressure", ids); err != nil {
		return err
	}

	ids = ids[:0]
	for _, era := range project.Eras {
		ids = append(ids, era.ID)
	}
	if err := checkIDs("era", ids); err != nil {
		return err
	}

	ids = ids[:0]
	for _, gen := range project.Generators {
		ids = append(ids, gen.ID)
	}
	if err := checkIDs("generator", ids); err != nil {
		return err
	}

	ids = ids[:0]
	for _, sys := range project.Systems {
		ids = append(ids, sys.ID)
	}
	if err := checkIDs("system", ids); err != nil {
		return err
	}
	for _, sys := range project.Systems {
		if !knownSystemKind(sys.Kind) {
			return fmt.Errorf("system %s: unknown kind %q", sys.ID, sys.Kind)
		}
	}

	ids = ids[:0]
	for _, action := range project.Actions {
		ids = append(ids, action.ID)
	}
	if err := checkIDs("action", ids); err != nil {
		return err
	}

	ids = ids[:0]
	for _, seed := range project.Seeds {
		ids = append(ids, seed.ID)
	}
	return checkIDs("seed", ids)
}

func checkIDs(label string, ids []string) error {
	seen := make(map[string]bool, len(ids))
	for i, id := range ids {
		if id == "" {
			return fmt.Errorf("%s at index %d: missing id", label, i)
		}
		if seen[id] {
			return fmt.Errorf("duplicate %s id %q", label, id)
		}
		seen[id] = true
	}
	return nil
}

func knownSystemKind(kind config.SystemKind) bool {
	for _, known := range config.SystemKinds {
		if kind == known {
			return true
		}
	}
	return false
}

func entityKindIDs(kinds []config.EntityKind) []string {
	ids := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		ids = append(ids, kind.ID)
	}
	return ids
}

func relationshipKindIDs(kinds []config.RelationshipKind) []string {
	ids := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		ids = append(ids, kind.ID)
	}
	return ids
}
