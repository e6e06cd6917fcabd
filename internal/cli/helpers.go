package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loreweave-dev/loreweave/internal/config"
	"github.com/loreweave-dev/loreweave/internal/configfile"
)

func resolveProjectDir(args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return dir, nil
}

func loadProject(args []string) (*config.Project, string, error) {
	root, err := resolveProjectDir(args)
	if err != nil {
		return nil, "", err
	}
	project, err := configfile.Load(root)
	if err != nil {
		return nil, "", fmt.Errorf("load project: %w", err)
	}
	return project, root, nil
}

func boolFlag(cmd *cobra.Command, name string) (bool, error) {
	if cmd.Flags().Lookup(name) == nil {
		return false, nil
	}
	return cmd.Flags().GetBool(name)
}
