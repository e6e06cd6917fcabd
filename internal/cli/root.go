package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loreweave",
		Short: "Validate world-simulation authoring projects",
		Long: `Loreweave cross-references a world-simulation configuration project -
schema, pressures, eras, generators, systems, actions - into a
bidirectional usage index and reports dangling references, orphan
elements, and incompatible relationship usages.`,
	}

	checkCmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Build the usage index and report diagnostics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunCheck,
	}
	checkCmd.Flags().Bool("json", false, "Print machine-readable check output")
	checkCmd.Flags().Bool("strict", false, "Exit non-zero when diagnostics are present")

	usageCmd := &cobra.Command{
		Use:   "usage <type> <id>",
		Short: "Show usage and validation for one element",
		Long: `Shows where one element is referenced and whether those references are
valid. Type is one of: entityKind, relationshipKind, subtype, status,
tag, pressure, generator, system, action, era.`,
		Args: cobra.ExactArgs(2),
		RunE: RunUsage,
	}
	usageCmd.Flags().Bool("json", false, "Print machine-readable usage output")
	usageCmd.Flags().String("path", "", "Project directory (default: working directory)")

	tagsCmd := &cobra.Command{
		Use:   "tags [path]",
		Short: "Show tag usage counts across the project",
		Args:  cobra.MaximumNArgs(1),
		RunE:  RunTags,
	}
	tagsCmd.Flags().Bool("json", false, "Print machine-readable tag counts")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("loreweave %s\n", version)
		},
	}

	rootCmd.AddCommand(
		checkCmd,
		usageCmd,
		tagsCmd,
		versionCmd,
	)

	return rootCmd
}
