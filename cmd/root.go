package cmd

import (
	"fmt"
	"os"

	"github.com/DudeAlex/project-snapshot-collector/config"
	"github.com/DudeAlex/project-snapshot-collector/constants/lipgloss"
	"github.com/spf13/cobra"
)

// RootDependencies holds the wiring shared by every subcommand.
type RootDependencies struct {
	Cwd    string
	Config *config.Config
}

var rootCmd = &cobra.Command{
	Use:   "snapcollect",
	Short: "Collect a structured snapshot of a project's files.",
	Long: `snapcollect walks a project tree once and produces a portable snapshot
of its files: relative paths, sizes, modification times, inferred languages,
git status, and (depending on the selected mode) textual contents. Snapshots
are written as JSON and text reports for inspection, review, or hand-off.`,
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion, _ := cmd.Flags().GetBool("version"); showVersion {
			fmt.Println(config.DefaultConfig.Version)
			return
		}
		rootDependencies := handleRootCommand(cmd)
		handleSnapshotCommand(rootDependencies, args)
	},
}

func handleRootCommand(cmd *cobra.Command) *RootDependencies {
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error getting current directory: %v", err)))
		os.Exit(1)
	}

	cfg := config.LoadConfigs(cmd.Root(), cwd)

	return &RootDependencies{
		Cwd:    cwd,
		Config: cfg,
	}
}

func init() {
	config.InitFlags(rootCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}
}
