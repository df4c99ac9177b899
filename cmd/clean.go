package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DudeAlex/project-snapshot-collector/collector"
	"github.com/DudeAlex/project-snapshot-collector/constants/lipgloss"
	"github.com/DudeAlex/project-snapshot-collector/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// cleanCmd removes prior snapshot artifacts from the output directory.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove prior snapshot artifacts from the output directory.",
	Long: `The 'clean' command removes all snapshot-*.json and snapshot-*.txt
artifacts from the configured output directory. Use it to reclaim space or to
start over with a fresh set of snapshots.`,
	Run: func(cmd *cobra.Command, args []string) {
		force, _ := cmd.Flags().GetBool("force")
		rootDependencies := handleRootCommand(cmd)
		handleCleanCommand(rootDependencies, force)
	},
}

func init() {
	cleanCmd.Flags().BoolP("force", "f", false, "Remove artifacts without confirmation")
	rootCmd.AddCommand(cleanCmd)
}

func handleCleanCommand(rootDependencies *RootDependencies, force bool) {
	cfg := rootDependencies.Config
	snapshotsDir := cfg.OutputDir
	if !filepath.IsAbs(snapshotsDir) {
		snapshotsDir = filepath.Join(rootDependencies.Cwd, cfg.OutputDir)
	}

	entries, err := os.ReadDir(snapshotsDir)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println(lipgloss.Yellow.Render("No snapshot directory found. Nothing to clean."))
			return
		}
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Error reading %s: %v", snapshotsDir, err)))
		return
	}

	classifier := collector.NewClassifier(cfg.Rules())
	var artifacts []string
	for _, entry := range entries {
		if !entry.IsDir() && classifier.IsSnapshotArtifact(entry.Name()) {
			artifacts = append(artifacts, filepath.Join(snapshotsDir, entry.Name()))
		}
	}

	if len(artifacts) == 0 {
		fmt.Println(lipgloss.Yellow.Render("No snapshot artifacts found. Nothing to clean."))
		return
	}

	fmt.Println(lipgloss.Info.Render(fmt.Sprintf("Found %d snapshot artifact(s) in %s", len(artifacts), snapshotsDir)))

	if !force {
		reader := bufio.NewReader(os.Stdin)
		accepted, err := utils.ConfirmPrompt("Remove them?", reader)
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
			return
		}
		if !accepted {
			fmt.Println(lipgloss.Yellow.Render("Clean cancelled."))
			return
		}
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgCyan)).
		WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").
		WithDelay(100).WithRemoveWhenDone(true)
	spinnerInstance, _ := spinner.Start("Removing snapshot artifacts...")

	removed := 0
	for _, artifact := range artifacts {
		if err := os.Remove(artifact); err != nil {
			spinnerInstance.Stop()
			fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Warning: could not remove %s: %v", artifact, err)))
			continue
		}
		removed++
	}

	spinnerInstance.Stop()
	fmt.Print("\r")
	fmt.Println(lipgloss.Green.Render(fmt.Sprintf("✓ Removed %d snapshot artifact(s).", removed)))
}
