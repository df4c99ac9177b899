package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/DudeAlex/project-snapshot-collector/collector"
	"github.com/DudeAlex/project-snapshot-collector/collector/models"
	"github.com/DudeAlex/project-snapshot-collector/constants/lipgloss"
	"github.com/DudeAlex/project-snapshot-collector/output"
	"github.com/DudeAlex/project-snapshot-collector/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot [path]",
	Short: "Collect a snapshot of the project at path (default: current directory).",
	Long: `The 'snapshot' subcommand collects one snapshot of the project tree.
Three modes are available: 'full' attaches the content of every eligible text
file, 'diff' attaches content only for files git reports as changed, and
'minimal' records metadata only. When no --mode is given, an interactive menu
asks for one. The snapshot is saved as timestamped JSON and text reports in
the configured output directory.`,
}

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle through handleSnapshotCommand.
	snapshotCmd.Run = func(cmd *cobra.Command, args []string) {
		rootDependencies := handleRootCommand(cmd)
		handleSnapshotCommand(rootDependencies, args)
	}
	snapshotCmd.Flags().Bool("preview", false, "Print syntax-highlighted contents of collected files to the console")
	rootCmd.AddCommand(snapshotCmd)
}

func handleSnapshotCommand(rootDependencies *RootDependencies, args []string) {
	rootDir := rootDependencies.Cwd
	if len(args) > 0 {
		abs, err := filepath.Abs(args[0])
		if err != nil {
			fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Invalid path: %v", err)))
			os.Exit(1)
		}
		rootDir = abs
	}

	cfg := rootDependencies.Config
	mode := cfg.Mode
	if mode == "" {
		mode = promptForMode()
	}

	snapCollector := collector.NewCollector(rootDir, cfg.Rules())
	snapCollector.StatusRunner = &collector.GitStatusRunner{
		Timeout: time.Duration(cfg.Collector.GitTimeoutSeconds) * time.Second,
	}
	snapCollector.Warn = func(msg string) {
		fmt.Println(lipgloss.Yellow.Render("Warning: " + msg))
	}

	spinner := pterm.DefaultSpinner.WithStyle(pterm.NewStyle(pterm.FgLightBlue)).
		WithSequence("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏").
		WithDelay(100).WithRemoveWhenDone(true)
	spinnerInstance, _ := spinner.Start("Collecting snapshot...")

	var snapshot *models.Snapshot
	var err error
	printTxtBodies := false
	switch mode {
	case "full":
		snapshot, err = snapCollector.CollectAll()
		printTxtBodies = true
	case "diff":
		snapshot, err = snapCollector.CollectGitDiff()
	case "minimal":
		snapshot, err = snapCollector.CollectMinimal()
	default:
		spinnerInstance.Stop()
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("Unknown mode %q (expected full, diff, or minimal).", mode)))
		os.Exit(1)
	}

	spinnerInstance.Stop()
	fmt.Print("\r")

	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	// Concise index on the console
	console := &output.ConsoleWriter{}
	_ = console.Write(os.Stdout, snapshot)

	if preview, _ := snapshotCmd.Flags().GetBool("preview"); preview {
		printPreview(snapshot, cfg.Theme)
	}

	jsonOut, txtOut, err := saveSnapshot(snapshot, rootDir, cfg.OutputDir, printTxtBodies, cfg.Collector.MaxRenderBytes)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	fmt.Println(lipgloss.Green.Render("✓ Snapshot saved to " + jsonOut))
	fmt.Println(lipgloss.Green.Render("✓ Snapshot saved to " + txtOut))
}

// promptForMode shows the interactive menu and returns the chosen
// mode. Invalid choices fall back to minimal with a notice.
func promptForMode() string {
	menu := "Project Snapshot Menu\n" +
		"1. Full (all files with contents)\n" +
		"2. Diff (metadata for all files, contents only for git changes)\n" +
		"3. Minimal (structure and metadata only)"
	fmt.Println(lipgloss.BoxStyle.Render(menu))

	reader := bufio.NewReader(os.Stdin)
	choice, err := utils.InputPrompt("Choose mode [1/2/3]: ", reader)
	if err != nil {
		fmt.Println(lipgloss.Red.Render(fmt.Sprintf("%v", err)))
		os.Exit(1)
	}

	switch choice {
	case "1":
		return "full"
	case "2":
		return "diff"
	case "3":
		return "minimal"
	default:
		fmt.Println(lipgloss.Yellow.Render("Invalid choice, defaulting to minimal."))
		return "minimal"
	}
}

func printPreview(snapshot *models.Snapshot, theme string) {
	for _, file := range snapshot.Files {
		if !file.HasContent() {
			continue
		}
		fmt.Println(lipgloss.Cyan.Render(fmt.Sprintf("── %s (%s) ──", file.RelativePath, file.Language)))
		if err := utils.HighlightContent(file.Content, file.Language, theme); err != nil {
			fmt.Println(lipgloss.Yellow.Render(fmt.Sprintf("Warning: could not render %s: %v", file.RelativePath, err)))
		}
		fmt.Println()
	}
}

// saveSnapshot writes the JSON and text artifacts and returns their
// paths.
func saveSnapshot(snapshot *models.Snapshot, rootDir, outputDir string, printTxtBodies bool, maxRenderBytes int64) (string, string, error) {
	snapshotsDir := outputDir
	if !filepath.IsAbs(snapshotsDir) {
		snapshotsDir = filepath.Join(rootDir, outputDir)
	}
	if err := os.MkdirAll(snapshotsDir, 0755); err != nil {
		return "", "", fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	jsonOut := filepath.Join(snapshotsDir, "snapshot-"+timestamp+".json")
	txtOut := filepath.Join(snapshotsDir, "snapshot-"+timestamp+".txt")

	jsonFile, err := os.Create(jsonOut)
	if err != nil {
		return "", "", fmt.Errorf("failed to create %s: %w", jsonOut, err)
	}
	defer jsonFile.Close()
	if err := (&output.JSONWriter{}).Write(jsonFile, snapshot); err != nil {
		return "", "", err
	}

	txtFile, err := os.Create(txtOut)
	if err != nil {
		return "", "", fmt.Errorf("failed to create %s: %w", txtOut, err)
	}
	defer txtFile.Close()
	textWriter := &output.TextWriter{PrintContents: printTxtBodies, MaxRenderBytes: maxRenderBytes}
	if err := textWriter.Write(txtFile, snapshot); err != nil {
		return "", "", err
	}

	return jsonOut, txtOut, nil
}
