package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"cookie-importer/core/prompt"
	"cookie-importer/feature/importer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the import command
	importProfile string
	importFile    string
	importDryRun  bool
	noKill        bool
	noMaintenance bool
	yesConfirm    bool
)

// errAborted is returned when the user declines to stop the browser.
var errAborted = errors.New("import aborted")

// importCmd imports a cookie export into a profile.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a Netscape or JSON cookie export into a Firefox profile",
	Long: `Import cookies into the cookies.sqlite store of a Firefox or Zen profile.

The export format is detected automatically. The browser is killed first so
the store is not locked, its -wal and -shm files are removed and a backup is
written next to it. Cookies matching an existing row on host, name, path and
origin attributes update that row; the rest are inserted.

Examples:
  # Ask for the profile and the export file
  cookie-importer import

  # Non-interactive
  cookie-importer import --profile ~/.mozilla/firefox/abc.default --file cookies.txt --yes

  # Count what would change without touching the profile
  cookie-importer import --profile default-release --file cookies.json --dry-run

  # Read the export from object storage
  cookie-importer import --profile default-release --file s3://exports/cookies.json --yes`,
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importProfile, "profile", "p", "", "Profile directory or profile name")
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Cookie export file or s3://bucket/key")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Only count what would be inserted or updated")
	importCmd.Flags().BoolVar(&noKill, "no-kill", false, "Do not kill the running browser")
	importCmd.Flags().BoolVar(&noMaintenance, "no-maintenance", false, "Skip VACUUM and REINDEX")
	importCmd.Flags().BoolVarP(&yesConfirm, "yes", "y", false, "Kill the browser without asking")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := newRuntime("console")
	if err != nil {
		return err
	}
	defer rt.close()

	p := prompt.New(cmd.InOrStdin(), cmd.ErrOrStderr())

	profileArg, file, err := gatherInput(p, importProfile, rt.cfg.Import.Profile, importFile)
	if err != nil {
		return err
	}

	profileDir, err := rt.service.ResolveProfile(profileArg)
	if err != nil {
		return err
	}

	skipTerminate := noKill || !rt.cfg.Import.Terminate
	if !skipTerminate && !importDryRun {
		if err := confirmTermination(p, rt.cfg.Import.ProcessNames, yesConfirm); err != nil {
			return err
		}
	}

	name := "Importing"
	if importDryRun {
		name = "Planning"
	}
	bar := newProgress(cmd.ErrOrStderr(), name)

	report, err := rt.service.Run(ctx, importer.Request{
		Profile:         profileDir,
		Source:          file,
		DryRun:          importDryRun,
		SkipTerminate:   skipTerminate,
		SkipMaintenance: noMaintenance,
		Observer:        bar.Observe,
	})
	bar.Wait()

	if report != nil && report.Format != "" {
		fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))
	}
	if err != nil {
		return err
	}

	rt.logger.Info("Import completed",
		zap.String("profile", report.Profile),
		zap.Bool("dry_run", report.DryRun),
		zap.Int("skipped", report.Summary.Skipped),
	)
	return nil
}

// gatherInput returns the profile and export arguments, asking for the ones
// not given as flags. A configured default profile is used before asking.
func gatherInput(p *prompt.Prompter, profileFlag, profileDefault, fileFlag string) (string, string, error) {
	profile := strings.TrimSpace(profileFlag)
	if profile == "" {
		profile = strings.TrimSpace(profileDefault)
	}
	file := strings.TrimSpace(fileFlag)

	var err error
	if profile == "" {
		if profile, err = p.Required("Enter the Firefox profile directory"); err != nil {
			return "", "", &importer.SetupError{Op: "prompt", Path: "profile", Err: err}
		}
	}
	if file == "" {
		if file, err = p.Required("Enter the cookie export file"); err != nil {
			return "", "", &importer.SetupError{Op: "prompt", Path: "file", Err: err}
		}
	}
	return profile, file, nil
}

// confirmTermination asks before the browser processes are killed.
func confirmTermination(p *prompt.Prompter, names []string, yes bool) error {
	if yes {
		return nil
	}

	ok, err := p.Confirm(fmt.Sprintf("Running %s processes will be killed.", strings.Join(names, ", ")))
	if errors.Is(err, prompt.ErrNotInteractive) {
		return &importer.SetupError{Op: "confirm", Err: fmt.Errorf("%w: pass --yes or --no-kill", err)}
	}
	if err != nil {
		return err
	}
	if !ok {
		return errAborted
	}
	return nil
}
