package cli

import (
	"os"

	"translation-keeper/internal/config"
	"translation-keeper/internal/restore"
	"translation-keeper/internal/scan"
	"translation-keeper/internal/synth"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "translation-keeper",
		Short: "Backup and restore Chinese translations of SMAPI mod manifests",
		Long: `Preserves the translated Name and Description of Stardew Valley mods
across updates: scan extracts them into a single store file, restore patches
them back into the live manifest.json files without touching anything else.`,
	}

	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(restoreCmd())
	rootCmd.AddCommand(genTestModsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [mods-dir]",
		Short: "Extract Name and Description from every manifest into the translation store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(rootArg(args))
		},
	}
}

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [mods-dir]",
		Short: "Patch stored Chinese translations back into the live manifests",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(rootArg(args))
		},
	}
}

func genTestModsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gen-test-mods [output-dir]",
		Short: "Generate a test mods tree from the translation store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenTestMods(rootArg(args))
		},
	}
}

// rootArg resolves the optional directory argument; both orchestrators
// default to the working directory, mirroring the drop-in scripts this
// tool replaces.
func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func runScan(root string) error {
	cfg := config.Load()

	sum, err := scan.NewScanner(cfg, log.Logger).Run(root)
	if err != nil {
		return err
	}

	log.Info().
		Int("found", sum.Found).
		Int("extracted", sum.Extracted).
		Int("no_content", sum.NoContent).
		Int("failed", sum.Failed).
		Msg("Scan finished")
	return nil
}

func runRestore(root string) error {
	cfg := config.Load()

	sum, err := restore.NewRestorer(cfg, log.Logger).Run(root)
	if err != nil {
		return err
	}

	log.Info().
		Int("restored", sum.Restored).
		Int("skipped", sum.Skipped).
		Int("failed", sum.Failed).
		Msg("Restore finished")
	return nil
}

func runGenTestMods(root string) error {
	cfg := config.Load()

	sum, err := synth.NewSynthesizer(cfg, log.Logger).Run(root)
	if err != nil {
		return err
	}

	log.Info().
		Int("created", sum.Created).
		Int("failed", sum.Failed).
		Msg("Test mod generation finished")
	return nil
}
