package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// SetVersion sets the build information reported by version and used by update
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = v
}

// versionCmd prints the build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sportradar %s (built %s)\n", version, buildTime)
	},
}

// updateCmd replaces the running binary with the latest release
var updateCmd = &cobra.Command{
	Use:     "update",
	Short:   "Update to the latest release",
	PreRunE: initializeConfig,
	RunE:    runUpdate,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := parseVersion(version)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(cfg.Update.Repository))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", cfg.Update.Repository)
	}

	if latest.LessOrEqual(current.String()) {
		logger.Info().Str("version", current.String()).Msg("Already up to date")
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	logger.Info().
		Str("from", current.String()).
		Str("to", latest.Version()).
		Msg("Updating")

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	logger.Info().Str("version", latest.Version()).Msg("Updated successfully")
	return nil
}

// parseVersion accepts release tags such as v1.2.3. Development builds
// cannot be updated.
func parseVersion(v string) (semver.Version, error) {
	if v == "" || v == "dev" {
		return semver.Version{}, fmt.Errorf("development build %q cannot be updated", v)
	}
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return semver.Version{}, fmt.Errorf("invalid version %q: %w", v, err)
	}
	return parsed, nil
}
