package cmd

import (
	"fmt"
	"os"

	"github.com/juliaos/evm-signer/cmd/env"
	"github.com/juliaos/evm-signer/cmd/key"
	"github.com/juliaos/evm-signer/cmd/probe"
	"github.com/juliaos/evm-signer/cmd/sign"
	"github.com/juliaos/evm-signer/internal/config"
	"github.com/juliaos/evm-signer/internal/util"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "app",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

A local secret-key vault and EVM transaction signer.
Requires configuration through ENV.`, config.ModuleName),
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		cfg := config.DefaultServiceConfigFromEnv()
		util.ConfigureLogger(util.LogLevelFromString(cfg.Logger.Level), cfg.Logger.PrettyPrintConsole)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	// attach the subcommands
	rootCmd.AddCommand(
		env.New(),
		key.New(),
		probe.New(),
		sign.New(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		os.Exit(1)
	}
}
