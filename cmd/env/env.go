package env

import (
	"encoding/json"
	"fmt"

	"github.com/juliaos/evm-signer/internal/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the resolved service configuration",
		Long:  "Prints the configuration as resolved from the environment. The master password is never included.",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := config.DefaultServiceConfigFromEnv()

			data, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to marshal config")
			}

			//nolint:forbidigo // CLI output goes to stdout
			fmt.Println(string(data))

			return nil
		},
	}
}
