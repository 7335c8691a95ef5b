package probe

import (
	"github.com/juliaos/evm-signer/internal/config"
	"github.com/juliaos/evm-signer/internal/util/command"
	"github.com/juliaos/evm-signer/pkg/bridge"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("probe",
		newLiveness(),
	)
}

func newLiveness() *cobra.Command {
	return &cobra.Command{
		Use:   "liveness",
		Short: "Checks that the signer bridge is alive",
		RunE: func(_ *cobra.Command, _ []string) error {
			b, err := bridge.New(config.DefaultServiceConfigFromEnv())
			if err != nil {
				return errors.Wrap(err, "failed to init bridge")
			}

			if status := b.HealthCheck(); status != bridge.StatusOK {
				return errors.Errorf("health check returned status %d", status)
			}

			return nil
		},
	}
}
