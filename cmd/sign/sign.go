package sign

import (
	"fmt"

	"github.com/juliaos/evm-signer/internal/config"
	"github.com/juliaos/evm-signer/pkg/bridge"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// defaultOutputCapacity fits the hex encoding of any transaction this CLI
// reasonably produces; callers embedding the bridge size their own buffers.
const defaultOutputCapacity = 8192

func New() *cobra.Command {
	var (
		to       string
		value    string
		data     string
		nonce    uint64
		gasPrice string
		gasLimit uint64
		chainID  uint64
	)

	cmd := &cobra.Command{
		Use:   "sign <identifier>",
		Short: "Signs a legacy EVM transaction with a stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			b, err := bridge.New(config.DefaultServiceConfigFromEnv())
			if err != nil {
				return errors.Wrap(err, "failed to init bridge")
			}

			out := make([]byte, defaultOutputCapacity)
			status := b.SignTransaction(args[0], to, value, data, nonce, gasPrice, gasLimit, chainID, out)
			if status < 0 {
				return errors.Errorf("sign failed with status %d", status)
			}

			//nolint:forbidigo // CLI output goes to stdout
			fmt.Println(string(out[:status]))

			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient address (20-byte hex)")
	cmd.Flags().StringVar(&value, "value", "0x0", "Amount in wei (hex)")
	cmd.Flags().StringVar(&data, "data", "", "Transaction payload (hex, may be empty)")
	cmd.Flags().Uint64Var(&nonce, "nonce", 0, "Transaction nonce")
	cmd.Flags().StringVar(&gasPrice, "gas-price", "", "Gas price in wei (hex)")
	cmd.Flags().Uint64Var(&gasLimit, "gas-limit", 21000, "Gas limit")
	cmd.Flags().Uint64Var(&chainID, "chain-id", 1, "Chain ID bound into the signature")

	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("gas-price")

	return cmd
}
