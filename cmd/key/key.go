package key

import (
	"fmt"
	"syscall"

	"github.com/juliaos/evm-signer/internal/config"
	"github.com/juliaos/evm-signer/internal/util/command"
	"github.com/juliaos/evm-signer/internal/vault"
	"github.com/juliaos/evm-signer/pkg/bridge"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const minPasswordLength = 8

func New() *cobra.Command {
	return command.NewSubcommandGroup("key",
		newStore(),
		newAddress(),
	)
}

func newStore() *cobra.Command {
	return &cobra.Command{
		Use:   "store <identifier>",
		Short: "Generates and stores a new encrypted signing key",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg := config.DefaultServiceConfigFromEnv()

			password := cfg.Keystore.Password
			if password == "" {
				var err error
				password, err = promptNewPassword()
				if err != nil {
					return err
				}
			}

			b, err := bridge.New(cfg)
			if err != nil {
				return errors.Wrap(err, "failed to init bridge")
			}

			if status := b.StoreNewKey(args[0], password); status != bridge.StatusOK {
				return errors.Errorf("store failed with status %d", status)
			}

			//nolint:forbidigo // CLI output goes to stdout
			fmt.Printf("Stored new encrypted key for identifier %q\n", args[0])

			return nil
		},
	}
}

func newAddress() *cobra.Command {
	return &cobra.Command{
		Use:   "address <identifier>",
		Short: "Prints the EVM address controlled by a stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultServiceConfigFromEnv()

			password := cfg.Keystore.Password
			if password == "" {
				var err error
				password, err = promptPassword("Enter keystore password: ")
				if err != nil {
					return err
				}
			}

			vaultService, err := newVaultService(cfg)
			if err != nil {
				return err
			}

			address, err := vaultService.Address(cmd.Context(), args[0], password)
			if err != nil {
				return errors.Wrap(err, "failed to derive address")
			}

			//nolint:forbidigo // CLI output goes to stdout
			fmt.Println(address)

			return nil
		},
	}
}

func newVaultService(cfg config.Server) (vault.Service, error) {
	baseDir := vault.DefaultBaseDir
	if cfg.Keystore.Dir != "" {
		baseDir = vault.FixedBaseDir(cfg.Keystore.Dir)
	}

	vaultService, err := vault.NewService(vault.NewStorage(baseDir))
	if err != nil {
		return nil, errors.Wrap(err, "failed to init vault service")
	}

	return vaultService, nil
}

func promptNewPassword() (string, error) {
	password, err := promptPassword(fmt.Sprintf("Enter password for new key (min %d characters): ", minPasswordLength))
	if err != nil {
		return "", err
	}

	if len(password) < minPasswordLength {
		return "", errors.Errorf("password must be at least %d characters", minPasswordLength)
	}

	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return "", err
	}

	if password != confirm {
		return "", errors.New("passwords do not match")
	}

	return password, nil
}

// promptPassword prompts for password input (hides input)
//
//nolint:forbidigo // Password input requires direct terminal I/O
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)

	passwordBytes, err := term.ReadPassword(syscall.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password from terminal")
	}

	fmt.Println()

	return string(passwordBytes), nil
}
