package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// ModuleName is the canonical name of this service
const ModuleName = "evm-signer"

// KeystorePasswordEnvKey is the fixed environment variable carrying the
// master password. The password is never persisted and never logged.
const KeystorePasswordEnvKey = "SIGNER_KEYSTORE_PASSWORD"

// Keystore holds key vault settings
type Keystore struct {
	// Dir overrides the default per-user record directory when non-empty
	Dir string `json:"dir"`
	// Password is the master password protecting stored keys
	Password string `json:"-"`
}

// Logger holds logging settings
type Logger struct {
	Level              string `json:"level"`
	PrettyPrintConsole bool   `json:"pretty_print_console"`
}

// Server is the full service configuration, resolved once from the
// environment
type Server struct {
	Keystore Keystore `json:"keystore"`
	Logger   Logger   `json:"logger"`
}

// DefaultServiceConfigFromEnv returns the service config with defaults
// overridden through SIGNER_* environment variables. An optional .env file
// in the working directory is loaded first.
func DefaultServiceConfigFromEnv() Server {
	if err := gotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	v := viper.New()
	v.SetEnvPrefix("SIGNER")
	v.AutomaticEnv()

	v.SetDefault("keystore_dir", "")
	v.SetDefault("keystore_password", "")
	v.SetDefault("logger_level", "info")
	v.SetDefault("logger_pretty_print_console", false)

	return Server{
		Keystore: Keystore{
			Dir:      v.GetString("keystore_dir"),
			Password: v.GetString("keystore_password"),
		},
		Logger: Logger{
			Level:              v.GetString("logger_level"),
			PrettyPrintConsole: v.GetBool("logger_pretty_print_console"),
		},
	}
}
