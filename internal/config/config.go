package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the Shiprocket external API base used when no
// override is configured.
const DefaultBaseURL = "https://apiv2.shiprocket.in/v1/external"

// Init wires viper to the environment, an optional .env file, and the
// root command's persistent flags. The API token is intentionally not
// validated here: an empty token is forwarded as-is and surfaces as an
// upstream authorization failure at call time.
func Init(root *cobra.Command) {
	viper.AutomaticEnv()
	_ = godotenv.Load(".env")
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
		bindNamedFlags(root)
	}
	setDefaults()
}

// bindNamedFlags maps dashed flag names onto their canonical config
// keys so --base-url and CARGODHAM_API_TOKEN resolve to the same value.
func bindNamedFlags(root *cobra.Command) {
	for key, flag := range map[string]string{
		KeyBaseURL:         "base-url",
		KeyUpstreamTimeout: "upstream-timeout",
		KeyAPIToken:        "api-token",
	} {
		if f := root.PersistentFlags().Lookup(flag); f != nil {
			_ = viper.BindPFlag(key, f)
		}
	}
}

func setDefaults() {
	viper.SetDefault(KeyVendorCode, "demo8")
	viper.SetDefault(KeyBaseURL, DefaultBaseURL)
	viper.SetDefault(KeyUpstreamTimeout, 30*time.Second)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyEnvironment, "development")
}

func APIToken() string               { return viper.GetString(KeyAPIToken) }
func VendorCode() string             { return viper.GetString(KeyVendorCode) }
func BaseURL() string                { return viper.GetString(KeyBaseURL) }
func UpstreamTimeout() time.Duration { return viper.GetDuration(KeyUpstreamTimeout) }
func LogLevel() string               { return viper.GetString(KeyLogLevel) }
func Environment() string            { return viper.GetString(KeyEnvironment) }
