package config

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyLogLevel       = "log.level"
	KeyServerAddr     = "server.addr"
	KeyAllowedOrigins = "server.allowed_origins"
	KeyTuningA4       = "tuning.a4"
)

// Init sets defaults and reads HARMONICS_* environment variables, e.g.
// HARMONICS_SERVER_ADDR for server.addr.
func Init() {
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyServerAddr, ":8080")
	viper.SetDefault(KeyAllowedOrigins, []string{"*"})
	viper.SetDefault(KeyTuningA4, 440.0)

	viper.SetEnvPrefix("harmonics")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func LogLevel() string {
	return viper.GetString(KeyLogLevel)
}

func ServerAddr() string {
	return viper.GetString(KeyServerAddr)
}

func AllowedOrigins() []string {
	return viper.GetStringSlice(KeyAllowedOrigins)
}

// TuningA4 is the frequency of the reference A, falling back to 440 Hz
// when the configured value is not positive.
func TuningA4() float64 {
	a4 := viper.GetFloat64(KeyTuningA4)
	if a4 <= 0 {
		return 440
	}
	return a4
}
