package constants

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "SCALEFINDER"

// config keys
const (
	Port           = "port"
	CorsOrigins    = "cors.origins"
	LogLevel       = "log.level"
	LogFile        = "log.file"
	ListenDebounce = "listen.debounce"
	ListenPort     = "listen.port"
	MidiDir        = "midi.dir"
	MaxUploadBytes = "upload.max_bytes"
)

// Init wires viper to the environment, e.g. SCALEFINDER_PORT or
// SCALEFINDER_LOG_LEVEL, and sets defaults.
func Init() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(Port, 8080)
	viper.SetDefault(CorsOrigins, []string{"*"})
	viper.SetDefault(LogLevel, "info")
	viper.SetDefault(LogFile, "")
	viper.SetDefault(ListenDebounce, 150*time.Millisecond)
	viper.SetDefault(ListenPort, 0)
	viper.SetDefault(MidiDir, "")
	viper.SetDefault(MaxUploadBytes, 8<<20)
}

func GetPort() int {
	return viper.GetInt(Port)
}

func GetCorsOrigins() []string {
	return viper.GetStringSlice(CorsOrigins)
}

func GetLogLevel() string {
	return viper.GetString(LogLevel)
}

func GetLogFile() string {
	return viper.GetString(LogFile)
}

func GetListenDebounce() time.Duration {
	return viper.GetDuration(ListenDebounce)
}

func GetListenPort() int {
	return viper.GetInt(ListenPort)
}

func GetMidiDir() string {
	return viper.GetString(MidiDir)
}

func GetMaxUploadBytes() int64 {
	return viper.GetInt64(MaxUploadBytes)
}
