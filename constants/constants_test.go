package constants

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	Init()

	assert := assert.New(t)
	assert.Equal(8080, GetPort())
	assert.Equal([]string{"*"}, GetCorsOrigins())
	assert.Equal("info", GetLogLevel())
	assert.Equal(150*time.Millisecond, GetListenDebounce())
	assert.Equal(int64(8<<20), GetMaxUploadBytes())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SCALEFINDER_PORT", "9090")
	t.Setenv("SCALEFINDER_LOG_LEVEL", "debug")
	t.Setenv("SCALEFINDER_LISTEN_DEBOUNCE", "1s")
	viper.Reset()
	Init()

	assert := assert.New(t)
	assert.Equal(9090, GetPort())
	assert.Equal("debug", GetLogLevel())
	assert.Equal(time.Second, GetListenDebounce())
}
