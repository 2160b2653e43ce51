package config

import (
	"testing"

	"dex-cpi-sol/internal/consts"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/conf"
)

func TestLoadWatchConfigDefaults(t *testing.T) {
	raw := []byte(`
logger:
  level: debug
grpc:
  endpoint: 127.0.0.1:10000
  insecure: true
  watch_accounts:
    - 58oQChx4yWmvKdwLLZzBi4ChoCc2fqCUWBkwMihLYQo2
rpc:
  endpoint: http://127.0.0.1:8899
redis:
  addr: 127.0.0.1:6379
`)
	var c WatchConfig
	require.NoError(t, conf.LoadFromYamlBytes(raw, &c))

	assert.Equal(t, "debug", c.LogConf.Level)
	assert.Equal(t, "console", c.LogConf.Format)
	assert.Equal(t, "127.0.0.1:10000", c.Grpc.Endpoint)
	assert.True(t, c.Grpc.Insecure)
	assert.Equal(t, 5, c.Grpc.SendTimeoutSec)
	assert.Equal(t, 3, c.Grpc.ReconnectIntervalSec)
	assert.Len(t, c.Grpc.WatchAccounts, 1)
	assert.Equal(t, "simulate", c.RPC.Mode)
	assert.Equal(t, 4, c.RPC.Workers)
	assert.Equal(t, 30, c.Redis.TTLSec)
}

func TestLoadCpiConfigRejectsUnknownInvoker(t *testing.T) {
	raw := []byte(`
logger:
  level: info
rpc:
  endpoint: http://127.0.0.1:8899
invoker: carrier-pigeon
`)
	var c CpiConfig
	assert.Error(t, conf.LoadFromYamlBytes(raw, &c))
}

func TestToKafkaOption(t *testing.T) {
	c := KafkaProducerConfig{Brokers: "a:9092,b:9092", BatchSize: 100, LingerMs: 2, Topic: "ix", Partitions: 8}
	opt := c.ToKafkaOption()
	assert.Equal(t, "a:9092,b:9092", opt.Brokers)
	require.Len(t, opt.Topics, 1)
	assert.Equal(t, "ix", opt.Topics[0].Topic)
	assert.Equal(t, 8, opt.Topics[0].Partitions)
}

func TestParseCaptures(t *testing.T) {
	data := base58.Encode([]byte{0x01, 0x02, 0x03})
	raw := []byte(`
captures:
  - name: sample
    dex: HumidiFi
    variant: swap
    accounts:
      - ` + consts.TokenProgramStr + `
      - ` + consts.SystemProgramStr + `
    data: ` + data + `
`)
	cs, err := ParseCaptures(raw)
	require.NoError(t, err)
	require.Len(t, cs, 1)

	addrs, payload, err := cs[0].Decode()
	require.NoError(t, err)
	assert.Equal(t, consts.TokenProgram, addrs[0])
	assert.Equal(t, consts.SystemProgram, addrs[1])
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, payload)
}

func TestParseCapturesInvalid(t *testing.T) {
	_, err := ParseCaptures([]byte("captures: []"))
	assert.ErrorIs(t, err, ErrEmptyCaptures)

	_, err = ParseCaptures([]byte("captures:\n  - name: x\n    variant: swap\n"))
	assert.Error(t, err)

	c := Capture{Name: "bad", Dex: "HumidiFi", Variant: "swap", Accounts: []string{"0OIl"}, Data: "2"}
	_, _, err = c.Decode()
	assert.Error(t, err)
}
