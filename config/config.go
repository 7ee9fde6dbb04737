// Package config loads the settings of the mcwire tools from a TOML file,
// an optional .env file and MCWIRE_* environment variables, in that order of
// increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"github.com/gstoney/mcwire"
	"github.com/gstoney/mcwire/item"
	"github.com/gstoney/mcwire/packet"
)

// Config holds everything cmd/mcserver needs.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Transport TransportConfig `toml:"transport"`
	Codec     CodecConfig     `toml:"codec"`
	Items     ItemsConfig     `toml:"items"`
	Log       LogConfig       `toml:"log"`
	Metrics   MetricsConfig   `toml:"metrics"`
}

type ServerConfig struct {
	Address    string `toml:"address"`
	MOTD       string `toml:"motd"`
	MaxPlayers int    `toml:"max_players"`

	// Negative disables compression.
	CompressionThreshold int           `toml:"compression_threshold"`
	HandshakeTimeout     time.Duration `toml:"handshake_timeout"`

	// Sent to players once they reach the play phase.
	DisconnectMessage string         `toml:"disconnect_message"`
	StarterItems      []StarterStack `toml:"starter_items"`
}

// StarterStack puts Count of the named item into the player's inventory.
type StarterStack struct {
	Item  string `toml:"item"`
	Count uint8  `toml:"count"`
}

type TransportConfig struct {
	MaxPacketLen       int32 `toml:"max_packet_len"`
	MaxDecompressedLen int32 `toml:"max_decompressed_len"`
}

// Transport converts the section to the transport's own config.
func (t TransportConfig) Transport() mcwire.TransportConfig {
	return mcwire.TransportConfig{
		MaxPacketLen:       t.MaxPacketLen,
		MaxDecompressedLen: t.MaxDecompressedLen,
	}
}

type CodecConfig struct {
	MaxStringLen    int32 `toml:"max_string_len"`
	MaxByteArrayLen int32 `toml:"max_byte_array_len"`
	MaxArrayLen     int32 `toml:"max_array_len"`
}

func (c CodecConfig) Limits() packet.Limits {
	return packet.Limits{
		MaxStringLen:    c.MaxStringLen,
		MaxByteArrayLen: c.MaxByteArrayLen,
		MaxArrayLen:     c.MaxArrayLen,
	}
}

type ItemsConfig struct {
	// YAML item table; empty means the built-in table.
	Path string `toml:"path"`
}

// Table loads the configured item table.
func (c ItemsConfig) Table() (*item.Table, error) {
	if c.Path == "" {
		return item.NewTable(item.Builtin())
	}
	return item.LoadTable(c.Path)
}

type LogConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // text or json
}

// NewLogger builds a slog.Logger writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.Level, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", c.Format)
}

type MetricsConfig struct {
	// Address of the /metrics listener; empty disables it.
	Address string `toml:"address"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	limits := packet.DefaultLimits()
	transport := mcwire.DefaultTransportConfig()

	return Config{
		Server: ServerConfig{
			Address:              "0.0.0.0:25565",
			MOTD:                 "A mcwire server",
			MaxPlayers:           20,
			CompressionThreshold: 256,
			HandshakeTimeout:     10 * time.Second,
			DisconnectMessage:    "Thanks for testing!",
		},
		Transport: TransportConfig{
			MaxPacketLen:       transport.MaxPacketLen,
			MaxDecompressedLen: transport.MaxDecompressedLen,
		},
		Codec: CodecConfig{
			MaxStringLen:    limits.MaxStringLen,
			MaxByteArrayLen: limits.MaxByteArrayLen,
			MaxArrayLen:     limits.MaxArrayLen,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the TOML file at path, then applies variables from envFiles and
// the process environment. A missing config or env file is not an error.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	env := map[string]string{}
	for _, f := range envFiles {
		vars, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return cfg, fmt.Errorf("reading env file %s: %w", f, err)
		}
		for k, v := range vars {
			env[k] = v
		}
	}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(k, envPrefix) {
			env[k] = v
		}
	}

	if err := cfg.applyEnv(env); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

const envPrefix = "MCWIRE_"

func (c *Config) applyEnv(env map[string]string) error {
	var errs *multierror.Error

	setString := func(key string, dst *string) {
		if v, ok := env[envPrefix+key]; ok {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) {
		v, ok := env[envPrefix+key]
		if !ok {
			return
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s%s: %w", envPrefix, key, err))
			return
		}
		*dst = n
	}

	setString("ADDRESS", &c.Server.Address)
	setString("MOTD", &c.Server.MOTD)
	setString("DISCONNECT_MESSAGE", &c.Server.DisconnectMessage)
	setInt("MAX_PLAYERS", &c.Server.MaxPlayers)
	setInt("COMPRESSION_THRESHOLD", &c.Server.CompressionThreshold)
	setString("ITEMS", &c.Items.Path)
	setString("LOG_LEVEL", &c.Log.Level)
	setString("LOG_FORMAT", &c.Log.Format)
	setString("METRICS_ADDRESS", &c.Metrics.Address)

	return errs.ErrorOrNil()
}

// Validate reports every problem in c at once.
func (c Config) Validate() error {
	var errs *multierror.Error

	if c.Server.Address == "" {
		errs = multierror.Append(errs, errors.New("server.address is empty"))
	}
	if c.Server.MaxPlayers < 0 {
		errs = multierror.Append(errs, fmt.Errorf("server.max_players is negative: %d", c.Server.MaxPlayers))
	}
	if c.Server.HandshakeTimeout < 0 {
		errs = multierror.Append(errs, fmt.Errorf("server.handshake_timeout is negative: %s", c.Server.HandshakeTimeout))
	}
	for i, s := range c.Server.StarterItems {
		if s.Item == "" || s.Count == 0 {
			errs = multierror.Append(errs, fmt.Errorf("server.starter_items[%d] needs an item and a count", i))
		}
	}
	if c.Transport.MaxPacketLen <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("transport.max_packet_len must be positive: %d", c.Transport.MaxPacketLen))
	}
	if c.Transport.MaxDecompressedLen <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("transport.max_decompressed_len must be positive: %d", c.Transport.MaxDecompressedLen))
	}
	if c.Server.CompressionThreshold > int(c.Transport.MaxDecompressedLen) {
		errs = multierror.Append(errs, fmt.Errorf("server.compression_threshold %d exceeds transport.max_decompressed_len", c.Server.CompressionThreshold))
	}
	if c.Codec.MaxStringLen <= 0 || c.Codec.MaxByteArrayLen <= 0 || c.Codec.MaxArrayLen <= 0 {
		errs = multierror.Append(errs, errors.New("codec limits must be positive"))
	}
	if _, err := c.Log.NewLogger(io.Discard); err != nil {
		errs = multierror.Append(errs, err)
	}

	return errs.ErrorOrNil()
}
