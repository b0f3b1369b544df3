// Package config loads server settings from an optional TOML file and lets
// command-line flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"

	mg "chess-rules/chessmg"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Server ServerConfig `toml:"server"`
	Games  GamesConfig  `toml:"games"`
}

type ServerConfig struct {
	Addr            string `toml:"addr"`
	AllowOrigins    string `toml:"allow_origins"`
	ReadBufferSize  int    `toml:"read_buffer_size"`
	WriteBufferSize int    `toml:"write_buffer_size"`
}

type GamesConfig struct {
	StartFEN string `toml:"start_fen"`
	MaxGames int    `toml:"max_games"`
}

// Default returns the settings used when no file or flag says otherwise.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":3000",
			AllowOrigins:    "*",
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		Games: GamesConfig{
			StartFEN: mg.FENStartPos,
			MaxGames: 1000,
		},
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown keys %v", ErrInvalidConfig, path, undecoded)
	}
	return cfg, cfg.Validate()
}

// Validate checks values that would otherwise fail later at runtime.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	}
	if c.Server.ReadBufferSize <= 0 || c.Server.WriteBufferSize <= 0 {
		return fmt.Errorf("%w: websocket buffer sizes must be positive", ErrInvalidConfig)
	}
	if c.Games.MaxGames < 0 {
		return fmt.Errorf("%w: games.max_games is negative", ErrInvalidConfig)
	}
	if _, err := mg.ParseFEN(c.Games.StartFEN); err != nil {
		return fmt.Errorf("%w: games.start_fen: %w", ErrInvalidConfig, err)
	}
	return nil
}

// FromArgs parses command-line flags, loads -config when given and applies
// every flag that was set explicitly on top.
func FromArgs(name string, args []string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	path := fs.String("config", "", "TOML config file")
	addr := fs.String("addr", "", "listen address (default :3000)")
	origins := fs.String("origins", "", "comma separated CORS origins (default *)")
	startFEN := fs.String("start-fen", "", "FEN new games start from")
	maxGames := fs.Int("max-games", 0, "maximum live games, 0 for no limit")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if *path != "" {
		loaded, err := Load(*path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Server.Addr = *addr
		case "origins":
			cfg.Server.AllowOrigins = *origins
		case "start-fen":
			cfg.Games.StartFEN = *startFEN
		case "max-games":
			cfg.Games.MaxGames = *maxGames
		}
	})
	return cfg, cfg.Validate()
}
