package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"modcon/internal/infra"
	"modcon/internal/speclib"
)

// commandContext lazily loads configuration shared by subcommands.
type commandContext struct {
	envFile *string
	jsonOut *bool

	once sync.Once
	cfg  *infra.Config
	err  error
}

func newCommandContext(envFile *string, jsonOut *bool) *commandContext {
	return &commandContext{envFile: envFile, jsonOut: jsonOut}
}

func (c *commandContext) config() (*infra.Config, error) {
	c.once.Do(func() {
		if c.envFile != nil && *c.envFile != "" {
			if err := godotenv.Load(*c.envFile); err != nil {
				c.err = fmt.Errorf("load env file: %w", err)
				return
			}
		} else {
			_ = godotenv.Load()
		}
		c.cfg, c.err = infra.LoadConfig()
	})
	return c.cfg, c.err
}

func (c *commandContext) logger() zerolog.Logger {
	return infra.NewCLILogger(os.Stderr, zerolog.WarnLevel)
}

func (c *commandContext) library() (*speclib.Library, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, err
	}
	return speclib.New(speclib.Options{
		CatalogPath: cfg.PlatformSpecsPath,
		CustomPath:  cfg.CustomSpecsPath,
		CacheTTL:    cfg.SpecCacheTTL,
		Logger:      c.logger(),
	}), nil
}

func (c *commandContext) wantJSON() bool {
	return c.jsonOut != nil && *c.jsonOut
}

// readJSONFile decodes path, or stdin when path is "-".
func readJSONFile(path string, v any) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
