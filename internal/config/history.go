package config

import (
	"github.com/andrew-solarstorm/go-packages/common"
)

type HistoryConfig struct {
	// DBPath is the path to the BoltDB file for swap history.
	// Default: "./data/swaplaunch.db"
	DBPath string

	// Enabled controls whether completed swaps are persisted at all.
	Enabled bool

	// ListLimit caps how many records a history query returns.
	ListLimit int
}

func (c *HistoryConfig) Key() string {
	return HISTORY_CONFIG_KEY
}

func (c *HistoryConfig) Load() error {
	c.DBPath = common.GetEnvOrDefault("HISTORY_DB_PATH", "./data/swaplaunch.db")
	c.Enabled = common.GetEnvOrDefault("HISTORY_ENABLED", "true") == "true"
	c.ListLimit = common.GetEnvOrDefaultInt("HISTORY_LIST_LIMIT", 100)
	return nil
}

func (c *HistoryConfig) Validate() error {
	return nil
}
