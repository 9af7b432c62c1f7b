package main

import "sync"

type Config struct {
	// HintMode streams the heuristic's suggestion for the human player over
	// the hint websocket.
	HintMode   bool            `json:"hint_mode"`
	Heuristics HeuristicConfig `json:"heuristics"`
}

type HeuristicConfig struct {
	CornerWeight int `json:"corner_weight"`
	EdgeWeight   int `json:"edge_weight"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		HintMode: false,
		Heuristics: HeuristicConfig{
			CornerWeight: 4,
			EdgeWeight:   2,
		},
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}
