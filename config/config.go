package config

import (
	"errors"
	"io/ioutil"

	jsoniter "github.com/json-iterator/go"
)

// Config file (global)
var Config JSONConfig

// JSONConfig structure based on config.json
type JSONConfig struct {
	Version     string            `json:"version"`
	Shard       ShardConfig       `json:"shard"`
	Coordinator CoordinatorConfig `json:"coordinator"`
}

// ShardConfig structure based on shard part of config.json
type ShardConfig struct {
	Hostname string `json:"hostname"`
	Port     string `json:"port"`
}

// CoordinatorConfig structure based on coordinator part of config.json
type CoordinatorConfig struct {
	Hostname         string `json:"hostname"`
	Port             string `json:"port"`
	HeartbeatSeconds int    `json:"heartbeatSeconds"`
	StalenessSeconds int    `json:"stalenessSeconds"`
}

// Address returns the coordinator host:port pair
func (c CoordinatorConfig) Address() string {
	return c.Hostname + ":" + c.Port
}

// Address returns the shard host:port pair
func (s ShardConfig) Address() string {
	return s.Hostname + ":" + s.Port
}

// Load reads and parses the config file at path into Config
func Load(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	if err = jsoniter.Unmarshal(data, &Config); err != nil {
		return err
	}
	return validate()
}

// the heartbeat interval must stay below the staleness window or every
// shard would flap in and out of assignment
func validate() error {
	if Config.Coordinator.HeartbeatSeconds <= 0 {
		return errors.New("config: heartbeatSeconds must be positive")
	}
	if Config.Coordinator.StalenessSeconds <= Config.Coordinator.HeartbeatSeconds {
		return errors.New("config: stalenessSeconds must exceed heartbeatSeconds")
	}
	return nil
}
