package config

import (
	"fmt"
)

type DbConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Address  string `mapstructure:"address"`
	DbName   string `mapstructure:"db-name"`
}

func (cfg *DbConfig) Validate() error {
	if cfg.Username == "" {
		return fmt.Errorf("db username is required")
	}
	if cfg.Password == "" {
		return fmt.Errorf("db password is required")
	}
	if cfg.Address == "" {
		return fmt.Errorf("db address is required")
	}
	if cfg.DbName == "" {
		return fmt.Errorf("db name is required")
	}

	return nil
}
