package config

import (
	"fmt"
	"time"
)

type QueueConfig struct {
	Url      string `mapstructure:"url"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	// ExecuteQueue carries inbound invocations; it is consumed with
	// prefetch 1 so invocations stay serialized.
	ExecuteQueue string `mapstructure:"execute-queue"`
	// InstructionExchange receives outbound swap and transfer instructions.
	InstructionExchange string        `mapstructure:"instruction-exchange"`
	ProcessingTimeout   time.Duration `mapstructure:"processing-timeout"`
}

func (cfg *QueueConfig) Validate() error {
	if cfg.Url == "" {
		return fmt.Errorf("queue url is required")
	}
	if cfg.User == "" {
		return fmt.Errorf("queue user is required")
	}
	if cfg.Password == "" {
		return fmt.Errorf("queue password is required")
	}
	if cfg.ExecuteQueue == "" {
		return fmt.Errorf("execute queue name is required")
	}
	if cfg.InstructionExchange == "" {
		return fmt.Errorf("instruction exchange name is required")
	}
	if cfg.ProcessingTimeout <= 0 {
		return fmt.Errorf("processing-timeout must be positive")
	}

	return nil
}
