package app

import (
	"fmt"

	"github.com/saradorri/backoffice/internal/config"
)

func (a *application) loadConfig(path string) error {
	env := config.GetEnvironment()

	c, err := config.Load(path, env)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.config = c

	fmt.Printf("[x] Config loaded successfully (%s)\n", env)
	return nil
}
