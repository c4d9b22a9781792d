//go:build integration

package integration

import (
	"context"
	"os"
)

// initEnvVars exports the environment the application reads its configuration from.
type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for k, v := range i.envVars {
		if err := os.Setenv(k, v); err != nil {
			return ctx, err
		}
	}
	return ctx, nil
}
