package main

import (
	"context"
	"log/slog"

	"hltvscrape/cmd/hltv-cli/commands"
	"hltvscrape/lib/telemetry"
)

func main() {
	ctx := context.Background()

	err := telemetry.SetupFromEnv(ctx, "hltv-cli")
	if err != nil {
		slog.Warn("failed to set up telemetry", "err", err)
	}
	defer telemetry.Shutdown(ctx)

	commands.ExecuteContext(ctx)
}
