package main

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	_ "time/tzdata"

	"github.com/reshetovitsme/archive-viewer/internal/cli"
	"github.com/reshetovitsme/archive-viewer/internal/shared/errors"
	"github.com/reshetovitsme/archive-viewer/internal/shared/logging"
)

// Version information (set at build time)
var version = "dev"

func main() {
	// Setup structured logging until the config picks a level
	logging.Setup("info")

	if err := cli.Execute(version); err != nil {
		if stderrors.Is(err, errors.ErrPayloadNotFound) {
			fmt.Fprintln(os.Stderr, errors.ErrPayloadNotFound.Error()+"!")
			os.Exit(1)
		}

		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
