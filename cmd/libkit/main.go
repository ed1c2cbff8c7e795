/*
PURPOSE:
  Entry point for the libkit release tooling.
  Initializes the CLI root command and executes it.

REQUIREMENTS:
  User-specified:
  - Must serve as the single binary entry point.
  - Any failure (validation, missing input, detected regressions) exits 1.

  Implementation-discovered:
  - Uses cobra for CLI command management.
  - Interrupts cancel the context so S3 transfers stop promptly.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.ExecuteContext()
  - Depends on: internal/cli package

ERROR HANDLING:
  - Explicit error check on Execute(); "Error: <err>" on stderr and exit code 1.

IMPLEMENTATION RULES:
  - Critical: Keep main() minimal. All logic belongs in internal/ packages.
  - Do not put business logic here.

USAGE:
  go build -o libkit ./cmd/libkit
  ./libkit [command] [flags]

RELATED FILES:
  - internal/cli/root.go - The actual root command definition.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/daryltucker/libkit/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
