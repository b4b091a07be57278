package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/jusunglee/kmrl-twin/internal/logger"
	"github.com/jusunglee/kmrl-twin/pkg/twin"
	"go.uber.org/multierr"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes one invocation and returns the process exit status
func run(args []string, stdout io.Writer) int {
	config := twin.DefaultConfig()

	flags := flag.NewFlagSet("twingen", flag.ContinueOnError)
	var (
		out    = flags.String("out", config.OutputPath, "Output JSON file")
		verify = flags.String("verify", "", "Check an existing dataset file instead of generating one")
		quiet  = flags.Bool("quiet", false, "Suppress the summary")
	)
	if err := flags.Parse(args); err != nil {
		return 2
	}

	// .env is optional; LOG_LEVEL may also come from the environment
	envErr := godotenv.Load()

	logger.Init(os.Getenv("LOG_LEVEL"))
	log := logger.Get()
	defer logger.Sync()

	if envErr != nil {
		log.Debugw("No .env file loaded", "error", envErr)
	}

	// Verification mode: no generation, exit status reflects the result
	if *verify != "" {
		doc, err := twin.ReadFile(*verify)
		if err != nil {
			log.Errorw("Failed to read dataset", "path", *verify, "error", err)
			return 1
		}
		if err := twin.Verify(doc); err != nil {
			for _, e := range multierr.Errors(err) {
				log.Errorw("Invariant violated", "path", *verify, "error", e)
			}
			return 1
		}
		fmt.Fprintf(stdout, "%s: dataset is consistent (snapshot %s)\n", *verify, doc.Meta.SnapshotID)
		return 0
	}

	config.OutputPath = *out
	config.Quiet = *quiet

	local := twin.NewLocal(config, log)
	if _, err := local.Run(stdout); err != nil {
		log.Errorw("Failed to generate dataset", "path", config.OutputPath, "error", err)
		return 1
	}
	return 0
}
