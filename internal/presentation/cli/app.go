// Package cli implements the creditrisk command line client. Every command
// runs either in-process against a model file or remotely over gRPC.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	urfave "github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/bibbank/creditrisk/internal/domain/valueobject"
	"github.com/bibbank/creditrisk/pkg/observability"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	defaultModelPath = "models/credit_default_rf.json"
)

const (
	debugFlag           = "debug"
	formatFlag          = "format"
	modelFlag           = "model"
	mediumThresholdFlag = "medium-threshold"
	highThresholdFlag   = "high-threshold"
	serverFlag          = "server"
	tokenFlag           = "token"
	caFlag              = "ca"
	serverNameFlag      = "server-name"
)

var (
	version = "v0.0.1-default"
	commit  = ""
)

// globalFlags are built per app; urfave flags keep parsed state after first use.
func globalFlags() []urfave.Flag {
	return []urfave.Flag{
		&urfave.BoolFlag{
			Name:  debugFlag,
			Usage: "Prints verbose logs to stderr",
		},
		&urfave.StringFlag{
			Name:  formatFlag,
			Usage: "Output format [text, json, yaml]",
			Value: formatText,
		},
		&urfave.StringFlag{
			Name:    modelFlag,
			Usage:   "Path to the model artifact (.json, .yaml) used for local scoring",
			Value:   defaultModelPath,
			Sources: urfave.EnvVars("MODEL_PATH"),
		},
		&urfave.Float64Flag{
			Name:  mediumThresholdFlag,
			Usage: "Probability at which the Medium tier starts",
			Value: valueobject.DefaultMediumThreshold,
		},
		&urfave.Float64Flag{
			Name:  highThresholdFlag,
			Usage: "Probability at which the High tier starts",
			Value: valueobject.DefaultHighThreshold,
		},
		&urfave.StringFlag{
			Name:    serverFlag,
			Usage:   "Address of a running credit-risk-service; empty scores locally",
			Sources: urfave.EnvVars("CREDITRISK_SERVER"),
		},
		&urfave.StringFlag{
			Name:    tokenFlag,
			Usage:   "Bearer token sent to the server",
			Sources: urfave.EnvVars("CREDITRISK_TOKEN"),
		},
		&urfave.StringFlag{
			Name:  caFlag,
			Usage: "CA certificate used to verify the server; enables TLS",
		},
		&urfave.StringFlag{
			Name:  serverNameFlag,
			Usage: "Expected server name in the TLS certificate",
			Value: "localhost",
		},
	}
}

// Execute creates and runs the CLI application.
func Execute() {
	if err := NewApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// NewApp builds the root command writing its results to out.
func NewApp(out io.Writer) *urfave.Command {
	return &urfave.Command{
		Name:            "creditrisk",
		Version:         fmt.Sprintf("%s (%s)", version, commit),
		Usage:           "Predict the probability that a credit card customer defaults next month",
		Writer:          out,
		ErrWriter:       os.Stderr,
		HideHelpCommand: true,
		Flags:           globalFlags(),
		Commands: []*urfave.Command{
			predictCommand(),
			summaryCommand(),
			formCommand(),
			tokenCommand(),
			certsCommand(),
		},
		Before: func(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
			level := "warn"
			if cmd.Bool(debugFlag) {
				level = "debug"
			}
			observability.InitLogger(observability.LogConfig{
				Output: os.Stderr,
				Level:  level,
				Format: "text",
			})

			switch f := outputFormat(cmd); f {
			case formatText, formatJSON, formatYAML:
				return ctx, nil
			default:
				return ctx, fmt.Errorf("unsupported format %q", f)
			}
		},
	}
}

func outputFormat(cmd *urfave.Command) string {
	f := strings.ToLower(cmd.String(formatFlag))
	if f == "yml" {
		return formatYAML
	}
	return f
}

// encode writes v as JSON or YAML. Text output is rendered by each command.
func encode(w io.Writer, format string, v any) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	}
	e := json.NewEncoder(w)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
