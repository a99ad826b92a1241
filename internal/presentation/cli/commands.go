package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	urfave "github.com/urfave/cli/v3"

	"github.com/bibbank/creditrisk/internal/presentation/render"
	"github.com/bibbank/creditrisk/pkg/auth"
	"github.com/bibbank/creditrisk/pkg/tlsutil"
)

func predictCommand() *urfave.Command {
	return &urfave.Command{
		Name:    "predict",
		Aliases: []string{"p"},
		Usage:   "Score an application form and print the risk tier",
		Flags:   profileFlags(),
		Action: func(ctx context.Context, cmd *urfave.Command) error {
			req, err := profileFromFlags(cmd)
			if err != nil {
				return err
			}
			return withBackend(cmd, func(b backend) error {
				resp, err := b.Predict(ctx, req)
				if err != nil {
					return err
				}
				out := cmd.Root().Writer
				if f := outputFormat(cmd); f != formatText {
					return encode(out, f, resp)
				}
				return render.Prediction(out, resp)
			})
		},
	}
}

func summaryCommand() *urfave.Command {
	return &urfave.Command{
		Name:    "summary",
		Aliases: []string{"s"},
		Usage:   "Print the input overview of an application form without scoring it",
		Flags:   profileFlags(),
		Action: func(ctx context.Context, cmd *urfave.Command) error {
			req, err := profileFromFlags(cmd)
			if err != nil {
				return err
			}
			return withBackend(cmd, func(b backend) error {
				summary, err := b.Summarize(ctx, req)
				if err != nil {
					return err
				}
				out := cmd.Root().Writer
				if f := outputFormat(cmd); f != formatText {
					return encode(out, f, summary)
				}
				return render.Summary(out, summary)
			})
		},
	}
}

func formCommand() *urfave.Command {
	return &urfave.Command{
		Name:  "form",
		Usage: "List every form input with its bounds and default",
		Action: func(ctx context.Context, cmd *urfave.Command) error {
			return withBackend(cmd, func(b backend) error {
				fields, err := b.Form(ctx)
				if err != nil {
					return err
				}
				out := cmd.Root().Writer
				if f := outputFormat(cmd); f != formatText {
					return encode(out, f, fields)
				}
				return render.Form(out, fields)
			})
		},
	}
}

func tokenCommand() *urfave.Command {
	return &urfave.Command{
		Name:  "token",
		Usage: "Issue a development bearer token signed with the shared secret",
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:     "secret",
				Usage:    "HMAC secret shared with the service",
				Sources:  urfave.EnvVars("JWT_SECRET"),
				Required: true,
			},
			&urfave.StringFlag{
				Name:    "issuer",
				Usage:   "Token issuer",
				Value:   "bib-identity",
				Sources: urfave.EnvVars("JWT_ISSUER"),
			},
			&urfave.StringFlag{
				Name:  "client-id",
				Usage: "Client UUID placed in the token; random when empty",
			},
			&urfave.StringSliceFlag{
				Name:  "role",
				Usage: "Role granted to the client (repeatable)",
				Value: []string{auth.RoleAPIClient},
			},
			&urfave.DurationFlag{
				Name:  "ttl",
				Usage: "Token lifetime",
				Value: time.Hour,
			},
		},
		Action: func(_ context.Context, cmd *urfave.Command) error {
			clientID := uuid.New()
			if s := cmd.String("client-id"); s != "" {
				id, err := uuid.Parse(s)
				if err != nil {
					return fmt.Errorf("--client-id: %w", err)
				}
				clientID = id
			}

			svc, err := auth.NewJWTService(auth.JWTConfig{
				Secret:     cmd.String("secret"),
				Issuer:     cmd.String("issuer"),
				Expiration: cmd.Duration("ttl"),
			})
			if err != nil {
				return err
			}
			token, err := svc.GenerateToken(clientID, cmd.StringSlice("role"))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, token)
			return err
		},
	}
}

func certsCommand() *urfave.Command {
	return &urfave.Command{
		Name:  "certs",
		Usage: "Generate a development CA and server certificate for gRPC TLS",
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:  "out",
				Usage: "Directory receiving the PEM files",
				Value: "certs",
			},
			&urfave.StringSliceFlag{
				Name:  "host",
				Usage: "DNS name or IP the server certificate is valid for (repeatable)",
				Value: []string{"localhost", "127.0.0.1"},
			},
		},
		Action: func(_ context.Context, cmd *urfave.Command) error {
			dir := cmd.String("out")
			if err := tlsutil.GenerateDevCertificates(cmd.StringSlice("host"), dir); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.Root().Writer, "wrote %s, %s and %s to %s\n",
				tlsutil.CAFile, tlsutil.ServerCertFile, tlsutil.ServerKeyFile, dir)
			return err
		},
	}
}

func withBackend(cmd *urfave.Command, fn func(backend) error) error {
	b, err := newBackend(cmd)
	if err != nil {
		return err
	}
	defer b.Close()
	return fn(b)
}
