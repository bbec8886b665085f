// Command tokengen prints a member access token for manual API calls.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/giannis84/subway-favorites/internal/auth"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "tokengen",
		Usage: "Generate a bearer token for the favorites API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "member",
				Aliases:  []string{"m"},
				Usage:    "member ID to embed as the token subject",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "email",
				Usage: "email claim",
			},
			&cli.StringFlag{
				Name:    "secret",
				Usage:   "HMAC signing secret; unsigned (alg=none) when empty",
				Sources: cli.EnvVars("JWT_SECRET"),
			},
			&cli.DurationFlag{
				Name:  "exp",
				Usage: "token lifetime (e.g. 1h, 72h)",
				Value: 24 * time.Hour,
			},
		},
		Action: generate,
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	secret := cmd.String("secret")
	ttl := cmd.Duration("exp")

	token, err := auth.NewIssuer(auth.Config{
		Secret:              secret,
		AllowUnsignedTokens: secret == "",
		TokenTTL:            ttl,
	}).IssueToken(cmd.String("member"), cmd.String("email"))
	if err != nil {
		return fmt.Errorf("creating token: %w", err)
	}

	errOut := cmd.Root().ErrWriter
	if errOut == nil {
		errOut = os.Stderr
	}
	if secret == "" {
		fmt.Fprintln(errOut, "Warning: token is unsigned (alg=none); do not use in production")
	}
	fmt.Fprintf(errOut, "Token for member %s (expires %s):\n", cmd.String("member"), time.Now().Add(ttl).Format(time.RFC3339))

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}
	_, err = fmt.Fprintln(out, token)
	return err
}
