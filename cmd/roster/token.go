package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"eventroster/config"
	"eventroster/internal/adapters/auth"
	"eventroster/internal/domain"
)

func newTokenCmd() *cobra.Command {
	var (
		email  string
		roles  []string
		expiry time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token <username>",
		Short: "Issue a bearer token for local testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			token, err := auth.NewJWTIssuer(cfg.JWTSecret, cfg.TokenExpiry).
				Issue(domain.Viewer{Username: args[0], Email: email, Roles: roles}, expiry)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().StringSliceVar(&roles, "role", nil, "role claim (repeatable)")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (default TOKEN_EXPIRY)")
	return cmd
}
