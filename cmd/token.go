package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"recruitmail/internal/adapters/auth"
)

func newTokenCmd(a *app) *cobra.Command {
	var subject string
	var expiry time.Duration
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a service token for the /emails endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if expiry <= 0 {
				expiry = a.cfg.JWTExpiry
			}
			token, err := auth.NewJWTIssuer(a.cfg.JWTSecret).Issue(subject, []string{auth.ScopeSendEmail}, expiry)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "calling service name (required)")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (default JWT_EXPIRY_HOURS)")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
