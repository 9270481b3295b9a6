package cli

import (
	"github.com/avc/smsrent/internal/app"
	"github.com/spf13/cobra"
)

func newServeCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway",
		Long: `Runs the HTTP gateway in front of the provider API.
Every /api route requires a bearer token issued by "smsrent token issue".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp(st.core, st.logger).Run(cmd.Context())
		},
	}
}
