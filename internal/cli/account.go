package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newBalanceCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance and profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := st.core.Account.GetBalance(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), balance)
		},
	}
}

func newKeyCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the provider API key",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <api-key|->",
			Short: "Store a new API key, '-' reads it from stdin",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				key := args[0]
				if key == "-" {
					data, err := io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return fmt.Errorf("failed to read api key: %w", err)
					}
					key = string(data)
				}
				if err := st.core.Credentials.Replace(cmd.Context(), key); err != nil {
					return err
				}
				printSuccess(cmd.ErrOrStderr(), "api key saved")
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Show the stored API key, masked",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				key, err := st.core.Credentials.Holder().Get()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), maskKey(key))
				return err
			},
		},
	)
	return cmd
}

// maskKey оставляет видимыми только последние 4 символа ключа
func maskKey(key string) string {
	const visible = 4
	if len(key) <= visible {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-visible) + key[len(key)-visible:]
}

func newTokenCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage gateway access tokens",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "issue <operator>",
		Short: "Issue a bearer token for the HTTP gateway",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := st.core.JWT.Generate(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	})
	return cmd
}
