// Package cli реализует командную строку smsrent поверх клиентов провайдера.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avc/smsrent/internal/app"
	"github.com/avc/smsrent/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// state - общие для команд конфигурация и зависимости
type state struct {
	cfg        *config.Config
	configPath string
	logger     *zap.Logger
	core       *app.Core
}

// newRootCommand создает корневую команду со всеми подкомандами.
// Ресурсы, открытые командой, освобождает execute.
func newRootCommand() (*cobra.Command, *state) {
	st := &state{cfg: config.Default()}

	root := &cobra.Command{
		Use:   "smsrent",
		Short: "Rent phone numbers and receive SMS codes",
		Long: `smsrent rents phone numbers from the SMS activation provider,
waits for verification codes and manages the order lifecycle.

Get started:
  smsrent key set <api-key>
  smsrent buy russia any telegram
  smsrent wait <order-id>`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&st.configPath, "config", "c", "", "config file (default "+config.DefaultConfigFile+" if present)")
	config.RegisterFlags(flags, st.cfg)

	root.AddCommand(
		newCountriesCmd(st),
		newOperatorsCmd(st),
		newProductsCmd(st),
		newPricesCmd(st),
		newBuyCmd(st),
		newRebuyCmd(st),
		newOrderActionCmd(st, "check", "Show the current state of an order"),
		newOrderActionCmd(st, "finish", "Mark an order as finished"),
		newOrderActionCmd(st, "cancel", "Cancel an order"),
		newOrderActionCmd(st, "ban", "Mark the number of an order as unusable"),
		newInboxCmd(st),
		newWaitCmd(st),
		newBalanceCmd(st),
		newKeyCmd(st),
		newTokenCmd(st),
		newServeCmd(st),
	)

	return root, st
}

func (st *state) init(cmd *cobra.Command) error {
	if err := config.Resolve(cmd.Root().PersistentFlags(), st.cfg, st.configPath); err != nil {
		return err
	}

	level := st.cfg.LogLevel
	// команды кроме serve по умолчанию пишут в лог только ошибки
	if cmd.Name() != "serve" && level == config.Default().LogLevel {
		level = "error"
	}
	logger, err := app.NewLogger(level)
	if err != nil {
		return err
	}
	st.logger = logger

	core, err := app.NewCore(cmd.Context(), st.cfg, logger)
	if err != nil {
		return err
	}
	st.core = core
	return nil
}

func (st *state) close() {
	if st.core != nil {
		st.core.Close()
		st.core = nil
	}
	if st.logger != nil {
		_ = st.logger.Sync()
		st.logger = nil
	}
}

// execute выполняет команду и освобождает ресурсы при любом исходе
func execute(ctx context.Context, root *cobra.Command, st *state) error {
	defer st.close()
	return root.ExecuteContext(ctx)
}

// Execute запускает CLI и печатает ошибку в stderr
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, st := newRootCommand()
	err := execute(ctx, root, st)
	if err != nil {
		fmt.Fprintln(root.ErrOrStderr(), FormatError(err, colorEnabled(root.ErrOrStderr())))
	}
	return err
}
