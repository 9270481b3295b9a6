package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/smsrent/internal/domain"
	"github.com/avc/smsrent/internal/service"
	"github.com/avc/smsrent/internal/worker"
	"github.com/spf13/cobra"
)

func newBuyCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <country> <operator> <product>",
		Short: "Rent a number for activation",
		Example: `  smsrent buy russia any telegram
  smsrent buy england vodafone whatsapp`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := st.core.Orders.Buy(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			printOrderSummary(cmd, "rented", order)
			return printJSON(cmd.OutOrStdout(), order)
		},
	}
}

func newRebuyCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "rebuy <product> <number>",
		Short: "Rent a previously used number again",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := st.core.Orders.Rebuy(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			printOrderSummary(cmd, "rented again", order)
			return printJSON(cmd.OutOrStdout(), order)
		},
	}
}

// orderActions - операции над существующим заказом по имени команды
var orderActions = map[string]func(*service.OrderService, context.Context, string) (*domain.Order, error){
	"check":  (*service.OrderService).Check,
	"finish": (*service.OrderService).Finish,
	"cancel": (*service.OrderService).Cancel,
	"ban":    (*service.OrderService).Ban,
}

func newOrderActionCmd(st *state, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <order-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := orderActions[name](st.core.Orders, cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), order)
		},
	}
}

func newInboxCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "inbox <order-id>",
		Short: "Show all messages received by an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inbox, err := st.core.Orders.SMSInbox(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), inbox)
		},
	}
}

func newWaitCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "wait <order-id>",
		Short: "Poll an order until an SMS arrives",
		Long: `Polls the order until it receives an SMS or reaches a final status.
Polling interval and overall timeout follow --poll-interval,
--poll-max-interval and --poll-timeout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := newProgress(cmd.ErrOrStderr())
			p.Start(fmt.Sprintf("waiting for SMS on order %s", args[0]))

			order, err := st.core.Poller.WaitForSMS(cmd.Context(), args[0], st.core.PollConfig())
			p.Stop(err == nil && len(order.SMS()) > 0)
			if errors.Is(err, worker.ErrPollTimeout) {
				return fmt.Errorf("no SMS within %s: %w", st.cfg.PollTimeout, err)
			}
			if err != nil {
				return err
			}

			if codes := order.Codes(); len(codes) > 0 {
				printSuccess(cmd.ErrOrStderr(), "code %s", strings.Join(codes, ", "))
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "order %s is %s\n", order.ID(), order.Status())
			}
			return printJSON(cmd.OutOrStdout(), order)
		},
	}
}

// printOrderSummary печатает в stderr краткую сводку по заказу
func printOrderSummary(cmd *cobra.Command, verb string, order *domain.Order) {
	w := cmd.ErrOrStderr()
	phone := render(styleValue, domain.FormatPhone(order.Phone()), colorEnabled(w))
	if region := domain.PhoneRegion(order.Phone()); region != "" {
		phone += " " + region
	}
	printSuccess(w, "%s %s (order %s, %s)", verb, phone, order.ID(), order.Price().String())
}
