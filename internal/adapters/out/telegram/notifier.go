// Package telegram pushes order progress notifications to an operations
// chat through a Telegram bot.
package telegram

import (
	"context"
	"fmt"

	"jelantah/internal/core/domain/model/order"
	"jelantah/internal/core/ports"
	"jelantah/internal/pkg/errs"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var _ ports.Notifier = (*Notifier)(nil)

// Notifier sends order announcements to a single chat.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier authenticates the bot with the given token.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	if token == "" {
		return nil, errs.NewValueIsRequiredError("token")
	}
	if chatID == 0 {
		return nil, errs.NewValueIsRequiredError("chatID")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("connect telegram bot: %w", err)
	}

	return &Notifier{bot: bot, chatID: chatID}, nil
}

// NotifyOrderAssigned announces that a courier took the pickup.
func (n *Notifier) NotifyOrderAssigned(_ context.Context, aggregate *order.Order) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}

	text := fmt.Sprintf(
		"Order %s assigned.\nCustomer: %s (%s, %s)\nEstimated volume: %d L",
		aggregate.ID(),
		aggregate.Customer().Name(),
		aggregate.Customer().District(),
		aggregate.Customer().City(),
		aggregate.EstimatedLiters(),
	)
	return n.send(text)
}

// NotifyOrderPaid announces that the payout for a pickup was settled.
func (n *Notifier) NotifyOrderPaid(_ context.Context, aggregate *order.Order) error {
	if aggregate == nil {
		return errs.NewValueIsRequiredError("aggregate")
	}

	liters := 0
	if aggregate.ActualLiters() != nil {
		liters = *aggregate.ActualLiters()
	}
	text := fmt.Sprintf(
		"Order %s paid.\nCustomer: %s\nCollected volume: %d L",
		aggregate.ID(),
		aggregate.Customer().Name(),
		liters,
	)
	return n.send(text)
}

func (n *Notifier) send(text string) error {
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
