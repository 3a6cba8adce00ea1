// Package notify pushes order events to a Telegram admin chat. It is optional:
// without a configured token every call is a no-op.
package notify

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/monsieur-akhir/dental-ecommerce-sub001/internal/order"
)

type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// New returns nil (safe to pass around) when token is empty.
func New(token, chatID string) (*Telegram, error) {
	if token == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad TELEGRAM_ADMIN_CHAT_ID: %w", err)
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Printf("[notify] telegram bot authorized as %s", bot.Self.UserName)
	return &Telegram{bot: bot, chatID: id}, nil
}

func (t *Telegram) OrderPlaced(o *order.Order) {
	if t == nil {
		return
	}
	text := fmt.Sprintf("New order %s: %d item(s), total %s", o.OrderNumber, len(o.Items), o.TotalAmount.StringFixed(2))
	if _, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		// notification failures never affect the order
		log.Printf("[notify] telegram send failed: %v", err)
	}
}
