package notification

import (
	"context"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/ParaplanBooker/internal/config"
	"github.com/wb-go/wbf/logger"
)

// MessageSender - часть tgbotapi.BotAPI, которой пользуется нотификатор.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramNotifier struct {
	bot     MessageSender
	chatIDs []int64
	logger  logger.Logger
}

func NewTelegramNotifier(cfg config.TelegramConfig, logger logger.Logger) (*TelegramNotifier, error) {
	chatIDs, err := cfg.ChatIDs()
	if err != nil {
		return nil, fmt.Errorf("parse chat ids: %w", err)
	}

	client := &http.Client{Timeout: cfg.SendTimeout}
	bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, cfg.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return newTelegramNotifier(bot, chatIDs, logger), nil
}

func newTelegramNotifier(bot MessageSender, chatIDs []int64, logger logger.Logger) *TelegramNotifier {
	ids := make([]int64, len(chatIDs))
	copy(ids, chatIDs)

	return &TelegramNotifier{bot: bot, chatIDs: ids, logger: logger}
}

// Dispatch отправляет text во все чаты по очереди. Ошибка доставки в один чат
// только логируется и не мешает остальным.
func (n *TelegramNotifier) Dispatch(ctx context.Context, text string) {
	for _, chatID := range n.chatIDs {
		n.send(ctx, chatID, text)
	}
}

func (n *TelegramNotifier) send(ctx context.Context, chatID int64, text string) {
	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", chatID),
		)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("telegram send panicked",
				logger.Int64("chat_id", chatID),
				logger.Any("error", r),
			)
		}
	}()

	msg := tgbotapi.NewMessage(chatID, text)

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
		return
	}

	n.logger.Debug("telegram notification sent", logger.Int64("chat_id", chatID))
}
