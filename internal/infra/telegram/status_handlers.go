// internal/infra/telegram/status_handlers.go
package telegram

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/homework"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

var lookupDateRe = regexp.MustCompile(`\d{2}\.\d{2}\.\d{4}`)

// RegisterStatusHandlers wires the /start, /help and /status commands plus
// the free-text date trigger. Replies always go to the originating chat, not
// the default notification chat.
func RegisterStatusHandlers(
	ctx context.Context,
	b *telebot.Bot,
	statusService app.StatusLookup,
	baseLogger *logrus.Entry,
) {
	handlerLogger := baseLogger.WithField("handler_group", "status")

	b.Handle("/start", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := handlerLogger.WithField("command", "/start").WithField("sender_id", senderID)
		logCtx.Info("Processing /start command")

		return c.Send(fmt.Sprintf("Привет, %s! Я слежу за статусами проверки твоих домашних работ и пришлю сообщение, как только статус изменится. Используй /help для списка команд.", c.Sender().FirstName))
	})

	b.Handle("/help", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := handlerLogger.WithField("command", "/help").WithField("sender_id", senderID)
		logCtx.Info("Processing /help command")

		var helpText strings.Builder
		helpText.WriteString("Доступные команды:\n\n")
		helpText.WriteString("`/status <ДД.ММ.ГГГГ>`\n - Показать статус проверки работы на указанную дату.\n\n")
		helpText.WriteString("`/help`\n - Показать это справочное сообщение.\n\n")
		helpText.WriteString("Возможные статусы работы: " + strings.Join(homework.KnownStatuses(), ", ") + ".")
		return c.Send(helpText.String(), &telebot.SendOptions{ParseMode: telebot.ModeMarkdown})
	})

	b.Handle("/status", func(c telebot.Context) error {
		senderID := c.Sender().ID
		logCtx := handlerLogger.WithField("command", "/status").WithField("sender_id", senderID)
		logCtx.Info("Processing /status command")

		return c.Send(statusService.LookupStatusByDate(ctx, c.Text()))
	})

	// Any plain message containing a DD.MM.YYYY date also triggers a lookup.
	// Other text is ignored so the bot does not answer every message.
	b.Handle(telebot.OnText, func(c telebot.Context) error {
		if !lookupDateRe.MatchString(c.Text()) {
			return nil
		}
		logCtx := handlerLogger.WithField("handler", "date_text").WithField("sender_id", c.Sender().ID)
		logCtx.Info("Processing date lookup from free text")

		return c.Send(statusService.LookupStatusByDate(ctx, c.Text()))
	})
}
