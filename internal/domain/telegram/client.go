package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for sending messages via a Telegram bot.
// The status service depends on this instead of the bot library directly,
// which keeps notification logic testable without a live bot.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
}
