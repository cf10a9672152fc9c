// internal/app/status_service.go
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// HomeworkProvider fetches a raw homework-statuses response for a given
// from_date cursor.
type HomeworkProvider interface {
	Fetch(ctx context.Context, fromDate int64) (json.RawMessage, error)
}

// DigestService defines the operation the cron scheduler triggers.
type DigestService interface {
	SendDailyDigest(ctx context.Context) error
}

// StatusLookup defines the operation the Telegram command handlers invoke.
type StatusLookup interface {
	LookupStatusByDate(ctx context.Context, text string) string
}

var dateRe = regexp.MustCompile(`(\d{2}\.\d{2}\.\d{4})`)

const dateLayout = "02.01.2006"

// Replies of the /status date lookup. Each request gets exactly one of these
// or a formatted status message.
const (
	ReplyDateFormatHint = "Укажите дату в формате ДД.ММ.ГГГГ. Например /status 01.01.2023"
	ReplyBadDate        = "Неправильный формат даты. Используйте ДД.ММ.ГГГГ"
	ReplyNoData         = "Для указанной даты нет статусов."
	ReplyAPIError       = "Ошибка при запросе к API. Попробуйте позже."
)

// StatusService polls the Practicum API for review-status changes and relays
// them to the configured chat. It also answers on-demand date lookups and
// builds the daily digest.
type StatusService struct {
	api            HomeworkProvider
	telegramClient domainTelegram.Client
	logger         *logrus.Entry
	chatID         int64
	pollInterval   time.Duration
	utcOffset      time.Duration

	// Polling-loop state. Only the polling goroutine mutates these; the
	// lookup and digest paths never touch them.
	cursor      int64
	lastMessage string
}

func NewStatusService(
	api HomeworkProvider,
	tc domainTelegram.Client,
	logger *logrus.Entry,
	chatID int64,
	pollInterval time.Duration,
	utcOffset time.Duration,
) *StatusService {
	return &StatusService{
		api:            api,
		telegramClient: tc,
		logger:         logger,
		chatID:         chatID,
		pollInterval:   pollInterval,
		utcOffset:      utcOffset,
	}
}

// Start runs the polling loop until the context is cancelled. The cursor
// begins at startup time, so only changes after process start are announced.
func (s *StatusService) Start(ctx context.Context) error {
	s.cursor = time.Now().Unix()
	s.logger.WithField("cursor", s.cursor).Info("Polling loop started")

	for {
		s.CheckOnce(ctx)

		// The delay is unconditional: it follows failed cycles as well as
		// successful ones and is the only retry/backoff mechanism.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.pollInterval):
		}
	}
}

// CheckOnce executes one poll cycle: fetch, validate, format the most recent
// record, notify on change, advance the cursor. Every failure is logged and
// surfaced as a (deduplicated) error notification; it never stops the loop.
func (s *StatusService) CheckOnce(ctx context.Context) {
	raw, err := s.api.Fetch(ctx, s.cursor)
	if err != nil {
		s.reportFailure(err)
		return
	}

	resp, err := homework.ValidateResponse(raw)
	if err != nil {
		s.reportFailure(err)
		return
	}

	if len(resp.Homeworks) > 0 {
		// Only the first (most recent) record of a batch is announced.
		message, err := homework.StatusMessage(resp.Homeworks[0])
		if err != nil {
			s.reportFailure(err)
			return
		}
		s.sendIfChanged(message)
	} else {
		s.logger.Debug("No new homework statuses")
	}

	if resp.CurrentDate != nil {
		s.cursor = *resp.CurrentDate
	}
}

// LookupStatusByDate handles one on-demand request. It extracts a DD.MM.YYYY
// date from the message text, queries the API with that day as the cursor and
// returns exactly one reply string. It never touches the polling state.
func (s *StatusService) LookupStatusByDate(ctx context.Context, text string) string {
	dateStr := dateRe.FindString(text)
	if dateStr == "" {
		return ReplyDateFormatHint
	}

	fromDate, err := s.dateToTimestamp(dateStr)
	if err != nil {
		return ReplyBadDate
	}

	logCtx := s.logger.WithField("date", dateStr).WithField("from_date", fromDate)
	logCtx.Info("Processing status lookup")

	raw, err := s.api.Fetch(ctx, fromDate)
	if err != nil {
		logCtx.WithError(err).Error("Status lookup request failed")
		return ReplyAPIError
	}
	resp, err := homework.ValidateResponse(raw)
	if err != nil {
		logCtx.WithError(err).Error("Status lookup response invalid")
		return ReplyAPIError
	}

	if len(resp.Homeworks) == 0 {
		return ReplyNoData
	}

	message, err := homework.DetailedStatusMessage(resp.Homeworks[0])
	if err != nil {
		logCtx.WithError(err).Error("Status lookup record invalid")
		return ReplyAPIError
	}
	return message
}

// SendDailyDigest fetches everything since local midnight and sends all
// records to the default chat in the detailed form. Digest sends are not
// deduplicated against the polling loop's last message.
func (s *StatusService) SendDailyDigest(ctx context.Context) error {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	fromDate := midnight.Unix() - int64(s.utcOffset/time.Second)

	raw, err := s.api.Fetch(ctx, fromDate)
	if err != nil {
		return fmt.Errorf("digest fetch failed: %w", err)
	}
	resp, err := homework.ValidateResponse(raw)
	if err != nil {
		return fmt.Errorf("digest response invalid: %w", err)
	}
	if len(resp.Homeworks) == 0 {
		s.logger.Info("No homework statuses for today's digest")
		return nil
	}

	message, err := homework.DigestMessage(resp.Homeworks)
	if err != nil {
		return fmt.Errorf("digest formatting failed: %w", err)
	}
	s.notify(s.chatID, message)
	return nil
}

// dateToTimestamp converts DD.MM.YYYY to unix seconds at local midnight,
// shifted by the configured UTC offset. The offset is applied exactly once.
func (s *StatusService) dateToTimestamp(dateStr string) (int64, error) {
	day, err := time.ParseInLocation(dateLayout, dateStr, time.Local)
	if err != nil {
		return 0, err
	}
	return day.Unix() - int64(s.utcOffset/time.Second), nil
}

func (s *StatusService) reportFailure(err error) {
	s.logger.WithError(err).Error("Poll cycle failed")
	s.sendIfChanged(fmt.Sprintf("Ошибка работы программы: %v", err))
}

// sendIfChanged suppresses a notification identical to the previous one.
// lastMessage advances even when the send fails, matching the "log and drop"
// delivery contract.
func (s *StatusService) sendIfChanged(message string) {
	if message == s.lastMessage {
		s.logger.Debug("Message unchanged since last notification, skipping send")
		return
	}
	s.notify(s.chatID, message)
	s.lastMessage = message
}

// notify never escalates a transport failure: it is logged and dropped.
func (s *StatusService) notify(chatID int64, text string) {
	s.logger.WithField("chat_id", chatID).Info("Sending notification")
	if err := s.telegramClient.SendMessage(chatID, text, nil); err != nil {
		s.logger.WithError(err).WithField("chat_id", chatID).Error("Failed to send notification")
		return
	}
	s.logger.Debug("Notification sent successfully")
}
