// internal/domain/homework/format.go
package homework

import (
	"fmt"
	"strings"
	"time"
)

const reviewTimeLayout = "2006-01-02T15:04:05Z"

// StatusMessage renders the short notification for one record: homework name
// plus the verdict text. This is the form the polling loop sends.
func StatusMessage(hw Homework) (string, error) {
	name, verdict, err := requiredFields(hw)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}

// DetailedStatusMessage renders the rich multi-line form with lesson name,
// reviewer comment and review time. Optional fields are omitted when empty;
// an unparseable date_updated drops the time line rather than failing.
func DetailedStatusMessage(hw Homework) (string, error) {
	name, verdict, err := requiredFields(hw)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("‼️ Изменился статус проверки работы ‼️\n")
	if hw.LessonName != "" {
		fmt.Fprintf(&b, "🛠 %s.\n", hw.LessonName)
	}
	fmt.Fprintf(&b, "🖥 \"%s\".\n", name)
	fmt.Fprintf(&b, "🗣 \"%s\".\n", verdict)
	if hw.ReviewerComment != "" {
		fmt.Fprintf(&b, "📓 \"%s\"\n", hw.ReviewerComment)
	}
	if reviewed, errParse := time.Parse(reviewTimeLayout, hw.DateUpdated); errParse == nil {
		fmt.Fprintf(&b, "⏳ Работа проверена %s.\n", reviewed.Format("02.01.2006 в 15:04"))
	}
	fmt.Fprintf(&b, "\nID %d.", hw.ID)
	return b.String(), nil
}

// DigestMessage maps the detailed form over a batch of records, joined by
// blank lines. Fails on the first invalid record.
func DigestMessage(hws []Homework) (string, error) {
	messages := make([]string, 0, len(hws))
	for _, hw := range hws {
		msg, err := DetailedStatusMessage(hw)
		if err != nil {
			return "", err
		}
		messages = append(messages, msg)
	}
	return strings.Join(messages, "\n\n"), nil
}

func requiredFields(hw Homework) (name, verdict string, err error) {
	if hw.HomeworkName == nil {
		return "", "", fmt.Errorf("%w: \"homework_name\"", ErrMissingField)
	}
	if hw.Status == nil {
		return "", "", fmt.Errorf("%w: \"status\"", ErrMissingField)
	}
	verdict, ok := Verdicts[Status(*hw.Status)]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownStatus, *hw.Status)
	}
	return *hw.HomeworkName, verdict, nil
}
