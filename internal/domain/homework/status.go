// internal/domain/homework/status.go
package homework

import (
	"sort"

	"github.com/samber/lo"
)

// Status is the review verdict code of a submission.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps each known status code to its human-readable description.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// KnownStatuses returns the recognized status codes in stable order,
// for help texts and diagnostics.
func KnownStatuses() []string {
	keys := lo.Map(lo.Keys(Verdicts), func(s Status, _ int) string { return string(s) })
	sort.Strings(keys)
	return keys
}
