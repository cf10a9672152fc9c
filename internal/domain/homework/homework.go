package homework

// Homework represents a single submission record as returned by the
// Practicum homework-statuses API. Required fields that the API may omit
// are pointers so that a missing key is distinguishable from an empty value.
type Homework struct {
	ID              int64   `json:"id"`
	HomeworkName    *string `json:"homework_name"`
	LessonName      string  `json:"lesson_name"`
	Status          *string `json:"status"`
	ReviewerComment string  `json:"reviewer_comment"`
	DateUpdated     string  `json:"date_updated"`
}

// Response is the decoded body of one poll cycle. CurrentDate is the server's
// echoed unix timestamp used to advance the polling cursor; nil when absent.
type Response struct {
	Homeworks   []Homework
	CurrentDate *int64
}
