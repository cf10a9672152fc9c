package homework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestStatusMessageContainsNameAndVerdict(t *testing.T) {
	for status, verdict := range Verdicts {
		hw := Homework{HomeworkName: strPtr("Project A"), Status: strPtr(string(status))}
		msg, err := StatusMessage(hw)
		require.NoError(t, err)
		assert.Contains(t, msg, "Project A")
		assert.Contains(t, msg, verdict)
	}
}

func TestStatusMessageDeterministic(t *testing.T) {
	hw := Homework{HomeworkName: strPtr("Project A"), Status: strPtr("approved")}
	first, err := StatusMessage(hw)
	require.NoError(t, err)
	second, err := StatusMessage(hw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStatusMessageMissingHomeworkName(t *testing.T) {
	hw := Homework{Status: strPtr("approved")}
	_, err := StatusMessage(hw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), "homework_name")
}

func TestStatusMessageMissingStatus(t *testing.T) {
	hw := Homework{HomeworkName: strPtr("Project A")}
	_, err := StatusMessage(hw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))
	assert.Contains(t, err.Error(), "status")
}

func TestStatusMessageUnknownStatus(t *testing.T) {
	hw := Homework{HomeworkName: strPtr("Project A"), Status: strPtr("paused")}
	_, err := StatusMessage(hw)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStatus))
	assert.Contains(t, err.Error(), "paused")
}

func TestDetailedStatusMessageRendersAllFields(t *testing.T) {
	hw := Homework{
		ID:              17,
		HomeworkName:    strPtr("Project A"),
		LessonName:      "Sprint 5",
		Status:          strPtr("rejected"),
		ReviewerComment: "Нужно поправить тесты",
		DateUpdated:     "2023-01-01T10:00:00Z",
	}
	msg, err := DetailedStatusMessage(hw)
	require.NoError(t, err)
	assert.Contains(t, msg, "Project A")
	assert.Contains(t, msg, "Sprint 5")
	assert.Contains(t, msg, Verdicts[StatusRejected])
	assert.Contains(t, msg, "Нужно поправить тесты")
	assert.Contains(t, msg, "01.01.2023 в 10:00")
	assert.Contains(t, msg, "ID 17")
}

func TestDetailedStatusMessageSkipsUnparseableDate(t *testing.T) {
	hw := Homework{HomeworkName: strPtr("Project A"), Status: strPtr("approved"), DateUpdated: "yesterday"}
	msg, err := DetailedStatusMessage(hw)
	require.NoError(t, err)
	assert.NotContains(t, msg, "⏳")
}

func TestDetailedStatusMessageValidatesRequiredFields(t *testing.T) {
	_, err := DetailedStatusMessage(Homework{Status: strPtr("approved")})
	assert.True(t, errors.Is(err, ErrMissingField))

	_, err = DetailedStatusMessage(Homework{HomeworkName: strPtr("Project A"), Status: strPtr("nope")})
	assert.True(t, errors.Is(err, ErrUnknownStatus))
}

func TestDigestMessageJoinsRecords(t *testing.T) {
	hws := []Homework{
		{ID: 1, HomeworkName: strPtr("Project A"), Status: strPtr("approved")},
		{ID: 2, HomeworkName: strPtr("Project B"), Status: strPtr("reviewing")},
	}
	msg, err := DigestMessage(hws)
	require.NoError(t, err)
	assert.Contains(t, msg, "Project A")
	assert.Contains(t, msg, "Project B")
	assert.Contains(t, msg, "\n\n")
}

func TestDigestMessageFailsOnInvalidRecord(t *testing.T) {
	hws := []Homework{
		{ID: 1, HomeworkName: strPtr("Project A"), Status: strPtr("approved")},
		{ID: 2, HomeworkName: strPtr("Project B")},
	}
	_, err := DigestMessage(hws)
	assert.True(t, errors.Is(err, ErrMissingField))
}

func TestKnownStatusesSorted(t *testing.T) {
	assert.Equal(t, []string{"approved", "rejected", "reviewing"}, KnownStatuses())
}
