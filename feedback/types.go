package feedback

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Language selects the natural language of generated feedback.
type Language string

const (
	LangEnglish Language = "english"
	LangKazakh  Language = "kazakh"
	LangRussian Language = "russian"
)

// Name returns the language name as it is spelled inside the prompt.
func (l Language) Name() string {
	switch l {
	case LangEnglish:
		return "English"
	case LangKazakh:
		return "Kazakh"
	case LangRussian:
		return "Russian"
	}
	return ""
}

func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LangEnglish:
		return LangEnglish, nil
	case LangKazakh:
		return LangKazakh, nil
	case LangRussian:
		return LangRussian, nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// Feedback is the generated review of one submission. TeacherUUID records
// the principal who requested the generation, not an author.
type Feedback struct {
	UUID           uuid.UUID
	SubmissionUUID uuid.UUID
	TeacherUUID    uuid.UUID
	Content        string
	CreatedAt      time.Time
}
