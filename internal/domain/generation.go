package domain

import "context"

// TextGenerator is the outbound port to the hosted generative model.
// Implementations return the raw model text; parsing and schema enforcement
// happen in the flow layer, never here.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Difficulty tiers shared by the quiz and vocabulary flows.
type Difficulty string

const (
	DifficultyBasic        Difficulty = "basic"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Difficulties lists the valid tiers in declaration order.
var Difficulties = []string{
	string(DifficultyBasic),
	string(DifficultyIntermediate),
	string(DifficultyAdvanced),
}

// Structural bounds for multiple-choice output. The model is prompted with
// these but not trusted to respect them.
const (
	MinQuizOptions   = 4
	MaxQuizOptions   = 5
	MinQuizQuestions = 3
	MaxQuizQuestions = 10
)

// QuizQuestion is a single validated multiple-choice question.
// Invariant: 0 <= CorrectAnswerIndex < len(Options) and
// MinQuizOptions <= len(Options) <= MaxQuizOptions.
type QuizQuestion struct {
	Question           string
	Options            []string
	CorrectAnswerIndex int
	Explanation        string
}

// Validate reports the first structural invariant the question violates.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return NewInvalidInputError("question text is required")
	}
	if len(q.Options) < MinQuizOptions || len(q.Options) > MaxQuizOptions {
		return NewInvalidInputError("option count is out of range")
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return NewInvalidInputError("correct answer index is out of range")
	}
	return nil
}

// QuizSet is the validated output of the quiz-generation flow.
type QuizSet struct {
	Title     string
	Questions []QuizQuestion
}

func (s *QuizSet) Validate() error {
	if len(s.Questions) == 0 {
		return NewInvalidInputError("quiz must contain at least one question")
	}
	for i := range s.Questions {
		if err := s.Questions[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Summary is the output of the study-material summarization flow.
type Summary struct {
	Topic     string
	Summary   string
	KeyPoints []string
}

// TopicSuggestions is the output of the study-topic suggestion flow.
type TopicSuggestions struct {
	ExamType string
	Topics   []string
}

// ProductivityInsights is the output of the productivity-analysis flow.
// FocusScore is clamped to [0, 1] during repair.
type ProductivityInsights struct {
	Insights        []string
	Recommendations []string
	FocusScore      float64
}

// TranscriptNotes is the output of the YouTube-transcript flow.
// Its embedded questions obey the same invariants as QuizQuestion.
type TranscriptNotes struct {
	Title       string
	Summary     string
	Notes       []string
	KeyConcepts []string
	Questions   []QuizQuestion
}

// DoubtAnswer is the output of the academic doubt-solving flow.
// Confidence is clamped to [0, 1] during repair.
type DoubtAnswer struct {
	Explanation   string
	RelatedTopics []string
	Confidence    float64
}
