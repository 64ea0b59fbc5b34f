package dto

import "time"

// QuizRequest is the request body for the quiz-generation tool.
// @Description Quiz generation parameters
type QuizRequest struct {
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	ExamType     string `json:"examType"`
	NumQuestions int    `json:"numQuestions"`
}

// QuizQuestionResponse is one validated multiple-choice question.
type QuizQuestionResponse struct {
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

// QuizResponse is the generated quiz returned to the caller.
type QuizResponse struct {
	QuizTitle string                 `json:"quizTitle"`
	Questions []QuizQuestionResponse `json:"questions"`
}

// SummaryRequest is the request body for the material-summary tool.
type SummaryRequest struct {
	Topic    string `json:"topic"`
	Material string `json:"material"`
}

// SummaryResponse is the generated summary.
type SummaryResponse struct {
	Topic     string   `json:"topic"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"keyPoints"`
}

// TopicsResponse is the suggested study-topic list.
type TopicsResponse struct {
	ExamType string   `json:"examType"`
	Topics   []string `json:"topics"`
}

// ProductivityRequest carries one week of study metrics.
type ProductivityRequest struct {
	TotalStudyHours   float64 `json:"totalStudyHours"`
	SessionsCompleted int     `json:"sessionsCompleted"`
	AvgSessionMinutes float64 `json:"avgSessionMinutes"`
	TasksCompleted    int     `json:"tasksCompleted"`
	TasksPlanned      int     `json:"tasksPlanned"`
}

// ProductivityResponse is the generated productivity analysis.
type ProductivityResponse struct {
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
	FocusScore      float64  `json:"focusScore"`
}

// TranscriptRequest is the request body for the transcript tool.
type TranscriptRequest struct {
	Transcript string `json:"transcript"`
	Context    string `json:"context,omitempty"`
}

// TranscriptResponse is the generated lecture material.
type TranscriptResponse struct {
	Title       string                 `json:"title"`
	Summary     string                 `json:"summary"`
	Notes       []string               `json:"notes"`
	KeyConcepts []string               `json:"keyConcepts"`
	Questions   []QuizQuestionResponse `json:"questions"`
}

// DoubtRequest is the request body for the doubt-solving tool.
type DoubtRequest struct {
	Question string `json:"question"`
	ExamType string `json:"examType"`
	Subject  string `json:"subject,omitempty"`
}

// DoubtResponse is the generated answer.
type DoubtResponse struct {
	Explanation   string   `json:"explanation"`
	RelatedTopics []string `json:"relatedTopics"`
	Confidence    float64  `json:"confidence"`
}

// VocabRequest is the request body for the vocabulary-game tool.
type VocabRequest struct {
	GameMode      string   `json:"gameMode"`
	NumChallenges int      `json:"numChallenges"`
	PreviousWords []string `json:"previousWords,omitempty"`
}

// VocabChallengeResponse is one challenge of a session. Options and Hint are
// mutually exclusive by tier.
type VocabChallengeResponse struct {
	Word     string   `json:"word"`
	Clue     string   `json:"clue"`
	ClueType string   `json:"clueType"`
	Options  []string `json:"options,omitempty"`
	Hint     string   `json:"hint,omitempty"`
}

// VocabResponse is the generated session.
type VocabResponse struct {
	GameMode   string                   `json:"gameMode"`
	Challenges []VocabChallengeResponse `json:"challenges"`
}

// GenerationRecordResponse is one entry of a user's generation history.
type GenerationRecordResponse struct {
	ID        string    `json:"id"`
	Flow      string    `json:"flow"`
	Input     string    `json:"input"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
}

// HistoryResponse lists a user's recent generations.
type HistoryResponse struct {
	Records []GenerationRecordResponse `json:"records"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
