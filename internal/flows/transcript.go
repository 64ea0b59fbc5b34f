package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studytrack/internal/domain"
	"studytrack/internal/schema"
)

// TranscriptInput is the caller-declared input of the transcript flow.
type TranscriptInput struct {
	Transcript string
	Context    string
}

var transcriptInputSchema = schema.New(FlowTranscript,
	schema.String("transcript", true, 100, 60000),
	schema.String("context", false, 0, 500),
)

func (in TranscriptInput) Validate() error {
	errs := transcriptInputSchema.Validate(map[string]interface{}{
		"transcript": in.Transcript,
		"context":    in.Context,
	})
	if errs != nil {
		return errs
	}
	return nil
}

const transcriptPromptTemplate = `You are a study assistant converting a video lecture into revision material.
%s
Process this transcript into structured study notes.

Respond with ONLY a JSON object in this exact format:
{
  "title": "a descriptive title for the lecture",
  "summary": "summary in under 200 words",
  "notes": ["structured note"],
  "keyConcepts": ["concept name"],
  "questions": [
    {
      "questionText": "a check-your-understanding question",
      "options": ["option 1", "option 2", "option 3", "option 4"],
      "correctAnswerIndex": 0,
      "explanation": "why the correct option is right"
    }
  ]
}

Every question must have 4 or 5 options with a zero-based correctAnswerIndex.

Transcript:
%s`

type transcriptPayload struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Notes       []string `json:"notes"`
	KeyConcepts []string `json:"keyConcepts"`
	Questions   []struct {
		QuestionText       string   `json:"questionText"`
		Options            []string `json:"options"`
		CorrectAnswerIndex int      `json:"correctAnswerIndex"`
		Explanation        string   `json:"explanation"`
	} `json:"questions"`
}

// ProcessTranscript runs the YouTube-transcript flow. Embedded questions are
// repaired with the same rules as the quiz flow; losing all of them is fine
// as long as the summary survives.
func ProcessTranscript(ctx context.Context, gen domain.TextGenerator, in TranscriptInput) (*domain.TranscriptNotes, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	contextLine := ""
	if strings.TrimSpace(in.Context) != "" {
		contextLine = fmt.Sprintf("The student says the video is about: %s.", in.Context)
	}
	prompt := fmt.Sprintf(transcriptPromptTemplate, contextLine, in.Transcript)

	doc, err := invoke(ctx, gen, FlowTranscript, prompt)
	if err != nil {
		return nil, err
	}

	var payload transcriptPayload
	if err := json.Unmarshal(doc, &payload); err != nil {
		return nil, domain.NewGenerationEmptyError(FlowTranscript)
	}

	summary := strings.TrimSpace(payload.Summary)
	if summary == "" {
		return nil, domain.NewEmptyResultError(FlowTranscript)
	}

	raw := make([]domain.QuizQuestion, 0, len(payload.Questions))
	for _, q := range payload.Questions {
		raw = append(raw, domain.QuizQuestion{
			Question:           strings.TrimSpace(q.QuestionText),
			Options:            q.Options,
			CorrectAnswerIndex: q.CorrectAnswerIndex,
			Explanation:        strings.TrimSpace(q.Explanation),
		})
	}

	title := strings.TrimSpace(payload.Title)
	if title == "" {
		title = "Lecture notes"
	}

	return &domain.TranscriptNotes{
		Title:       title,
		Summary:     summary,
		Notes:       trimNonEmpty(payload.Notes),
		KeyConcepts: trimNonEmpty(payload.KeyConcepts),
		Questions:   repairQuestions(FlowTranscript, raw),
	}, nil
}
