package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"studytrack/internal/domain"
	"studytrack/internal/schema"
)

// VocabInput is the caller-declared input of the vocabulary-session flow.
// PreviousWords lets the caller exclude words the user already played.
type VocabInput struct {
	GameMode      string
	NumChallenges int
	PreviousWords []string
}

const (
	minVocabChallenges = 1
	maxVocabChallenges = 20
)

var vocabInputSchema = schema.New(FlowVocab,
	schema.Enum("game_mode", true, domain.Difficulties),
	schema.Int("num_challenges", true, minVocabChallenges, maxVocabChallenges),
	schema.StringList("previous_words", false, 60),
)

func (in VocabInput) Validate() error {
	errs := vocabInputSchema.Validate(map[string]interface{}{
		"game_mode":      in.GameMode,
		"num_challenges": in.NumChallenges,
		"previous_words": in.PreviousWords,
	})
	if errs != nil {
		return errs
	}
	return nil
}

const vocabPromptTemplate = `You are building a vocabulary game for competitive-exam aspirants.
Create %d challenges at the "%s" tier.%s

Respond with ONLY a JSON object in this exact format:
{
  "challenges": [
    {
      "word": "a single English word",
      "clue": "the clue shown to the player",
      "clueType": "definition",
      "options": ["word", "distractor 1", "distractor 2"],
      "hint": ""
    }
  ]
}

Rules:
1. clueType is "definition" or "fill-in-the-blank".
2. For the basic tier fill options with the correct word plus at least two distractors, and leave hint empty.
3. For intermediate and advanced tiers leave options empty and provide a short hint instead.
4. Every word must be a single token with no spaces.`

type vocabPayload struct {
	Challenges []struct {
		Word     string   `json:"word"`
		Clue     string   `json:"clue"`
		ClueType string   `json:"clueType"`
		Options  []string `json:"options"`
		Hint     string   `json:"hint"`
	} `json:"challenges"`
}

// GenerateVocabularySession runs the vocabulary flow. Challenges that cannot
// be repaired are dropped; an empty session after repair is a hard failure.
func GenerateVocabularySession(ctx context.Context, gen domain.TextGenerator, in VocabInput) (*domain.VocabularySession, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	exclusions := ""
	if len(in.PreviousWords) > 0 {
		exclusions = fmt.Sprintf("\nDo not use any of these words: %s.",
			strings.Join(in.PreviousWords, ", "))
	}
	prompt := fmt.Sprintf(vocabPromptTemplate, in.NumChallenges, in.GameMode, exclusions)

	doc, err := invoke(ctx, gen, FlowVocab, prompt)
	if err != nil {
		return nil, err
	}

	var payload vocabPayload
	if err := json.Unmarshal(doc, &payload); err != nil {
		return nil, domain.NewGenerationEmptyError(FlowVocab)
	}

	mode := domain.Difficulty(in.GameMode)
	challenges := make([]domain.VocabularyChallenge, 0, len(payload.Challenges))
	for _, raw := range payload.Challenges {
		c := domain.VocabularyChallenge{
			Word:     raw.Word,
			Clue:     strings.TrimSpace(raw.Clue),
			ClueType: domain.ClueType(raw.ClueType),
			Options:  raw.Options,
			Hint:     strings.TrimSpace(raw.Hint),
		}
		if !repairChallenge(&c, mode) {
			continue
		}
		challenges = append(challenges, c)
	}

	if len(challenges) == 0 {
		return nil, domain.NewEmptyResultError(FlowVocab)
	}

	return &domain.VocabularySession{Mode: mode, Challenges: challenges}, nil
}
