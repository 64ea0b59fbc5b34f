package flows

import (
	"fmt"
	"strings"

	"studytrack/internal/domain"
	"studytrack/internal/logger"

	"go.uber.org/zap"
)

// Repair policy: generated output that violates a structural invariant is
// corrected deterministically instead of rejected, because a usable result
// with one patched field beats a hard failure after a slow generation call.
// Repairs are per item; a malformed item never invalidates its batch.

// repairQuestions normalizes a batch of multiple-choice questions. Questions
// with too many options are truncated to the maximum; an out-of-range correct
// answer index is clamped to 0. Questions that cannot be repaired (empty text
// or fewer than the minimum options) are dropped.
func repairQuestions(flow string, raw []domain.QuizQuestion) []domain.QuizQuestion {
	l := logger.Get()
	kept := make([]domain.QuizQuestion, 0, len(raw))

	for i, q := range raw {
		if strings.TrimSpace(q.Question) == "" {
			l.Warn("Dropping generated question with empty text",
				zap.String("flow", flow), zap.Int("index", i))
			continue
		}
		if len(q.Options) > domain.MaxQuizOptions {
			l.Warn("Truncating generated question options",
				zap.String("flow", flow), zap.Int("index", i),
				zap.Int("options", len(q.Options)))
			q.Options = q.Options[:domain.MaxQuizOptions]
		}
		if len(q.Options) < domain.MinQuizOptions {
			l.Warn("Dropping generated question with too few options",
				zap.String("flow", flow), zap.Int("index", i),
				zap.Int("options", len(q.Options)))
			continue
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
			l.Warn("Clamping out-of-range correct answer index",
				zap.String("flow", flow), zap.Int("index", i),
				zap.Int("correct_answer_index", q.CorrectAnswerIndex),
				zap.Int("options", len(q.Options)))
			q.CorrectAnswerIndex = 0
		}
		kept = append(kept, q)
	}
	return kept
}

// repairChallenge normalizes one vocabulary challenge, shared by every vocab
// call site so the padding behavior stays identical. Returns false when the
// challenge cannot be repaired and must be dropped.
func repairChallenge(c *domain.VocabularyChallenge, mode domain.Difficulty) bool {
	l := logger.Get()

	c.Word = strings.TrimSpace(c.Word)
	if c.Word == "" || strings.TrimSpace(c.Clue) == "" {
		return false
	}

	// Multi-word answers break the game input; keep the first token only.
	if fields := strings.Fields(c.Word); len(fields) > 1 {
		l.Warn("Truncating multi-word vocabulary answer",
			zap.String("word", c.Word))
		c.Word = fields[0]
	}

	if c.ClueType != domain.ClueDefinition && c.ClueType != domain.ClueFillInTheBlank {
		c.ClueType = domain.ClueDefinition
	}

	if mode == domain.DifficultyBasic {
		c.Hint = ""
		c.Options = repairOptions(c.Options, c.Word)
	} else {
		c.Options = nil
		if strings.TrimSpace(c.Hint) == "" {
			c.Hint = fmt.Sprintf("Starts with %q and has %d letters.",
				strings.ToUpper(c.Word[:1]), len([]rune(c.Word)))
		}
	}
	return true
}

// repairOptions guarantees the basic-tier invariants: the correct word is a
// member of its own options list and the list holds at least MinVocabOptions
// entries. When the word is missing the last option is replaced by it; short
// lists are padded with placeholder entries, skipping duplicates.
func repairOptions(options []string, word string) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		if strings.TrimSpace(o) != "" {
			out = append(out, o)
		}
	}

	if !containsFold(out, word) {
		logger.Get().Warn("Generated options omit the correct word",
			zap.String("word", word), zap.Strings("options", out))
		if len(out) >= domain.MinVocabOptions {
			out = out[:len(out)-1]
		}
		out = append(out, word)
	}

	for i := 0; len(out) < domain.MinVocabOptions; i++ {
		placeholder := fmt.Sprintf("Option %c", 'A'+i)
		if containsFold(out, placeholder) {
			continue
		}
		out = append(out, placeholder)
	}
	return out
}

// clamp01 pins a model-produced score to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
