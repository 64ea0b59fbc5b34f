package domain

import "strings"

// ClueType tags how a vocabulary challenge presents its clue.
type ClueType string

const (
	ClueDefinition     ClueType = "definition"
	ClueFillInTheBlank ClueType = "fill-in-the-blank"
)

// MinVocabOptions is the smallest options list a basic-tier challenge may
// carry after repair.
const MinVocabOptions = 3

// VocabularyChallenge is one item of a word-game session.
//
// Options and Hint are mutually exclusive by tier: basic challenges carry an
// options list that must include the word itself; intermediate and advanced
// challenges carry a hint instead.
type VocabularyChallenge struct {
	Word     string
	Clue     string
	ClueType ClueType
	Options  []string
	Hint     string
}

// Validate checks the tier-dependent invariants. Word must be a single token
// with no embedded whitespace.
func (c *VocabularyChallenge) Validate(mode Difficulty) error {
	if c.Word == "" {
		return NewInvalidInputError("word is required")
	}
	if strings.ContainsAny(c.Word, " \t\n") {
		return NewInvalidInputError("word must be a single token")
	}
	if c.Clue == "" {
		return NewInvalidInputError("clue is required")
	}
	if c.ClueType != ClueDefinition && c.ClueType != ClueFillInTheBlank {
		return NewInvalidInputError("unknown clue type")
	}
	if mode == DifficultyBasic {
		if len(c.Options) < MinVocabOptions {
			return NewInvalidInputError("basic challenge needs at least three options")
		}
		if !containsFold(c.Options, c.Word) {
			return NewInvalidInputError("options must include the correct word")
		}
	} else if c.Hint == "" {
		return NewInvalidInputError("non-basic challenge needs a hint")
	}
	return nil
}

// VocabularySession is the validated output of the vocabulary flow.
type VocabularySession struct {
	Mode       Difficulty
	Challenges []VocabularyChallenge
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
