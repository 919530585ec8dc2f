package service

import (
	"context"
	"strings"
	"time"

	"github.com/hortiexam/hortiexam/internal/extraction"
	"github.com/hortiexam/hortiexam/internal/model"
	"github.com/hortiexam/hortiexam/internal/repository"
	"github.com/rs/zerolog/log"
)

// DefaultCategory is assigned to imported questions when the caller
// supplies none.
const DefaultCategory = "Allgemein"

// ImportService turns document text into pool questions. Two entry
// points: the marker-based normalizer over pre-split paragraph lines,
// and the extraction provider over raw free text. Both funnel into the
// same candidate validation and insertion.
type ImportService interface {
	ImportParagraphs(lines []string, category string) (parsed, imported int, err error)
	ExtractAndImport(ctx context.Context, text, category string) (parsed, imported int, err error)
}

type importService struct {
	questionRepo repository.QuestionRepository
	provider     extraction.Provider
	timeout      time.Duration
}

func NewImportService(questionRepo repository.QuestionRepository, provider extraction.Provider, timeout time.Duration) ImportService {
	return &importService{
		questionRepo: questionRepo,
		provider:     provider,
		timeout:      timeout,
	}
}

func (s *importService) ImportParagraphs(lines []string, category string) (int, int, error) {
	candidates := NormalizeParagraphs(lines)
	imported := s.persistCandidates(candidates, category)
	return len(candidates), imported, nil
}

func (s *importService) ExtractAndImport(ctx context.Context, text, category string) (int, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	candidates, err := s.provider.Extract(ctx, text, normalizeCategory(category))
	if err != nil {
		// Nothing has been inserted yet; the whole batch fails as one.
		return 0, 0, err
	}
	log.Info().Str("provider", s.provider.Name()).Int("candidates", len(candidates)).Msg("Extraction provider returned candidates")

	imported := s.persistCandidates(candidates, category)
	return len(candidates), imported, nil
}

// persistCandidates validates and inserts candidates one by one.
// Insertions are independent: a storage failure on one candidate is
// logged and does not undo or block the others.
func (s *importService) persistCandidates(candidates []extraction.Candidate, category string) int {
	category = normalizeCategory(category)
	imported := 0
	for _, c := range candidates {
		content := strings.TrimSpace(c.Content)
		answer := strings.TrimSpace(c.Answer)
		if content == "" || answer == "" {
			log.Warn().Msg("Skipping candidate with empty content or answer")
			continue
		}
		difficulty := c.Difficulty
		if difficulty < 1 || difficulty > 5 {
			difficulty = 3
		}
		question := model.Question{
			Content:    content,
			Answer:     answer,
			Category:   category,
			Tags:       model.JoinTags(c.Tags),
			Difficulty: difficulty,
			Active:     true,
		}
		if err := s.questionRepo.Create(&question); err != nil {
			log.Error().Err(err).Msg("Failed to insert imported question, continuing with remaining candidates")
			continue
		}
		imported++
	}
	return imported
}

func normalizeCategory(category string) string {
	if strings.TrimSpace(category) == "" {
		return DefaultCategory
	}
	return strings.TrimSpace(category)
}

// Normalizer state machine states.
const (
	stateIdle = iota
	stateInQuestion
	stateInAnswer
)

var questionMarkers = []string{"frage:", "question:"}
var answerMarkers = []string{"lösung:", "loesung:", "solution:"}

// NormalizeParagraphs runs the single-pass, line-oriented state
// machine over pre-split paragraph lines. A candidate is emitted only
// when both a question and a non-empty answer have accumulated; a
// dangling question at end of input is dropped. Consecutive plain
// lines are joined into the open field with a <br> separator.
func NormalizeParagraphs(lines []string) []extraction.Candidate {
	var candidates []extraction.Candidate
	var question, answer strings.Builder
	state := stateIdle

	emit := func() {
		q := strings.TrimSpace(question.String())
		a := strings.TrimSpace(answer.String())
		if q != "" && a != "" {
			candidates = append(candidates, extraction.Candidate{Content: q, Answer: a})
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if rest, ok := matchMarker(line, questionMarkers); ok {
			emit()
			question.Reset()
			answer.Reset()
			question.WriteString(rest)
			state = stateInQuestion
			continue
		}

		if rest, ok := matchMarker(line, answerMarkers); ok {
			if state == stateIdle {
				// Answer without an open question is discarded.
				continue
			}
			answer.Reset()
			answer.WriteString(rest)
			state = stateInAnswer
			continue
		}

		switch state {
		case stateInQuestion:
			if question.Len() > 0 {
				question.WriteString("<br>")
			}
			question.WriteString(line)
		case stateInAnswer:
			if answer.Len() > 0 {
				answer.WriteString("<br>")
			}
			answer.WriteString(line)
		default:
			// Plain line with no open question: discarded.
		}
	}

	emit()
	return candidates
}

// matchMarker reports whether the line starts with one of the given
// markers (case-insensitive) and returns the trimmed remainder.
func matchMarker(line string, markers []string) (string, bool) {
	lower := strings.ToLower(line)
	for _, m := range markers {
		if strings.HasPrefix(lower, m) {
			return strings.TrimSpace(line[len(m):]), true
		}
	}
	return "", false
}
