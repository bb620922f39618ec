// Package deck parses tab-separated flashcard decks into catalog cards.
// Pure function: reader in, domain structs out. No database dependencies.
//
// One card per line:
//
//	front<TAB>back[<TAB>phonetic[<TAB>difficulty[<TAB>audio_url]]]
//
// Blank lines and lines starting with '#' are ignored.
package deck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mnflash-backend/internal/domain"
)

const defaultDifficulty = 3

// cardNamespace seeds deterministic card IDs so that re-importing a deck
// updates cards instead of duplicating them.
var cardNamespace = uuid.MustParse("6f1d3c2a-6a43-4c55-9d0e-5b1f8f2a7c11")

// errSkipLine signals that a line should be skipped (comment, empty).
var errSkipLine = errors.New("skip line")

// LineError describes a rejected deck line.
type LineError struct {
	Line   int
	Reason string
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines   int
	CommentLines int
	Parsed       int
	Duplicates   int
}

// ParseResult holds the cards of a deck in file order.
type ParseResult struct {
	Cards    []domain.Card
	Rejected []LineError
	Stats    Stats
}

// CardID returns the stable ID for a front/back pair. Case and spacing
// differences do not change the ID.
func CardID(front, back string) uuid.UUID {
	key := domain.NormalizeText(front) + "\x00" + domain.NormalizeText(back)
	return uuid.NewSHA1(cardNamespace, []byte(key))
}

// ParseFile reads a deck file from disk.
func ParseFile(path string, now time.Time) (ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return Parse(f, now)
}

// Parse reads a deck. Malformed lines are collected in Rejected rather than
// failing the whole deck; a repeated front/back pair keeps its first line.
func Parse(r io.Reader, now time.Time) (ParseResult, error) {
	var result ParseResult
	seen := make(map[uuid.UUID]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		result.Stats.TotalLines++
		lineNo := result.Stats.TotalLines

		card, err := parseLine(scanner.Text())
		if errors.Is(err, errSkipLine) {
			result.Stats.CommentLines++
			continue
		}
		if err != nil {
			result.Rejected = append(result.Rejected, LineError{Line: lineNo, Reason: err.Error()})
			continue
		}

		if _, dup := seen[card.ID]; dup {
			result.Stats.Duplicates++
			continue
		}
		seen[card.ID] = struct{}{}

		card.CreatedAt = now
		result.Cards = append(result.Cards, card)
		result.Stats.Parsed++
	}

	if err := scanner.Err(); err != nil {
		return ParseResult{}, fmt.Errorf("scanner error: %w", err)
	}

	return result, nil
}

func parseLine(line string) (domain.Card, error) {
	line = strings.TrimRight(line, "\r")
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return domain.Card{}, errSkipLine
	}

	fields := strings.Split(line, "\t")
	if len(fields) < 2 {
		return domain.Card{}, errors.New("expected at least front and back")
	}
	if len(fields) > 5 {
		return domain.Card{}, fmt.Errorf("expected at most 5 columns, got %d", len(fields))
	}

	front := strings.TrimSpace(fields[0])
	back := strings.TrimSpace(fields[1])
	if front == "" || back == "" {
		return domain.Card{}, errors.New("front and back must not be empty")
	}

	card := domain.Card{
		ID:         CardID(front, back),
		Front:      front,
		Back:       back,
		Difficulty: defaultDifficulty,
	}

	if len(fields) > 2 {
		card.Phonetic = optional(fields[2])
	}
	if len(fields) > 3 {
		if raw := strings.TrimSpace(fields[3]); raw != "" {
			d, err := strconv.Atoi(raw)
			if err != nil || d < 1 || d > 5 {
				return domain.Card{}, fmt.Errorf("difficulty %q must be an integer 1..5", raw)
			}
			card.Difficulty = d
		}
	}
	if len(fields) > 4 {
		card.AudioURL = optional(fields[4])
	}

	return card, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
