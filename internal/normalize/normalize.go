// Package normalize converts raw text harvested from product pages into typed values.
// All functions are nil-tolerant and resolve malformed input to the field's default
// instead of returning an error, so one bad field never fails a whole snapshot.
package normalize

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// ratingSeparator splits combined "rating • N reviews" labels.
const ratingSeparator = "•"

// Price parses localized currency text like "1 234 ₽" into a float.
// Currency glyph, thin spaces, non-breaking spaces and interior spaces are stripped.
// Returns nil for missing, empty or unparsable input.
func Price(raw *string) *float64 {
	if raw == nil {
		return nil
	}

	cleaned := strings.NewReplacer(
		"₽", "",
		"\u2009", "",
		"\u00a0", "",
		" ", "",
	).Replace(*raw)
	if cleaned == "" {
		return nil
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}

	return lo.ToPtr(price)
}

// Rating parses rating text like "4.8 • 128 отзывов" into a float.
// Only the segment before the bullet separator is used.
// Returns nil for missing or unparsable input.
func Rating(raw *string) *float64 {
	if raw == nil {
		return nil
	}

	segment, _, _ := strings.Cut(*raw, ratingSeparator)
	rating, err := strconv.ParseFloat(strings.TrimSpace(segment), 64)
	if err != nil {
		return nil
	}

	return lo.ToPtr(rating)
}

// QuestionsCount parses question counters like "28 вопросов" into an int.
// Only the leading whitespace-delimited token is parsed. Defaults to 0.
func QuestionsCount(raw *string) int {
	if raw == nil {
		return 0
	}

	tokens := strings.Fields(*raw)
	if len(tokens) == 0 {
		return 0
	}

	count, err := strconv.Atoi(tokens[0])
	if err != nil || count < 0 {
		return 0
	}

	return count
}

// ReviewsCount parses review counters like "Товар • 128 отзывов" into an int.
// Everything before the last bullet separator is discarded and all non-digit
// characters are stripped from the remainder. Defaults to 0.
func ReviewsCount(raw *string) int {
	if raw == nil {
		return 0
	}

	segments := strings.Split(*raw, ratingSeparator)
	digits := strings.Builder{}
	for _, r := range segments[len(segments)-1] {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	count, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}

	return count
}
