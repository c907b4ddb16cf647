// Package moods holds the static catalog of moods an entry can be tagged with.
package moods

import (
	"strings"

	"github.com/limbo/moodscript/pkg/entity"
)

var catalog = []entity.Mood{
	{ID: "happy", Label: "Happy", Emoji: "😊", Score: 9, ImageQuery: "happy joy"},
	{ID: "excited", Label: "Excited", Emoji: "🤩", Score: 9, ImageQuery: "excited celebration"},
	{ID: "grateful", Label: "Grateful", Emoji: "🙏", Score: 8, ImageQuery: "gratitude thankful"},
	{ID: "content", Label: "Content", Emoji: "😌", Score: 7, ImageQuery: "content peaceful"},
	{ID: "hopeful", Label: "Hopeful", Emoji: "🌅", Score: 7, ImageQuery: "sunrise hope"},
	{ID: "calm", Label: "Calm", Emoji: "🧘", Score: 7, ImageQuery: "calm nature"},
	{ID: "neutral", Label: "Neutral", Emoji: "😐", Score: 5, ImageQuery: "neutral sky"},
	{ID: "tired", Label: "Tired", Emoji: "😴", Score: 4, ImageQuery: "tired sleep"},
	{ID: "anxious", Label: "Anxious", Emoji: "😰", Score: 3, ImageQuery: "anxiety storm"},
	{ID: "sad", Label: "Sad", Emoji: "😢", Score: 2, ImageQuery: "sad rain"},
	{ID: "frustrated", Label: "Frustrated", Emoji: "😤", Score: 2, ImageQuery: "frustration"},
	{ID: "angry", Label: "Angry", Emoji: "😠", Score: 1, ImageQuery: "angry fire"},
}

var byID = func() map[string]entity.Mood {
	m := make(map[string]entity.Mood, len(catalog))
	for _, mood := range catalog {
		m[mood.ID] = mood
	}
	return m
}()

// All returns a copy of the catalog in display order.
func All() []entity.Mood {
	result := make([]entity.Mood, len(catalog))
	copy(result, catalog)
	return result
}

// Lookup resolves a mood id case-insensitively.
func Lookup(id string) (entity.Mood, bool) {
	mood, ok := byID[strings.ToLower(strings.TrimSpace(id))]
	return mood, ok
}

// Trend turns an average mood score into a short phrase for the dashboard.
func Trend(averageScore float64) string {
	switch {
	case averageScore >= 8:
		return "You're feeling great!"
	case averageScore >= 6:
		return "Pretty good overall"
	case averageScore >= 4:
		return "Mixed feelings"
	case averageScore >= 2:
		return "A bit down lately"
	default:
		return "Tough times"
	}
}
