package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type Entry struct {
	ID           uuid.UUID  `json:"id"`
	UserID       uuid.UUID  `json:"uid"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Mood         string     `json:"mood"`
	MoodScore    *int       `json:"mood_score,omitempty"`
	MoodImageURL *string    `json:"mood_image_url,omitempty"`
	CollectionID *uuid.UUID `json:"collection_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// EntryView is an entry as shown in lists: with its mood card and collection name.
type EntryView struct {
	Entry
	MoodData       *Mood   `json:"mood_data,omitempty"`
	CollectionName *string `json:"collection_name,omitempty"`
}

type Collection struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"uid"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Draft struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"uid"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Mood struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Emoji      string `json:"emoji"`
	Score      int    `json:"score"`
	ImageQuery string `json:"image_query"`
}

type AnalyticsPoint struct {
	Date         string  `json:"date"`
	AverageScore float64 `json:"averageScore"`
	EntryCount   int     `json:"entryCount"`
}

type OverallStats struct {
	TotalEntries     int     `json:"totalEntries"`
	AverageScore     float64 `json:"averageScore"`
	MostFrequentMood *string `json:"mostFrequentMood,omitempty"`
	DailyAverage     float64 `json:"dailyAverage"`
}

type Pagination struct {
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	Current int  `json:"current"`
	HasMore bool `json:"hasMore"`
}
