// Package analytics computes per-day mood timelines and overall stats
// from an already filtered list of a user's entries.
package analytics

import (
	"math"
	"math/big"
	"time"

	errorvalues "github.com/limbo/moodscript/internal/error_values"
	"github.com/limbo/moodscript/pkg/entity"
)

type Period string

const (
	Period7d  Period = "7d"
	Period15d Period = "15d"
	Period30d Period = "30d"

	DefaultPeriod = Period30d
)

const dateLayout = "2006-01-02"

// ParsePeriod accepts "7d", "15d", "30d". Empty string means DefaultPeriod.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return DefaultPeriod, nil
	case Period7d, Period15d, Period30d:
		return Period(s), nil
	}
	return "", errorvalues.ErrInvalidPeriod
}

// Days is the nominal length of the period. Unknown values count as 30 days.
func (p Period) Days() int {
	switch p {
	case Period7d:
		return 7
	case Period15d:
		return 15
	default:
		return 30
	}
}

// StartDate is the lower bound of the query window ending at now.
func (p Period) StartDate(now time.Time) time.Time {
	return now.AddDate(0, 0, -p.Days())
}

type Result struct {
	Timeline []entity.AnalyticsPoint `json:"timeline"`
	Stats    entity.OverallStats     `json:"stats"`
}

type dayBucket struct {
	totalScore int
	count      int
}

// Aggregate groups entries by UTC calendar day and computes overall stats.
// Days keep the order in which they first appear in entries.
// An entry without a score adds 0 to the sums but still counts.
func Aggregate(entries []entity.Entry, period Period) Result {
	result := Result{
		Timeline: make([]entity.AnalyticsPoint, 0),
	}
	if len(entries) == 0 {
		return result
	}

	days := make([]string, 0)
	buckets := make(map[string]*dayBucket)
	moodOrder := make([]string, 0)
	moodTally := make(map[string]int)
	totalScore := 0

	for _, e := range entries {
		date := e.CreatedAt.UTC().Format(dateLayout)
		b, ok := buckets[date]
		if !ok {
			b = &dayBucket{}
			buckets[date] = b
			days = append(days, date)
		}
		score := scoreOf(e)
		b.totalScore += score
		b.count++
		totalScore += score

		if e.Mood != "" {
			if _, seen := moodTally[e.Mood]; !seen {
				moodOrder = append(moodOrder, e.Mood)
			}
			moodTally[e.Mood]++
		}
	}

	for _, date := range days {
		b := buckets[date]
		result.Timeline = append(result.Timeline, entity.AnalyticsPoint{
			Date:         date,
			AverageScore: round1(float64(b.totalScore) / float64(b.count)),
			EntryCount:   b.count,
		})
	}

	total := len(entries)
	result.Stats = entity.OverallStats{
		TotalEntries:     total,
		AverageScore:     round1(float64(totalScore) / float64(max(total, 1))),
		MostFrequentMood: mostFrequent(moodOrder, moodTally),
		DailyAverage:     round1(float64(total) / float64(period.Days())),
	}
	return result
}

func scoreOf(e entity.Entry) int {
	if e.MoodScore == nil {
		return 0
	}
	return *e.MoodScore
}

// mostFrequent picks the highest tally; on ties the mood tallied first wins.
func mostFrequent(order []string, tally map[string]int) *string {
	var best string
	bestCount := 0
	for _, mood := range order {
		if tally[mood] > bestCount {
			best = mood
			bestCount = tally[mood]
		}
	}
	if bestCount == 0 {
		return nil
	}
	return &best
}

// round1 rounds the exact binary value of x to one decimal, halves away
// from zero. 23/20 is stored below 1.15 and gives 1.1.
func round1(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	scaled := new(big.Float).SetPrec(256).SetFloat64(math.Abs(x))
	scaled.Mul(scaled, big.NewFloat(10))
	scaled.Add(scaled, big.NewFloat(0.5))
	n, _ := scaled.Int(nil)
	res, _ := new(big.Float).SetInt(n).Float64()
	return math.Copysign(res/10, x)
}
