package srs

import (
	"math"
	"time"

	"github.com/packageIncoming/project-locus-prototype/internal/domain"
)

// calculateNewEaseFactor determines the new ease factor from the review quality.
//
// The ease factor represents the card's difficulty - higher values mean the
// card is easier and intervals grow faster. The adjustment is the standard
// SM-2 formula applied to the card's previous ease factor:
//
//	EF' = EF + (0.1 - (5 - q) * (0.08 + (5 - q) * 0.02))
//
// The update is applied for every review, failed or successful, and the
// result is clamped to params.MinEaseFactor. Within the valid 0..5 range the
// adjustment is monotonically non-decreasing in q: quality 5 adds 0.1,
// quality 4 is neutral, and lower scores subtract progressively more.
func calculateNewEaseFactor(
	currentEF float64,
	quality domain.ReviewQuality,
	params *Params,
) float64 {
	q := float64(quality)
	newEF := currentEF + (0.1 - (5-q)*(0.08+(5-q)*0.02))

	if newEF < params.MinEaseFactor {
		newEF = params.MinEaseFactor
	}

	return newEF
}

// calculateNextStats computes the card's next scheduling state after a review.
//
// It follows the SM-2 algorithm over a 0..5 quality score:
//
//   - quality below params.PassingQuality is a failed recall: repetitions
//     reset to 0, the interval drops to params.LapseInterval, and the card is
//     rescheduled relative to the review instant.
//   - On a successful recall the interval depends on the previous repetition
//     count: the first pass earns params.FirstInterval days, the second
//     params.SecondInterval, and every later pass grows the previous interval
//     by the previous ease factor, rounded up.
//   - Successful reviews reschedule relative to the card's previous scheduled
//     date rather than the review instant, so a card reviewed late keeps its
//     original cadence instead of resetting against real time.
//
// The ease factor is updated unconditionally after the branch, always from
// the card's previous ease factor.
//
// This function is pure: it returns a new Flashcard value and never mutates
// its input or touches storage. Persisting the result is the caller's job.
func calculateNextStats(
	card *domain.Flashcard,
	quality domain.ReviewQuality,
	now time.Time,
	params *Params,
) *domain.Flashcard {
	// Copy the card so the input stays untouched.
	next := *card

	if int(quality) < params.PassingQuality {
		// Failed recall: reset progress and review again tomorrow.
		next.Repetitions = 0
		next.Interval = params.LapseInterval
		next.NextReviewDate = now.AddDate(0, 0, params.LapseInterval)
	} else {
		switch card.Repetitions {
		case 0:
			next.Repetitions = 1
			next.Interval = params.FirstInterval
		case 1:
			next.Repetitions = 2
			next.Interval = params.SecondInterval
		default:
			next.Repetitions = card.Repetitions + 1
			next.Interval = int(math.Ceil(float64(card.Interval) * card.EaseFactor))
		}
		next.NextReviewDate = card.NextReviewDate.AddDate(0, 0, next.Interval)
	}

	next.EaseFactor = calculateNewEaseFactor(card.EaseFactor, quality, params)
	next.UpdatedAt = now

	return &next
}
