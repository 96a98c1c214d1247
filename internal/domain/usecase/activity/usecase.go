package activity

import (
	"context"
	"errors"
)

// ErrUnknownActivity is returned when no profile is registered for the
// requested activity.
var ErrUnknownActivity = errors.New("unknown activity")

type UseCase interface {
	// FindBestDay finds the best day in the next seven for an activity in a city
	FindBestDay(ctx context.Context, city string, activity string) (string, error)

	// SuggestActivities suggests top activities per day for up to five cities
	// over the next days (clamped to 1..7)
	SuggestActivities(ctx context.Context, cities []string, days int) string

	// RankPlaces ranks the given cities for an activity over the next days
	// (clamped to 1..10) by their best suitable day
	RankPlaces(ctx context.Context, activity string, cities []string, days int) (string, error)
}
