package usecase

import (
	"time"

	"github.com/google/uuid"
)

// recordIDLayout is the historical key format of both collections: the
// wall-clock second of the save. Existing records all use it, so new keys
// keep the shape and collisions are handled by a conditional put plus one
// suffixed retry.
const recordIDLayout = "20060102150405"

func newRecordID(now time.Time) string {
	return now.Format(recordIDLayout)
}

func suffixedRecordID(now time.Time) string {
	return now.Format(recordIDLayout) + "-" + uuid.NewString()[:8]
}
