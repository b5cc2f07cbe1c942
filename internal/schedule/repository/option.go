package repository

import (
	"time"

	"pharmacy-ops/internal/model"
	"pharmacy-ops/pkg/civil"
)

// UpsertInstanceOptions holds the occurrence snapshot to persist.
type UpsertInstanceOptions struct {
	Occurrence model.Occurrence
}

// ListInstancesOptions filters open-instance listings. Zero values mean no
// filter.
type ListInstancesOptions struct {
	// AppearedOnOrBefore keeps instances whose appearance date is not after
	// the given date.
	AppearedOnOrBefore civil.Date
}

// SetCompletionOptions marks or reverts completion of an instance.
type SetCompletionOptions struct {
	TaskID     string
	Appearance civil.Date
	Done       bool
	At         *time.Time
}
