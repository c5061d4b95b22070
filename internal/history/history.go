// Package history records the bilingual audit trail of a doctorate.
//
// Entries are appended after a handler commits. Recording never fails the
// caller: store and sink errors are logged and counted.
package history

import (
	"context"
	"time"

	"parcours/pkg/domain"
)

// Tags used across the lifecycle.
const (
	TagStatusChanged = "status-changed"
	TagModification  = "modification"

	TagConfirmation   = "parcours_doctoral.confirmation"
	TagJury           = "parcours_doctoral.jury"
	TagSupervision    = "parcours_doctoral.supervision"
	TagPrivateDefense = "parcours_doctoral.private_defense"
	TagAdmissibility  = "parcours_doctoral.admissibility"
	TagPublicDefense  = "parcours_doctoral.public_defense"
	TagDistribution   = "parcours_doctoral.thesis_distribution"
	TagDocument       = "parcours_doctoral.document"
	TagDoctorate      = "parcours_doctoral"
)

// Entry is one audit-trail line.
type Entry struct {
	ID          domain.HistoryEntryID `json:"id"`
	DoctorateID domain.DoctorateID    `json:"doctorate_id"`
	MessageFR   string                `json:"message_fr"`
	MessageEN   string                `json:"message_en"`
	Author      string                `json:"author"`
	Tags        []string              `json:"tags"`
	RequestID   string                `json:"request_id,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
}

// HasTag reports whether the entry carries tag.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Store persists entries.
type Store interface {
	Append(ctx context.Context, entry Entry) error
	ListByDoctorate(ctx context.Context, doctorateID domain.DoctorateID) ([]Entry, error)
}

// Sink forwards entries to downstream consumers.
type Sink interface {
	Publish(ctx context.Context, entry Entry) error
}
