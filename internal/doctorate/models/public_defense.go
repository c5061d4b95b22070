package models

import (
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"parcours/pkg/domain"
	"parcours/pkg/validation"
)

// PublicDefense is stored on the doctorate itself.
type PublicDefense struct {
	Language              string          `json:"language,omitempty"`
	DateTime              *civil.DateTime `json:"date_time,omitempty"`
	Place                 string          `json:"place,omitempty"`
	DeliberationRoom      string          `json:"deliberation_room,omitempty"`
	AdditionalInfo        string          `json:"additional_info,omitempty"`
	AnnouncementSummary   string          `json:"announcement_summary,omitempty"`
	AnnouncementPhoto     []domain.FileID `json:"announcement_photo,omitempty"`
	Minutes               []domain.FileID `json:"minutes,omitempty"`
	MinutesCanvas         []domain.FileID `json:"minutes_canvas,omitempty"`
	DiplomaCollectionDate *civil.Date     `json:"diploma_collection_date,omitempty"`
}

// PublicDefenseInput is the data the student provides for the public defence.
type PublicDefenseInput struct {
	Language            string
	DateTime            *civil.DateTime
	Place               string
	DeliberationRoom    string
	AdditionalInfo      string
	AnnouncementSummary string
	AnnouncementPhoto   []domain.FileID
}

func (in PublicDefenseInput) complete() bool {
	return strings.TrimSpace(in.Language) != "" &&
		in.DateTime != nil &&
		strings.TrimSpace(in.Place) != "" &&
		strings.TrimSpace(in.DeliberationRoom) != "" &&
		len(in.AnnouncementPhoto) > 0
}

// Contract reports missing fields with err.
func (in PublicDefenseInput) Contract(err error) validation.Validator {
	return func() error {
		if in.complete() {
			return nil
		}
		return err
	}
}

// ApplyPublicDefense copies the submitted data without changing the status.
func (d *Doctorate) ApplyPublicDefense(in PublicDefenseInput, now time.Time) {
	d.PublicDefense.Language = in.Language
	d.PublicDefense.DateTime = in.DateTime
	d.PublicDefense.Place = in.Place
	d.PublicDefense.DeliberationRoom = in.DeliberationRoom
	d.PublicDefense.AdditionalInfo = in.AdditionalInfo
	d.PublicDefense.AnnouncementSummary = in.AnnouncementSummary
	d.PublicDefense.AnnouncementPhoto = in.AnnouncementPhoto
	d.UpdatedAt = now
}

func (d *Doctorate) SubmitPublicDefense(in PublicDefenseInput, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{in.Contract(ErrPublicDefenseIncomplete)},
		d.RequireStatus(ErrStatusNotPrivateDefenseSucceeded,
			StatusPrivateDefenseSucceeded, StatusPublicDefenseSubmitted),
	)
	if err != nil {
		return err
	}
	d.ApplyPublicDefense(in, now)
	return d.TransitionTo(StatusPublicDefenseSubmitted, now)
}

func (d *Doctorate) AuthorisePublicDefense(now time.Time) error {
	err := validation.Run(nil,
		d.RequireStatus(ErrStatusNotPublicDefenseSubmitted, StatusPublicDefenseSubmitted),
	)
	if err != nil {
		return err
	}
	return d.TransitionTo(StatusPublicDefenseAuthorised, now)
}

func (d *Doctorate) SubmitPublicDefenseMinutes(minutes []domain.FileID, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{validation.NotEmpty(minutes, ErrPublicDefenseMinutesMissing)},
		d.RequireStatus(ErrPublicDefenseMinutesStatus, StatusPublicDefenseAuthorised, StatusProclaimed),
	)
	if err != nil {
		return err
	}
	d.ApplyPublicDefenseMinutes(minutes, now)
	return nil
}

func (d *Doctorate) ApplyPublicDefenseMinutes(minutes []domain.FileID, now time.Time) {
	d.PublicDefense.Minutes = minutes
	d.UpdatedAt = now
}

// ConfirmPublicDefenseSuccess proclaims the doctorate. Minutes and the
// defence date must be present at the moment of the call.
func (d *Doctorate) ConfirmPublicDefenseSuccess(now time.Time) error {
	err := validation.Run(nil,
		d.RequireStatus(ErrStatusNotPublicDefenseAuthorised, StatusPublicDefenseAuthorised),
		validation.NotEmpty(d.PublicDefense.Minutes, ErrPublicDefenseMinutesMissing),
		validation.Present(d.PublicDefense.DateTime, ErrPublicDefenseDateMissing),
	)
	if err != nil {
		return err
	}
	return d.TransitionTo(StatusProclaimed, now)
}

func (d *Doctorate) ScheduleDiplomaCollection(date *civil.Date, now time.Time) error {
	err := validation.Run(
		[]validation.Validator{validation.Present(date, ErrDiplomaCollectionDateMissing)},
		d.RequireStatus(ErrStatusNotProclaimed, StatusProclaimed),
	)
	if err != nil {
		return err
	}
	d.PublicDefense.DiplomaCollectionDate = date
	d.UpdatedAt = now
	return nil
}
