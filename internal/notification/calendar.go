package notification

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"parcours/internal/ports"
)

const defenseDuration = 2 * time.Hour

// DefenseInvitation describes a defence for an iCalendar invitation.
type DefenseInvitation struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	Organizer   string
	Attendees   []string
}

// Calendar returns the invitation as a text/calendar attachment.
func Calendar(inv DefenseInvitation, now time.Time) ports.Attachment {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodRequest)
	cal.SetProductId("-//UCLouvain//Parcours doctoral//FR")

	event := cal.AddEvent(inv.UID)
	event.SetCreatedTime(now)
	event.SetDtStampTime(now)
	event.SetStartAt(inv.Start)
	event.SetEndAt(inv.Start.Add(defenseDuration))
	event.SetSummary(inv.Summary)
	if inv.Description != "" {
		event.SetDescription(inv.Description)
	}
	if inv.Location != "" {
		event.SetLocation(inv.Location)
	}
	if inv.Organizer != "" {
		event.SetOrganizer("mailto:" + inv.Organizer)
	}
	for _, attendee := range inv.Attendees {
		event.AddAttendee("mailto:"+attendee, ics.CalendarUserTypeIndividual, ics.ParticipationStatusNeedsAction, ics.ParticipationRoleReqParticipant)
	}

	return ports.Attachment{
		Name:     "soutenance.ics",
		MimeType: "text/calendar",
		Content:  []byte(cal.Serialize()),
	}
}
