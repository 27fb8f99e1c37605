package scoring

import (
	"github.com/facultymetrics/facultyrank/internal/domain/category"
	"github.com/facultymetrics/facultyrank/internal/domain/model"
)

// Attribute values recognized by the weight tables. Records carrying other
// values contribute no score item.
const (
	statusPublished  = "published"
	statusAccepted   = "accepted"
	statusCompleted  = "completed"
	statusInProgress = "inProgress"

	kindChair     = "chair"
	kindMember    = "member"
	kindHead      = "head"
	kindSpeaker   = "speaker"
	kindAttendee  = "attendee"
	kindOrganizer = "organizer"
	kindDelivered = "delivered"
	kindAttended  = "attended"
	kindEditor    = "editor"
	kindReviewer  = "reviewer"

	levelQ1            = "q1"
	levelQ2            = "q2"
	levelQ3            = "q3"
	levelQ4            = "q4"
	levelPhD           = "phd"
	levelMasters       = "masters"
	levelInternational = "international"
	levelNational      = "national"
)

// Fixed point weights, one block per category. These are data reproduced
// from the portal's category rules, not derived values.
var (
	publicationPoints = map[string]int{
		levelQ1: 60,
		levelQ2: 45,
		levelQ3: 30,
		levelQ4: 20,
	}
	publicationUnindexedPoints = 15
	publicationAcceptedPoints  = 10

	conferencePoints = map[string]map[string]int{
		levelInternational: {
			kindSpeaker:   25,
			kindOrganizer: 20,
			kindAttendee:  10,
		},
		levelNational: {
			kindSpeaker:   15,
			kindOrganizer: 12,
			kindAttendee:  5,
		},
	}

	researchPoints = map[string]int{
		statusCompleted:  40,
		statusInProgress: 15,
	}

	positionPoints = map[string]int{
		kindHead:   20,
		kindMember: 10,
	}

	coursePoints = map[string]int{
		kindDelivered: 15,
		kindAttended:  5,
	}

	seminarPoints = map[string]int{
		kindSpeaker:  10,
		kindAttendee: 3,
	}

	workshopPoints = map[string]int{
		kindOrganizer: 15,
		kindSpeaker:   10,
		kindAttendee:  5,
	}

	committeePoints = map[string]int{
		kindChair:  15,
		kindMember: 8,
	}

	supervisionPoints = map[string]map[string]int{
		levelPhD: {
			statusCompleted:  30,
			statusInProgress: 15,
		},
		levelMasters: {
			statusCompleted:  20,
			statusInProgress: 10,
		},
	}

	journalMembershipPoints = map[string]int{
		kindEditor:   20,
		kindReviewer: 10,
		kindMember:   8,
	}

	assignmentPoints           = 5
	volunteerWorkPoints        = 5
	thankYouBookPoints         = 5
	scientificEvaluationPoints = 10
)

// scoreRecord maps one activity record to its point value. The second
// return is false when the record's attributes match no table entry, in
// which case the record contributes no score item at all.
func scoreRecord(rec model.ActivityRecord) (int, bool) {
	switch rec.Category {
	case category.Research:
		pts, ok := researchPoints[rec.Status]
		return pts, ok
	case category.Conferences:
		roles, ok := conferencePoints[rec.Level]
		if !ok {
			return 0, false
		}
		pts, ok := roles[rec.Kind]
		return pts, ok
	case category.Positions:
		pts, ok := positionPoints[rec.Kind]
		return pts, ok
	case category.Publications:
		switch rec.Status {
		case statusPublished:
			if pts, ok := publicationPoints[rec.Level]; ok {
				return pts, true
			}
			return publicationUnindexedPoints, true
		case statusAccepted:
			return publicationAcceptedPoints, true
		default:
			return 0, false
		}
	case category.Courses:
		pts, ok := coursePoints[rec.Kind]
		return pts, ok
	case category.Seminars:
		pts, ok := seminarPoints[rec.Kind]
		return pts, ok
	case category.Workshops:
		pts, ok := workshopPoints[rec.Kind]
		return pts, ok
	case category.Assignments:
		return assignmentPoints, true
	case category.VolunteerWork:
		return volunteerWorkPoints, true
	case category.Committees:
		pts, ok := committeePoints[rec.Kind]
		return pts, ok
	case category.ThankYouBooks:
		return thankYouBookPoints, true
	case category.Supervision:
		statuses, ok := supervisionPoints[rec.Level]
		if !ok {
			return 0, false
		}
		pts, ok := statuses[rec.Status]
		return pts, ok
	case category.ScientificEvaluations:
		return scientificEvaluationPoints, true
	case category.JournalMemberships:
		pts, ok := journalMembershipPoints[rec.Kind]
		return pts, ok
	default:
		return 0, false
	}
}
