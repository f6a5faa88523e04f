package canvas

import (
	"encoding/json"
	"time"
)

// Activity stream item types the decoder recognizes. Anything else decodes
// to UnknownDetail.
const (
	FeedTypeDiscussionTopic   = "DiscussionTopic"
	FeedTypeAnnouncement      = "Announcement"
	FeedTypeConversation      = "Conversation"
	FeedTypeMessage           = "Message"
	FeedTypeSubmission        = "Submission"
	FeedTypeConference        = "Conference"
	FeedTypeCollaboration     = "Collaboration"
	FeedTypeAssessmentRequest = "AssessmentRequest"
)

// FeedItem is one activity stream item: the fields shared by every type,
// plus a Detail variant selected by Type.
type FeedItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	ReadState   bool      `json:"read_state"`
	ContextType string    `json:"context_type"`
	CourseID    *int64    `json:"course_id"`
	GroupID     *int64    `json:"group_id"`
	HTMLURL     string    `json:"html_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Detail holds the type-specific fields. It is never nil after a
	// successful decode; unrecognized types get UnknownDetail.
	Detail Detail `json:"-"`
}

// Detail is the type-specific part of a FeedItem.
type Detail interface {
	feedDetail()
}

type DiscussionTopicDetail struct {
	DiscussionTopicID          int64 `json:"discussion_topic_id"`
	TotalRootDiscussionEntries int   `json:"total_root_discussion_entries"`
	RequireInitialPost         bool  `json:"require_initial_post"`
	UserHasPosted              bool  `json:"user_has_posted"`
}

type AnnouncementDetail struct {
	AnnouncementID             int64 `json:"announcement_id"`
	TotalRootDiscussionEntries int   `json:"total_root_discussion_entries"`
	RequireInitialPost         bool  `json:"require_initial_post"`
	UserHasPosted              *bool `json:"user_has_posted"`
}

type ConversationDetail struct {
	ConversationID   int64 `json:"conversation_id"`
	Private          bool  `json:"private"`
	ParticipantCount int   `json:"participant_count"`
}

type MessageDetail struct {
	MessageID            int64  `json:"message_id"`
	NotificationCategory string `json:"notification_category"`
}

type SubmissionDetail struct {
	AssignmentID *int64   `json:"assignment_id"`
	Grade        *string  `json:"grade"`
	Score        *float64 `json:"score"`
	Submitted    *bool    `json:"submitted"`
}

type ConferenceDetail struct {
	WebConferenceID int64 `json:"web_conference_id"`
}

type CollaborationDetail struct {
	CollaborationID int64 `json:"collaboration_id"`
}

type AssessmentRequestDetail struct {
	AssessmentRequestID int64 `json:"assessment_request_id"`
}

// UnknownDetail is the fallback for item types this client does not model.
// The raw item is kept so nothing is silently dropped.
type UnknownDetail struct {
	Raw json.RawMessage
}

func (DiscussionTopicDetail) feedDetail()   {}
func (AnnouncementDetail) feedDetail()      {}
func (ConversationDetail) feedDetail()      {}
func (MessageDetail) feedDetail()           {}
func (SubmissionDetail) feedDetail()        {}
func (ConferenceDetail) feedDetail()        {}
func (CollaborationDetail) feedDetail()     {}
func (AssessmentRequestDetail) feedDetail() {}
func (UnknownDetail) feedDetail()           {}

// UnmarshalJSON decodes the shared fields, then the Detail variant selected
// by the type discriminant.
func (f *FeedItem) UnmarshalJSON(data []byte) error {
	type plain FeedItem
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*f = FeedItem(p)

	detail, err := decodeDetail(f.Type, data)
	if err != nil {
		return err
	}
	f.Detail = detail
	return nil
}

func decodeDetail(itemType string, data []byte) (Detail, error) {
	unmarshal := func(d Detail) (Detail, error) {
		if err := json.Unmarshal(data, d); err != nil {
			return nil, err
		}
		return d, nil
	}

	switch itemType {
	case FeedTypeDiscussionTopic:
		return unmarshal(&DiscussionTopicDetail{})
	case FeedTypeAnnouncement:
		return unmarshal(&AnnouncementDetail{})
	case FeedTypeConversation:
		return unmarshal(&ConversationDetail{})
	case FeedTypeMessage:
		return unmarshal(&MessageDetail{})
	case FeedTypeSubmission:
		return unmarshal(&SubmissionDetail{})
	case FeedTypeConference:
		return unmarshal(&ConferenceDetail{})
	case FeedTypeCollaboration:
		return unmarshal(&CollaborationDetail{})
	case FeedTypeAssessmentRequest:
		return unmarshal(&AssessmentRequestDetail{})
	default:
		return &UnknownDetail{Raw: append(json.RawMessage(nil), data...)}, nil
	}
}

// FeedPage is one page of the activity stream. NextCursor is an opaque
// continuation token (the rel="next" URL from the Link header); empty means
// the stream is exhausted.
type FeedPage struct {
	Items      []FeedItem
	NextCursor string
}
