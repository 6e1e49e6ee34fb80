package booking

import "strings"

// Request carries the caller-provided fields of a reservation submission.
type Request struct {
	RoomID   string
	Date     string
	Start    string
	End      string
	UserName string
	Purpose  string
}

// Reason classifies why a reservation request was rejected.
type Reason string

const (
	// ReasonMissingField marks a required field that is absent or blank.
	ReasonMissingField Reason = "missing_field"
	// ReasonInvalidOrdering marks a start time that is not before the end time.
	ReasonInvalidOrdering Reason = "invalid_ordering"
)

// Rejection describes the first rule a reservation request failed.
type Rejection struct {
	Reason Reason
	Field  string
}

// requiredFields lists the required request fields in check order. The order
// is part of the contract: the first empty field names the rejection.
var requiredFields = []struct {
	name  string
	value func(Request) string
}{
	{name: "room_id", value: func(r Request) string { return r.RoomID }},
	{name: "date", value: func(r Request) string { return r.Date }},
	{name: "start_time", value: func(r Request) string { return r.Start }},
	{name: "end_time", value: func(r Request) string { return r.End }},
	{name: "user_name", value: func(r Request) string { return r.UserName }},
	{name: "purpose", value: func(r Request) string { return r.Purpose }},
}

// Validate checks a reservation request for completeness and time ordering.
// The first failing rule wins: every required field must be non-empty after
// trimming before ordering is considered, and the start must compare strictly
// below the end. Fixed-width HH:MM makes the string comparison exact. A nil
// result means the request passed.
func Validate(request Request) *Rejection {
	for _, field := range requiredFields {
		if strings.TrimSpace(field.value(request)) == "" {
			return &Rejection{Reason: ReasonMissingField, Field: field.name}
		}
	}

	if strings.TrimSpace(request.Start) >= strings.TrimSpace(request.End) {
		return &Rejection{Reason: ReasonInvalidOrdering, Field: "end_time"}
	}

	return nil
}
