package view

import "time"

type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Surface is everything the controller draws on.
type Surface interface {
	ReplaceActivities(cards []Card)
	ShowLoadFailure(text string)
	ReplaceActivityOptions(names []string)
	// ShowMessage reveals the banner until hideAt.
	ShowMessage(text string, kind MessageKind, hideAt time.Time)
	HideMessage()
	ResetForm()
}
