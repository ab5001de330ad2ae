package view

import (
	"fmt"

	"github.com/stpnv0/Activities/internal/domain"
)

const NoParticipantsText = "No participants yet"

type Card struct {
	Name         string
	Description  string
	Schedule     string
	SpotsLeft    int
	Participants []ParticipantRow
}

// Availability reads "N spots left"; N may be negative.
func (c Card) Availability() string {
	return fmt.Sprintf("%d spots left", c.SpotsLeft)
}

// Placeholder is the text shown instead of an empty roster.
func (c Card) Placeholder() string {
	if len(c.Participants) > 0 {
		return ""
	}
	return NoParticipantsText
}

type ParticipantRow struct {
	Email  string
	Delete DeleteAction
}

// DeleteAction identifies the registration a row's delete control removes.
type DeleteAction struct {
	Activity string
	Email    string
}

func NewCard(a domain.Activity) Card {
	rows := make([]ParticipantRow, 0, len(a.Participants))
	for _, email := range a.Participants {
		rows = append(rows, ParticipantRow{
			Email:  email,
			Delete: DeleteAction{Activity: a.Name, Email: email},
		})
	}

	return Card{
		Name:         a.Name,
		Description:  a.Description,
		Schedule:     a.Schedule,
		SpotsLeft:    a.SpotsLeft(),
		Participants: rows,
	}
}

func buildCards(catalog domain.Catalog) []Card {
	activities := catalog.All()
	cards := make([]Card, 0, len(activities))
	for _, a := range activities {
		cards = append(cards, NewCard(a))
	}
	return cards
}
