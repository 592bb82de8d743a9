package quest

import (
	"github.com/investifykids/investify-backend/internal/domain"
)

// Status pairs a quest with its human-readable description and whether it
// has been completed.
type Status struct {
	Quest       domain.Quest
	Description string
	Completed   bool
}

// descriptions fixes the display order and wording of the quest list.
var descriptions = []struct {
	quest       domain.Quest
	description string
}{
	{domain.QuestRegistered, "Complete registration"},
	{domain.QuestFirstTrade, "Buy your first stock"},
	{domain.QuestTermsLearned, "Learn financial terms"},
	{domain.QuestPriceChecked, "Check a stock price"},
}

// Tracker derives achievement flags from events raised by the other
// services. Flags are one-way: Complete is idempotent and nothing ever
// clears a flag.
type Tracker struct{}

// NewTracker creates a new Tracker instance.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Complete marks the given quest as done on the session.
func (t *Tracker) Complete(session *domain.Session, quest domain.Quest) {
	session.Quests.Complete(quest)
}

// Snapshot returns the current quest statuses in display order. The
// result is a copy; mutating it does not affect the session.
func (t *Tracker) Snapshot(session *domain.Session) []Status {
	out := make([]Status, 0, len(descriptions))
	for _, d := range descriptions {
		out = append(out, Status{
			Quest:       d.quest,
			Description: d.description,
			Completed:   session.Quests.Done(d.quest),
		})
	}
	return out
}
