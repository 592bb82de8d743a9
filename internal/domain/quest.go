package domain

// Quest identifies one learning milestone.
type Quest string

const (
	QuestRegistered   Quest = "register"
	QuestFirstTrade   Quest = "buy_first_stock"
	QuestTermsLearned Quest = "learn_terms"
	QuestPriceChecked Quest = "check_price"
)

// QuestState holds the four achievement flags. Flags transition
// false→true exactly once and are never reset; completing an already
// completed quest is a no-op.
type QuestState struct {
	Registered         bool
	FirstTradeExecuted bool
	TermExplained      bool
	PriceChecked       bool
}

// Complete marks the given quest as done. Unknown quests are ignored.
func (q *QuestState) Complete(quest Quest) {
	switch quest {
	case QuestRegistered:
		q.Registered = true
	case QuestFirstTrade:
		q.FirstTradeExecuted = true
	case QuestTermsLearned:
		q.TermExplained = true
	case QuestPriceChecked:
		q.PriceChecked = true
	}
}

// Done reports whether the given quest has been completed.
func (q *QuestState) Done(quest Quest) bool {
	switch quest {
	case QuestRegistered:
		return q.Registered
	case QuestFirstTrade:
		return q.FirstTradeExecuted
	case QuestTermsLearned:
		return q.TermExplained
	case QuestPriceChecked:
		return q.PriceChecked
	default:
		return false
	}
}
