package card

var spreads = []Spread{
	{
		ID:          "single",
		Name:        "Single Card Draw",
		Description: "Quick insight or guidance on a specific question or general theme for the day.",
		CardCount:   1,
		Positions: []SpreadPosition{
			{Name: "Overall Guidance", Description: "The main theme, answer, or advice."},
		},
	},
	{
		ID:          "three-card",
		Name:        "Three-Card Spread",
		Description: "A versatile spread for exploring past, present, and future, or a situation, action, and outcome.",
		CardCount:   3,
		Positions: []SpreadPosition{
			{Name: "Past Influence / Situation", Description: "What led to the current situation or represents the core of the issue."},
			{Name: "Present State / Action", Description: "The current circumstances or the recommended course of action."},
			{Name: "Future Outcome / Outcome", Description: "The potential result if things continue as they are or if the action is taken."},
		},
	},
	{
		ID:          "celtic-cross",
		Name:        "Celtic Cross (Simplified)",
		Description: "A more in-depth look at a situation. (Simplified for this app)",
		CardCount:   5,
		Positions: []SpreadPosition{
			{Name: "The Present", Description: "The current situation or the querent's state of mind."},
			{Name: "The Challenge", Description: "Immediate challenges or obstacles affecting the situation."},
			{Name: "The Past", Description: "Past events or influences that have led to the present."},
			{Name: "The Future", Description: "Potential near-future developments."},
			{Name: "The Outcome", Description: "The likely resolution or overall outcome."},
		},
	},
}

// Spreads returns the available spread layouts
func Spreads() []Spread {
	out := make([]Spread, len(spreads))
	for i, s := range spreads {
		s.Positions = append([]SpreadPosition(nil), s.Positions...)
		out[i] = s
	}
	return out
}

// SpreadByID finds a spread by its ID
func SpreadByID(id string) (Spread, bool) {
	for _, s := range Spreads() {
		if s.ID == id {
			return s, true
		}
	}
	return Spread{}, false
}
