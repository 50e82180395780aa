package reward

// Context carries shared per-quest state computed once before any
// participant is processed
type Context struct {
	Entertainer EntertainerBonus `json:"entertainer_bonus"`
}

// EntertainerBonus is active when at least one participant's character
// holds the entertainer job; the bonus applies uniformly to every
// eligible participant, not only the entertainer's
type EntertainerBonus struct {
	Enabled              bool     `json:"enabled"`
	AmountPerParticipant int      `json:"amount_per_participant"`
	Entertainers         []string `json:"entertainers,omitempty"`
}
