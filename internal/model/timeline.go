package model

// Milestone is one named phase of the project timeline, expressed as a
// start/end offset in days from the contract start.
type Milestone struct {
	Name     string `json:"name"`
	StartDay int    `json:"startDay"`
	EndDay   int    `json:"endDay"`
}

// Timeline is the deterministic project plan derived from a quote duration.
type Timeline struct {
	Duration   string      `json:"duration"`
	TotalDays  int         `json:"totalDays"`
	Milestones []Milestone `json:"milestones"`
}

// HasMilestone reports whether a milestone with the given name exists.
func (t *Timeline) HasMilestone(name string) bool {
	for _, m := range t.Milestones {
		if m.Name == name {
			return true
		}
	}
	return false
}
