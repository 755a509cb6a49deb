package schedule

import (
	"regexp"
	"strconv"

	"github.com/hansollabs/clausecraft/internal/model"
)

// DefaultDurationDays applies when a duration string cannot be parsed.
const DefaultDurationDays = 30

var durationRe = regexp.MustCompile(`^\s*(\d+)\s*(일|주|개월|월)\s*$`)

// ParseDuration maps a duration string of the form <number><unit> to a day
// count. Recognized units are 일 (day), 주 (week) and 개월/월 (month).
// Unknown or unparsable input falls back to DefaultDurationDays.
func ParseDuration(duration string) int {
	m := durationRe.FindStringSubmatch(duration)
	if m == nil {
		return DefaultDurationDays
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return DefaultDurationDays
	}

	switch m[2] {
	case "일":
		return n
	case "주":
		return n * 7
	default: // 개월, 월
		return n * 30
	}
}

// Milestone phase names.
const (
	PhaseAll       = "전체 작업"
	PhasePlan      = "기획 및 설계"
	PhaseBuild     = "제작"
	PhaseMidReview = "중간 검토"
	PhasePolish    = "보완 및 마무리"
	PhaseReview    = "검수 및 인도"
)

// GenerateTimeline produces the milestone plan for a duration string. The
// plan is a pure lookup bucketed by total day count: short work is a single
// milestone, up to a month is a three-phase plan, anything longer gets five
// phases with an explicit mid-project review.
func GenerateTimeline(duration string) model.Timeline {
	days := ParseDuration(duration)

	var milestones []model.Milestone
	switch {
	case days <= 14:
		milestones = []model.Milestone{
			{Name: PhaseAll, StartDay: 1, EndDay: days},
		}
	case days <= 30:
		milestones = []model.Milestone{
			{Name: PhasePlan, StartDay: 1, EndDay: days * 20 / 100},
			{Name: PhaseBuild, StartDay: days*20/100 + 1, EndDay: days * 80 / 100},
			{Name: PhaseReview, StartDay: days*80/100 + 1, EndDay: days},
		}
	default:
		milestones = []model.Milestone{
			{Name: PhasePlan, StartDay: 1, EndDay: days * 15 / 100},
			{Name: PhaseBuild, StartDay: days*15/100 + 1, EndDay: days * 45 / 100},
			{Name: PhaseMidReview, StartDay: days*45/100 + 1, EndDay: days * 55 / 100},
			{Name: PhasePolish, StartDay: days*55/100 + 1, EndDay: days * 85 / 100},
			{Name: PhaseReview, StartDay: days*85/100 + 1, EndDay: days},
		}
	}

	return model.Timeline{
		Duration:   duration,
		TotalDays:  days,
		Milestones: milestones,
	}
}
