package schedule

import "testing"

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"30일", 30},
		{"2주", 14},
		{"3개월", 90},
		{"1월", 30},
		{" 6개월 ", 180},
		{"", DefaultDurationDays},
		{"약 한 달", DefaultDurationDays},
		{"0일", DefaultDurationDays},
		{"3 months", DefaultDurationDays},
	}

	for _, tt := range tests {
		if got := ParseDuration(tt.input); got != tt.want {
			t.Errorf("ParseDuration(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestGenerateTimeline(t *testing.T) {
	t.Run("short work is a single milestone", func(t *testing.T) {
		tl := GenerateTimeline("2주")
		if tl.TotalDays != 14 {
			t.Fatalf("TotalDays = %d, want 14", tl.TotalDays)
		}
		if len(tl.Milestones) != 1 || tl.Milestones[0].Name != PhaseAll {
			t.Errorf("milestones = %+v, want single %q", tl.Milestones, PhaseAll)
		}
	})

	t.Run("one month gets three phases", func(t *testing.T) {
		tl := GenerateTimeline("30일")
		if len(tl.Milestones) != 3 {
			t.Fatalf("got %d milestones, want 3", len(tl.Milestones))
		}
		if tl.HasMilestone(PhaseMidReview) {
			t.Error("three-phase plan must not contain a mid-project review")
		}
	})

	t.Run("three months gets five phases with mid review", func(t *testing.T) {
		tl := GenerateTimeline("3개월")
		if tl.TotalDays != 90 {
			t.Fatalf("TotalDays = %d, want 90", tl.TotalDays)
		}
		if len(tl.Milestones) != 5 {
			t.Fatalf("got %d milestones, want 5", len(tl.Milestones))
		}
		if !tl.HasMilestone(PhaseMidReview) {
			t.Errorf("five-phase plan must contain %q", PhaseMidReview)
		}
	})

	t.Run("unparsable duration defaults to thirty days", func(t *testing.T) {
		tl := GenerateTimeline("미정")
		if tl.TotalDays != DefaultDurationDays {
			t.Errorf("TotalDays = %d, want %d", tl.TotalDays, DefaultDurationDays)
		}
		if len(tl.Milestones) != 3 {
			t.Errorf("got %d milestones, want 3", len(tl.Milestones))
		}
	})

	t.Run("milestones cover the full duration in order", func(t *testing.T) {
		for _, d := range []string{"10일", "4주", "2개월", "6개월"} {
			tl := GenerateTimeline(d)
			if tl.Milestones[0].StartDay != 1 {
				t.Errorf("%s: first milestone starts at %d", d, tl.Milestones[0].StartDay)
			}
			last := tl.Milestones[len(tl.Milestones)-1]
			if last.EndDay != tl.TotalDays {
				t.Errorf("%s: last milestone ends at %d, want %d", d, last.EndDay, tl.TotalDays)
			}
			for i := 1; i < len(tl.Milestones); i++ {
				if tl.Milestones[i].StartDay != tl.Milestones[i-1].EndDay+1 {
					t.Errorf("%s: milestone %d starts at %d, previous ends at %d",
						d, i, tl.Milestones[i].StartDay, tl.Milestones[i-1].EndDay)
				}
			}
		}
	})
}
