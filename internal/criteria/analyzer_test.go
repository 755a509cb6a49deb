package criteria

import (
	"testing"

	"github.com/hansollabs/clausecraft/internal/model"
)

func quoteWith(items []model.ServiceItem, amount int64, duration string) *model.Quote {
	return &model.Quote{
		Items:       items,
		TotalAmount: amount,
		Duration:    duration,
	}
}

func TestAnalyzeServiceType(t *testing.T) {
	tests := []struct {
		name  string
		items []model.ServiceItem
		want  string
	}{
		{
			name:  "development keywords",
			items: []model.ServiceItem{{Name: "반응형 홈페이지 제작", Description: "회사 소개 웹사이트"}},
			want:  ServiceDevelopment,
		},
		{
			name:  "design keywords",
			items: []model.ServiceItem{{Name: "브랜드 로고 제작", Description: "BI 디자인 포함"}},
			want:  ServiceDesign,
		},
		{
			name:  "marketing keywords",
			items: []model.ServiceItem{{Name: "SNS 광고 운영", Description: "인스타그램 마케팅"}},
			want:  ServiceMarketing,
		},
		{
			name:  "first match wins over later groups",
			items: []model.ServiceItem{{Name: "쇼핑몰 개발 및 마케팅", Description: ""}},
			want:  ServiceDevelopment,
		},
		{
			name:  "no keywords falls back to general",
			items: []model.ServiceItem{{Name: "기타 작업", Description: ""}},
			want:  ServiceGeneral,
		},
		{
			name:  "english keywords are matched case-insensitively",
			items: []model.ServiceItem{{Name: "Landing Page Development", Description: ""}},
			want:  ServiceDevelopment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(quoteWith(tt.items, 2_000_000, "30일"))
			if got.ServiceType != tt.want {
				t.Errorf("ServiceType = %q, want %q", got.ServiceType, tt.want)
			}
		})
	}
}

func TestAnalyzeIndustry(t *testing.T) {
	got := Analyze(quoteWith(
		[]model.ServiceItem{{Name: "쇼핑몰 상세페이지 디자인", Description: "이커머스 입점 상품"}},
		3_000_000, "1개월"))
	if got.Industry != IndustryEcommerce {
		t.Errorf("Industry = %q, want %q", got.Industry, IndustryEcommerce)
	}

	got = Analyze(quoteWith(
		[]model.ServiceItem{{Name: "명함 디자인", Description: ""}}, 300_000, "1주"))
	if got.Industry != IndustryGeneral {
		t.Errorf("Industry = %q, want %q", got.Industry, IndustryGeneral)
	}
}

func TestAnalyzeComplexity(t *testing.T) {
	tests := []struct {
		name     string
		items    []model.ServiceItem
		amount   int64
		duration string
		want     model.ComplexityTier
	}{
		{
			name:     "small single service is simple",
			items:    []model.ServiceItem{{Name: "배너 디자인"}},
			amount:   500_000,
			duration: "1주",
			want:     model.TierSimple, // amount +1
		},
		{
			name: "mid-size multi-service project is standard",
			items: []model.ServiceItem{
				{Name: "홈페이지 개발"}, {Name: "결제 모듈 연동"}, {Name: "호스팅 설정"},
			},
			amount:   20_000_000,
			duration: "2개월",
			want:     model.TierStandard, // items +1, amount +3, duration +1, custom +2 = 7
		},
		{
			name: "large long custom project is detailed",
			items: []model.ServiceItem{
				{Name: "플랫폼 개발"}, {Name: "앱 개발"}, {Name: "외부 시스템 연동"},
				{Name: "운영 교육"}, {Name: "유지보수"},
			},
			amount:   60_000_000,
			duration: "6개월",
			want:     model.TierDetailed, // items +2, amount +4, duration +2, custom +2 = 10
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(quoteWith(tt.items, tt.amount, tt.duration))
			if got.Complexity != tt.want {
				t.Errorf("Complexity = %q (score %d), want %q", got.Complexity, got.Score, tt.want)
			}
		})
	}
}

func TestAnalyzeComplexityScoreBands(t *testing.T) {
	// items ≥5 (+2), amount ≥50M (+4), duration ≥180d (+2), custom keyword (+2) = 10.
	q := quoteWith(
		[]model.ServiceItem{
			{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"},
			{Name: "커스텀 모듈", Description: "외부 API 연동"},
		},
		50_000_000, "6개월")
	got := Analyze(q)
	if got.Score != 10 {
		t.Errorf("Score = %d, want 10", got.Score)
	}
	if got.DurationDays != 180 {
		t.Errorf("DurationDays = %d, want 180", got.DurationDays)
	}
}

func TestRecommendedClauseCount(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{2, 7},  // simple: 6-8
		{6, 11}, // standard: 10-12
		{9, 17}, // detailed: 15-20
	}
	for _, tt := range tests {
		if got := recommendedClauseCount(tt.score); got != tt.want {
			t.Errorf("recommendedClauseCount(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestAnalyzeLongDescriptionIsComplex(t *testing.T) {
	long := make([]rune, 0, 90)
	for i := 0; i < 90; i++ {
		long = append(long, '가')
	}
	q := quoteWith([]model.ServiceItem{{Name: "작업", Description: string(long)}}, 500_000, "1주")
	got := Analyze(q)
	// amount +1, complex service +2 = 3 → still simple, but score reflects the bonus.
	if got.Score != 3 {
		t.Errorf("Score = %d, want 3", got.Score)
	}
}
