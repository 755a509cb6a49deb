// Package criteria derives selection criteria from a quote's line items.
package criteria

import (
	"strings"

	"github.com/hansollabs/clausecraft/internal/model"
	"github.com/hansollabs/clausecraft/internal/schedule"
)

// Service type constants.
const (
	ServiceDevelopment = "development"
	ServiceDesign      = "design"
	ServiceMarketing   = "marketing"
	ServiceContent     = "content"
	ServiceConsulting  = "consulting"
	ServiceEducation   = "education"
	ServiceMaintenance = "maintenance"
	ServiceGeneral     = "general"
)

// Industry constants.
const (
	IndustryTech       = "tech"
	IndustryEcommerce  = "ecommerce"
	IndustryFinance    = "finance"
	IndustryHealthcare = "healthcare"
	IndustryEducation  = "education"
	IndustryFood       = "food"
	IndustryBeauty     = "beauty"
	IndustryGeneral    = "general"
)

// keywordGroup maps a label to its match keywords. Groups are evaluated in
// order; the first group with any keyword present wins.
type keywordGroup struct {
	label    string
	keywords []string
}

var serviceTypeGroups = []keywordGroup{
	{ServiceDevelopment, []string{"개발", "웹사이트", "홈페이지", "앱", "시스템", "프로그램", "api", "app", "web", "development"}},
	{ServiceDesign, []string{"디자인", "로고", "브랜딩", "일러스트", "ui", "ux", "design", "logo"}},
	{ServiceMarketing, []string{"마케팅", "광고", "홍보", "sns", "바이럴", "marketing"}},
	{ServiceContent, []string{"콘텐츠", "영상", "촬영", "편집", "블로그", "원고", "content", "video"}},
	{ServiceConsulting, []string{"컨설팅", "자문", "전략", "진단", "consulting"}},
	{ServiceEducation, []string{"교육", "강의", "강좌", "멘토링", "코칭", "lecture"}},
	{ServiceMaintenance, []string{"유지보수", "운영대행", "관리", "모니터링", "maintenance"}},
}

var industryGroups = []keywordGroup{
	{IndustryTech, []string{"스타트업", "소프트웨어", "saas", "it", "테크", "플랫폼"}},
	{IndustryEcommerce, []string{"쇼핑몰", "이커머스", "커머스", "스마트스토어", "온라인 판매"}},
	{IndustryFinance, []string{"금융", "핀테크", "보험", "투자", "대출"}},
	{IndustryHealthcare, []string{"병원", "의료", "헬스케어", "건강", "클리닉"}},
	{IndustryEducation, []string{"학원", "교육기관", "학교", "이러닝"}},
	{IndustryFood, []string{"식당", "카페", "음식", "외식", "프랜차이즈", "배달"}},
	{IndustryBeauty, []string{"뷰티", "미용", "화장품", "네일", "에스테틱"}},
}

// Complexity scoring bands.
const (
	amountBandTop    = 50_000_000
	amountBandHigh   = 20_000_000
	amountBandMid    = 5_000_000
	longProjectDays  = 180
	midProjectDays   = 60
	longDescription  = 80 // runes
	detailedCutoff   = 9
	standardCutoff   = 6
)

var complexServiceKeywords = []string{"맞춤", "커스텀", "연동", "마이그레이션", "custom", "integration"}

// Analyze derives the selection criteria for a quote. The complexity tier is
// a weighted score over service count, amount band, duration band and
// service complexity; callers that know better can override the tier
// afterwards, but the score is kept for length recommendation either way.
func Analyze(quote *model.Quote) model.SelectionCriteria {
	text := concatText(quote.Items)
	days := schedule.ParseDuration(quote.Duration)
	score := complexityScore(quote, text, days)

	return model.SelectionCriteria{
		ServiceType:  classify(text, serviceTypeGroups, ServiceGeneral),
		Industry:     classify(text, industryGroups, IndustryGeneral),
		Complexity:   tierForScore(score),
		Amount:       quote.TotalAmount,
		DurationDays: days,
		Score:        score,
	}
}

// recommendedClauseCount suggests a contract length from the complexity
// score, for callers that did not specify one explicitly.
func recommendedClauseCount(score int) int {
	minCount, maxCount := tierForScore(score).ClauseCountRange()
	return (minCount + maxCount) / 2
}

func classify(text string, groups []keywordGroup, fallback string) string {
	for _, g := range groups {
		for _, kw := range g.keywords {
			if strings.Contains(text, kw) {
				return g.label
			}
		}
	}
	return fallback
}

func complexityScore(quote *model.Quote, text string, days int) int {
	score := 0

	switch {
	case len(quote.Items) >= 5:
		score += 2
	case len(quote.Items) >= 3:
		score++
	}

	switch {
	case quote.TotalAmount >= amountBandTop:
		score += 4
	case quote.TotalAmount >= amountBandHigh:
		score += 3
	case quote.TotalAmount >= amountBandMid:
		score += 2
	default:
		score++
	}

	switch {
	case days >= longProjectDays:
		score += 2
	case days >= midProjectDays:
		score++
	}

	if hasComplexService(quote.Items, text) {
		score += 2
	}

	return score
}

func hasComplexService(items []model.ServiceItem, text string) bool {
	for _, item := range items {
		if len([]rune(item.Description)) > longDescription {
			return true
		}
	}
	for _, kw := range complexServiceKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func tierForScore(score int) model.ComplexityTier {
	switch {
	case score >= detailedCutoff:
		return model.TierDetailed
	case score >= standardCutoff:
		return model.TierStandard
	default:
		return model.TierSimple
	}
}

func concatText(items []model.ServiceItem) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(strings.ToLower(item.Name))
		b.WriteByte(' ')
		b.WriteString(strings.ToLower(item.Description))
		b.WriteByte(' ')
	}
	return b.String()
}
