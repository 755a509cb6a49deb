package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/hansollabs/clausecraft/internal/common"
	"github.com/hansollabs/clausecraft/internal/llm"
	"github.com/hansollabs/clausecraft/internal/model"
)

// fallbackTemplateCount is how many templates the popularity fallback keeps
// when the ranking call fails or returns nothing usable.
const fallbackTemplateCount = 3

// TemplateMatcher ranks the template catalog against selection criteria by
// delegating to a generation call, with a deterministic popularity fallback.
type TemplateMatcher struct {
	gen    Generator
	logger *slog.Logger
}

// NewTemplateMatcher creates a matcher.
func NewTemplateMatcher(gen Generator, logger *slog.Logger) *TemplateMatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &TemplateMatcher{gen: gen, logger: logger}
}

// Match filters the catalog to the templates best matching the criteria.
// An empty catalog fails fast; every other failure mode degrades to the
// top templates by popularity. Matching has no side effects; popularity is
// incremented later, only for templates used in a finished contract.
func (m *TemplateMatcher) Match(ctx context.Context, criteria model.SelectionCriteria, templates []model.Template) ([]model.Template, error) {
	if len(templates) == 0 {
		return nil, common.ErrNoTemplates
	}

	response, err := m.gen.Complete(ctx, matcherSystemPrompt, m.buildPrompt(criteria, templates))
	if err != nil {
		m.logger.Warn("template ranking call failed, falling back to popularity",
			"error", err)
		return topByPopularity(templates, fallbackTemplateCount), nil
	}

	var parsed struct {
		SelectedIDs []string `json:"selectedIds"`
	}
	if err := llm.DecodeInto(response, &parsed); err != nil {
		m.logger.Warn("template ranking response unparseable, falling back to popularity",
			"error", err)
		return topByPopularity(templates, fallbackTemplateCount), nil
	}

	matched := filterByID(templates, parsed.SelectedIDs)
	if len(matched) == 0 {
		m.logger.Warn("template ranking returned no valid ids, falling back to popularity",
			"selected_ids", parsed.SelectedIDs)
		return topByPopularity(templates, fallbackTemplateCount), nil
	}

	m.logger.Debug("templates matched",
		"count", len(matched),
		"service_type", criteria.ServiceType)
	return matched, nil
}

const matcherSystemPrompt = "당신은 프리랜서 계약서 템플릿 추천 시스템입니다. 반드시 유효한 JSON 객체 하나만으로 응답하세요. JSON 앞뒤에 설명, 마크다운, 코드 블록을 붙이지 마세요."

func (m *TemplateMatcher) buildPrompt(criteria model.SelectionCriteria, templates []model.Template) string {
	var b strings.Builder
	b.WriteString("다음 프로젝트에 가장 적합한 계약서 템플릿을 1~3개 고르세요.\n\n")
	fmt.Fprintf(&b, "프로젝트 정보:\n- 서비스 유형: %s\n- 업종: %s\n- 계약 금액: %d원\n- 기간: %d일\n\n",
		criteria.ServiceType, criteria.Industry, criteria.Amount, criteria.DurationDays)

	b.WriteString("템플릿 목록:\n")
	for _, t := range templates {
		fmt.Fprintf(&b, "- id: %s / 이름: %s / 분류: %s / 업종: %s\n", t.ID, t.Name, t.Category, t.Industry)
	}

	b.WriteString("\n다음 형식의 JSON으로만 응답하세요:\n{\"selectedIds\": [\"<템플릿 id>\"]}")
	return b.String()
}

func filterByID(templates []model.Template, ids []string) []model.Template {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var matched []model.Template
	for _, t := range templates {
		if wanted[t.ID] {
			matched = append(matched, t)
		}
	}
	return matched
}

func topByPopularity(templates []model.Template, k int) []model.Template {
	sorted := append([]model.Template(nil), templates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Popularity > sorted[j].Popularity
	})
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}
