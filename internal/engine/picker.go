package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hansollabs/clausecraft/internal/llm"
	"github.com/hansollabs/clausecraft/internal/model"
)

// fallbackClauseCount caps the deterministic fallback selection.
const fallbackClauseCount = 10

// ClausePicker chooses a target-sized subset of candidate clauses, tuned by
// the complexity tier, via an external ranking call.
type ClausePicker struct {
	gen    Generator
	logger *slog.Logger
}

// NewClausePicker creates a picker.
func NewClausePicker(gen Generator, logger *slog.Logger) *ClausePicker {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClausePicker{gen: gen, logger: logger}
}

// Pick selects clauses from the candidates. Out-of-range indices in the
// response are silently dropped; on total failure the first
// min(fallbackClauseCount, len(candidates)) candidates are returned, so the
// result is never empty while candidates exist.
func (p *ClausePicker) Pick(ctx context.Context, criteria model.SelectionCriteria, candidates []model.Clause) []model.Clause {
	if len(candidates) == 0 {
		return nil
	}

	response, err := p.gen.Complete(ctx, pickerSystemPrompt, p.buildPrompt(criteria, candidates))
	if err != nil {
		p.logger.Warn("clause selection call failed, using fallback subset", "error", err)
		return fallbackSubset(candidates)
	}

	var parsed struct {
		SelectedNumbers []int `json:"selectedNumbers"`
	}
	if err := llm.DecodeInto(response, &parsed); err != nil {
		p.logger.Warn("clause selection response unparseable, using fallback subset", "error", err)
		return fallbackSubset(candidates)
	}

	selected := mapIndices(candidates, parsed.SelectedNumbers)
	if len(selected) == 0 {
		p.logger.Warn("clause selection returned no valid indices, using fallback subset",
			"selected_numbers", parsed.SelectedNumbers)
		return fallbackSubset(candidates)
	}

	p.logger.Debug("clauses selected",
		"count", len(selected),
		"candidates", len(candidates),
		"complexity", criteria.Complexity)
	return selected
}

const pickerSystemPrompt = "당신은 프리랜서 계약서의 조항을 선별하는 법무 보조 시스템입니다. 반드시 유효한 JSON 객체 하나만으로 응답하세요. JSON 앞뒤에 설명, 마크다운, 코드 블록을 붙이지 마세요."

func (p *ClausePicker) buildPrompt(criteria model.SelectionCriteria, candidates []model.Clause) string {
	minCount, maxCount := criteria.Complexity.ClauseCountRange()

	var b strings.Builder
	fmt.Fprintf(&b, "다음 후보 조항 중 이 계약에 필요한 조항을 반드시 %d개 이상 %d개 이하로 고르세요.\n\n", minCount, maxCount)
	fmt.Fprintf(&b, "계약 정보:\n- 서비스 유형: %s\n- 계약 금액: %d원\n- 기간: %d일\n\n",
		criteria.ServiceType, criteria.Amount, criteria.DurationDays)

	b.WriteString("후보 조항:\n")
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, c.Title, c.Category)
	}

	b.WriteString("\n다음 형식의 JSON으로만 응답하세요:\n{\"selectedNumbers\": [1, 2, 3]}")
	return b.String()
}

// mapIndices maps 1-based response indices back onto the candidate list,
// dropping duplicates and anything out of range.
func mapIndices(candidates []model.Clause, numbers []int) []model.Clause {
	seen := make(map[int]bool, len(numbers))
	var selected []model.Clause
	for _, n := range numbers {
		if n < 1 || n > len(candidates) || seen[n] {
			continue
		}
		seen[n] = true
		selected = append(selected, candidates[n-1])
	}
	return selected
}

func fallbackSubset(candidates []model.Clause) []model.Clause {
	n := len(candidates)
	if n > fallbackClauseCount {
		n = fallbackClauseCount
	}
	return append([]model.Clause(nil), candidates[:n]...)
}
