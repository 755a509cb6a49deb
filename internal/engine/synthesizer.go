package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hansollabs/clausecraft/internal/llm"
	"github.com/hansollabs/clausecraft/internal/model"
)

// newlineMarker is the escaped separator the drafting prompt requires
// between enumerated sub-points, so the response stays on one JSON line.
const newlineMarker = `\n`

// Synthesizer expands selected clause stubs into full legal text with one
// batch drafting call.
type Synthesizer struct {
	gen    Generator
	logger *slog.Logger
}

// NewSynthesizer creates a synthesizer.
func NewSynthesizer(gen Generator, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{gen: gen, logger: logger}
}

// Complete drafts the full text for every selected clause in a single call.
// A parse failure fails the stage: the caller must refuse to assemble rather
// than emit an empty contract.
func (s *Synthesizer) Complete(ctx context.Context, req SelectionRequest, selected []model.Clause) ([]model.Clause, error) {
	response, err := s.gen.Complete(ctx, synthesizerSystemPrompt, s.buildPrompt(req, selected))
	if err != nil {
		return nil, fmt.Errorf("clause drafting call failed: %w", err)
	}

	var parsed struct {
		Clauses []struct {
			Number   int    `json:"number"`
			Title    string `json:"title"`
			Content  string `json:"content"`
			Category string `json:"category"`
		} `json:"clauses"`
	}
	if err := llm.DecodeInto(response, &parsed); err != nil {
		return nil, err
	}

	clauses := make([]model.Clause, 0, len(parsed.Clauses))
	for i, c := range parsed.Clauses {
		if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Content) == "" {
			s.logger.Warn("dropping empty drafted clause", "number", c.Number)
			continue
		}
		category := normalizeCategory(c.Category)
		clauses = append(clauses, model.Clause{
			ID:        fmt.Sprintf("gen-%d", i+1),
			Title:     strings.TrimSpace(c.Title),
			Content:   restoreNewlines(c.Content),
			Category:  category,
			Order:     c.Number,
			Essential: isEssentialCategory(category),
		})
	}

	s.logger.Debug("clauses completed", "requested", len(selected), "completed", len(clauses))
	return clauses, nil
}

const synthesizerSystemPrompt = "당신은 프리랜서 용역 계약서를 작성하는 법무 문서 작성 시스템입니다. 반드시 유효한 JSON 객체 하나만으로 응답하세요. JSON 앞뒤에 설명, 마크다운, 코드 블록을 붙이지 마세요."

// styleInstruction returns the writing-density instruction for a tier.
func styleInstruction(tier model.ComplexityTier) string {
	switch tier {
	case model.TierSimple:
		return "각 조항은 번호가 붙은 세부 항목 3개로 간결하게 작성하세요."
	case model.TierDetailed:
		return "각 조항은 번호가 붙은 세부 항목 6~8개로 상세하게 작성하세요."
	default:
		return "각 조항은 번호가 붙은 세부 항목 4~5개로 작성하세요."
	}
}

func (s *Synthesizer) buildPrompt(req SelectionRequest, selected []model.Clause) string {
	var b strings.Builder
	b.WriteString("아래 계약 정보와 조항 제목 목록을 바탕으로 각 조항의 전체 내용을 작성하세요.\n\n")

	fmt.Fprintf(&b, "계약 정보:\n- 발주자: %s\n- 수행자: %s\n- 프로젝트: %s\n- 계약 금액: %d원\n",
		req.Quote.ClientName, req.Quote.ProviderName, req.Quote.ProjectName, req.Quote.TotalAmount)
	fmt.Fprintf(&b, "- 대금 지급: 착수금 %d%% / 중도금 %d%% / 잔금 %d%%\n",
		req.Payment.DownRate, req.Payment.MiddleRate, req.Payment.FinalRate)

	opts := req.Quote.Options()
	if opts.DeliveryDays > 0 {
		fmt.Fprintf(&b, "- 납품 기한: 계약일로부터 %d일\n", opts.DeliveryDays)
	}
	if opts.InspectionDays > 0 {
		fmt.Fprintf(&b, "- 검수 기간: 납품일로부터 %d일\n", opts.InspectionDays)
	}
	fmt.Fprintf(&b, "- 총 작업 기간: %d일\n\n", req.Timeline.TotalDays)

	b.WriteString("작성할 조항:\n")
	for i, c := range selected {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, c.Title, c.Category)
	}

	b.WriteString("\n")
	b.WriteString(styleInstruction(req.Criteria.Complexity))
	fmt.Fprintf(&b, " 세부 항목 사이에는 줄바꿈 대신 %q 문자를 넣으세요.\n\n", newlineMarker)
	b.WriteString("다음 형식의 JSON으로만 응답하세요:\n")
	b.WriteString(`{"clauses": [{"number": 1, "title": "조항 제목", "content": "1) 첫 항목\n2) 둘째 항목", "category": "purpose"}]}`)
	return b.String()
}

// restoreNewlines converts the escaped newline marker back to real line
// breaks and collapses doubled escape characters left by over-eager JSON
// escaping.
func restoreNewlines(content string) string {
	content = strings.ReplaceAll(content, newlineMarker, "\n")
	return strings.ReplaceAll(content, `\\`, `\`)
}

func normalizeCategory(raw string) model.ClauseCategory {
	category := model.ClauseCategory(strings.ToLower(strings.TrimSpace(raw)))
	switch category {
	case model.CategoryPurpose, model.CategoryScope, model.CategoryPayment,
		model.CategoryDelivery, model.CategoryInspection, model.CategoryRevision,
		model.CategoryIP, model.CategoryConfidential, model.CategoryWarranty,
		model.CategoryLiability, model.CategoryTermination, model.CategoryDispute:
		return category
	default:
		return model.CategoryGeneral
	}
}

func isEssentialCategory(category model.ClauseCategory) bool {
	for _, c := range model.EssentialCategories {
		if c == category {
			return true
		}
	}
	return false
}
