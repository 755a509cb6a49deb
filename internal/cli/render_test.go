package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/hansollabs/clausecraft/internal/model"
)

func TestFormatKRW(t *testing.T) {
	tests := []struct {
		want   string
		amount int64
	}{
		{"0원", 0},
		{"500원", 500},
		{"1,000원", 1_000},
		{"800,000원", 800_000},
		{"5,000,000원", 5_000_000},
		{"1,234,567,890원", 1_234_567_890},
		{"-1,500원", -1_500},
	}
	for _, tt := range tests {
		if got := FormatKRW(tt.amount); got != tt.want {
			t.Errorf("FormatKRW(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestRenderContract(t *testing.T) {
	contract := &model.Contract{
		ID: "ct-1",
		Info: model.ContractInfo{
			Client:         model.Party{Name: "테스트 주식회사"},
			Provider:       model.Party{Name: "김프리랜서"},
			ProjectName:    "홈페이지 구축",
			TotalAmount:    4_500_000,
			OriginalAmount: 5_000_000,
			DiscountAmount: 500_000,
		},
		Clauses: []model.Clause{
			{Title: "계약의 목적", Content: "본 계약은...", Category: model.CategoryPurpose, Order: 1},
			{Title: "대금의 지급", Content: "발주자는...", Category: model.CategoryPayment, Order: 2},
		},
		Payment: model.PaymentSchedule{
			DownRate: 30, FinalRate: 70,
			DownAmount: 1_350_000, FinalAmt: 3_150_000,
		},
		Timeline: model.Timeline{
			TotalDays: 45,
			Milestones: []model.Milestone{
				{Name: "기획 및 설계", StartDay: 1, EndDay: 6},
				{Name: "제작", StartDay: 7, EndDay: 20},
			},
		},
		Metadata: model.ContractMetadata{
			GeneratedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
			Complexity:  model.TierStandard,
			Mode:        "rules",
		},
	}

	out := RenderContract(contract)

	for _, want := range []string{
		"용역 계약서",
		"테스트 주식회사",
		"김프리랜서",
		"4,500,000원",
		"할인 500,000원",
		"제1조 (계약의 목적)",
		"제2조 (대금의 지급)",
		"착수금 30%",
		"잔금 70%",
		"총 45일",
		"기획 및 설계",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered contract missing %q", want)
		}
	}
	if strings.Contains(out, "중도금") {
		t.Error("zero-rate installment rendered")
	}

	// The party/amount summary is framed in a rounded box.
	for _, border := range []string{"╭", "╰", "│"} {
		if !strings.Contains(out, border) {
			t.Errorf("rendered contract missing box border %q", border)
		}
	}
}

func TestRenderTemplateList(t *testing.T) {
	out := RenderTemplateList(nil)
	if !strings.Contains(out, "등록된 템플릿이 없습니다") {
		t.Errorf("empty list output = %q", out)
	}

	templates := []model.Template{
		{ID: "tpl-web", Name: "웹 개발 표준", Category: "development", Industry: "IT", Popularity: 4, Active: true},
		{ID: "tpl-old", Name: "구버전", Active: false},
	}
	out = RenderTemplateList(templates)
	for _, want := range []string{"템플릿 2건", "tpl-web", "사용 4회", "비활성"} {
		if !strings.Contains(out, want) {
			t.Errorf("template list missing %q", want)
		}
	}
}
