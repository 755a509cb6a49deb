package cli

import (
	"fmt"
	"strings"

	"github.com/hansollabs/clausecraft/internal/model"
)

// FormatKRW renders an amount with thousands separators and the won suffix.
func FormatKRW(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	if amount < 0 {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + "원"
	if amount < 0 {
		out = "-" + out
	}
	return out
}

// RenderContract produces the full terminal view of a contract.
func RenderContract(c *model.Contract) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("용역 계약서"))
	b.WriteString("\n")
	if c.Info.ProjectName != "" {
		b.WriteString(SubtitleStyle.Render(c.Info.ProjectName))
		b.WriteString("\n")
	}

	b.WriteString(BoxStyle.Render(renderHeader(c)))
	b.WriteString("\n\n")
	b.WriteString(renderPayment(&c.Payment, c.Info.TotalAmount))
	b.WriteString("\n")
	b.WriteString(renderTimeline(&c.Timeline))
	b.WriteString("\n")

	for _, clause := range c.Clauses {
		fmt.Fprintf(&b, "%s\n%s\n\n",
			ClauseTitleStyle.Render(fmt.Sprintf("제%d조 (%s)", clause.Order, clause.Title)),
			clause.Content)
	}

	b.WriteString(SubtleStyle.Render(fmt.Sprintf("생성: %s / 방식: %s / 복잡도: %s",
		c.Metadata.GeneratedAt.Format("2006-01-02 15:04"), c.Metadata.Mode, c.Metadata.Complexity)))
	b.WriteString("\n")
	return b.String()
}

func renderHeader(c *model.Contract) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("발주자:"), c.Info.Client.Name)
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("수행자:"), c.Info.Provider.Name)
	fmt.Fprintf(&b, "%s %s", BoldStyle.Render("계약 금액:"), FormatKRW(c.Info.TotalAmount))
	if c.Info.DiscountAmount > 0 {
		fmt.Fprintf(&b, " %s", SubtleStyle.Render(
			fmt.Sprintf("(정가 %s, 할인 %s)", FormatKRW(c.Info.OriginalAmount), FormatKRW(c.Info.DiscountAmount))))
	}
	return b.String()
}

func renderPayment(p *model.PaymentSchedule, total int64) string {
	var b strings.Builder
	b.WriteString(BoldStyle.Render("대금 지급"))
	b.WriteString("\n")

	rows := []struct {
		name   string
		rate   int
		amount int64
	}{
		{"착수금", p.DownRate, p.DownAmount},
		{"중도금", p.MiddleRate, p.MiddleAmt},
		{"잔금", p.FinalRate, p.FinalAmt},
	}
	for _, row := range rows {
		if row.rate == 0 {
			continue
		}
		fmt.Fprintf(&b, "  %s %d%%: %s\n", row.name, row.rate, FormatKRW(row.amount))
	}

	if drift := p.Total() - total; drift != 0 {
		fmt.Fprintf(&b, "  %s\n", SubtleStyle.Render(fmt.Sprintf("(단수 차이 %+d원)", drift)))
	}
	return b.String()
}

func renderTimeline(t *model.Timeline) string {
	var b strings.Builder
	b.WriteString(BoldStyle.Render(fmt.Sprintf("작업 일정 (총 %d일)", t.TotalDays)))
	b.WriteString("\n")
	for _, m := range t.Milestones {
		fmt.Fprintf(&b, "  %s: %d일차 ~ %d일차\n", m.Name, m.StartDay, m.EndDay)
	}
	return b.String()
}

// RenderTemplateList produces a one-line-per-template catalog listing.
func RenderTemplateList(templates []model.Template) string {
	if len(templates) == 0 {
		return WarningStyle.Render("등록된 템플릿이 없습니다.") + "\n"
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("템플릿 %d건", len(templates))))
	b.WriteString("\n")
	for _, t := range templates {
		status := SuccessStyle.Render("활성")
		if !t.Active {
			status = SubtleStyle.Render("비활성")
		}
		fmt.Fprintf(&b, "  %s  %s  [%s/%s]  조항 %d개  사용 %d회  %s\n",
			BoldStyle.Render(t.ID), t.Name, t.Category, t.Industry, len(t.Clauses), t.Popularity, status)
	}
	return b.String()
}
