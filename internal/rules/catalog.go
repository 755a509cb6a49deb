package rules

import "github.com/hansollabs/clausecraft/internal/model"

// DefaultCatalog returns the built-in tagged clause catalog used by the rule
// engine. The default trigger derivation never activates a conflicting pair;
// cl-warranty-extended is only reachable through an explicit trigger or a
// manual Add, and its conflicts with the basic warranty and the liability
// cap are declared so validation can report them.
func DefaultCatalog() []model.Clause {
	return []model.Clause{
		{
			ID:        "cl-purpose",
			Title:     "계약의 목적",
			Content:   "본 계약은 을이 갑에게 제공하는 용역의 범위, 대금 및 제반 조건을 정함을 목적으로 한다.",
			Category:  model.CategoryPurpose,
			RiskLevel: model.RiskLow,
			Order:     1,
			Essential: true,
		},
		{
			ID:        "cl-scope",
			Title:     "용역의 범위",
			Content:   "을이 수행할 용역의 구체적 범위는 견적서에 기재된 항목으로 하며, 범위 외 작업은 별도 합의로 정한다.",
			Category:  model.CategoryScope,
			RiskLevel: model.RiskMedium,
			Triggers: []string{
				"service_development", "service_design", "service_marketing",
				"service_content", "service_consulting", "service_education",
				"service_maintenance", "service_general",
			},
			Order: 2,
		},
		{
			ID:        "cl-delivery",
			Title:     "납품 및 인도",
			Content:   "을은 계약 기간 내에 결과물을 갑이 지정한 방법으로 납품한다. 납품 지연이 예상되는 경우 을은 지체 없이 갑에게 통지한다.",
			Category:  model.CategoryDelivery,
			RiskLevel: model.RiskMedium,
			Triggers:  []string{"service_development", "service_design", "service_content"},
			Order:     3,
		},
		{
			ID:        "cl-inspection",
			Title:     "검수",
			Content:   "갑은 납품일로부터 정해진 검수 기간 내에 결과물을 검수하고, 기간 내 이의가 없으면 검수가 완료된 것으로 본다.",
			Category:  model.CategoryInspection,
			RiskLevel: model.RiskMedium,
			Triggers:  []string{"service_development", TriggerBudgetOver10M},
			Order:     4,
		},
		{
			ID:        "cl-revision",
			Title:     "수정 및 보완",
			Content:   "검수 과정에서 발견된 하자에 대한 수정은 약정된 횟수 내에서 무상으로 하며, 이를 초과하는 수정은 별도 협의한다.",
			Category:  model.CategoryRevision,
			RiskLevel: model.RiskLow,
			Triggers:  []string{"service_design", "service_content"},
			Order:     5,
		},
		{
			ID:        "cl-payment",
			Title:     "대금의 지급",
			Content:   "갑은 계약 대금을 약정된 지급 일정에 따라 을이 지정한 계좌로 지급한다.",
			Category:  model.CategoryPayment,
			RiskLevel: model.RiskHigh,
			Order:     6,
			Essential: true,
		},
		{
			ID:        "cl-payment-installment",
			Title:     "분할 지급",
			Content:   "대금은 착수금, 중도금, 잔금으로 분할하여 지급하며, 각 회차의 비율과 지급 시기는 대금 지급 일정에 따른다.",
			Category:  model.CategoryPayment,
			RiskLevel: model.RiskMedium,
			Triggers:  []string{TriggerInstallment},
			Order:     7,
		},
		{
			ID:        "cl-late-fee",
			Title:     "지연손해금",
			Content:   "갑이 대금 지급을 지체한 경우 지체일수에 대하여 연 6%의 비율로 계산한 지연손해금을 가산하여 지급한다.",
			Category:  model.CategoryPayment,
			RiskLevel: model.RiskLow,
			Triggers:  []string{TriggerBudgetOver10M, TriggerLongTerm},
			Order:     8,
		},
		{
			ID:        "cl-ip",
			Title:     "지식재산권의 귀속",
			Content:   "결과물에 대한 지식재산권은 대금 완납 시 갑에게 이전된다. 다만 을이 기존에 보유한 저작물과 제3자 라이선스는 제외한다.",
			Category:  model.CategoryIP,
			RiskLevel: model.RiskHigh,
			Triggers:  []string{"service_development", "service_design", "service_content"},
			Order:     9,
		},
		{
			ID:        "cl-confidential",
			Title:     "비밀유지",
			Content:   "양 당사자는 계약 수행 과정에서 알게 된 상대방의 영업상 비밀을 계약 종료 후에도 제3자에게 누설하지 아니한다.",
			Category:  model.CategoryConfidential,
			RiskLevel: model.RiskMedium,
			Triggers:  []string{TriggerBudgetOver10M, TriggerLongTerm},
			Order:     10,
		},
		{
			ID:        "cl-warranty-basic",
			Title:     "하자보수",
			Content:   "을은 검수 완료일로부터 3개월간 결과물의 하자에 대하여 무상으로 보수한다.",
			Category:  model.CategoryWarranty,
			RiskLevel: model.RiskLow,
			Triggers:  []string{"service_development"},
			Conflicts: []string{"cl-warranty-extended"},
			Order:     11,
		},
		{
			ID:           "cl-warranty-extended",
			Title:        "연장 하자보수",
			Content:      "을은 검수 완료일로부터 12개월간 결과물의 하자에 대하여 무상으로 보수하며, 긴급 장애는 영업일 1일 이내 대응한다.",
			Category:     model.CategoryWarranty,
			RiskLevel:    model.RiskHigh,
			Triggers:     []string{"extended_warranty"},
			Conflicts:    []string{"cl-warranty-basic", "cl-liability-cap"},
			Alternatives: []string{"cl-warranty-basic"},
			Order:        12,
		},
		{
			ID:           "cl-liability-cap",
			Title:        "책임의 제한",
			Content:      "을의 손해배상 책임은 고의 또는 중과실이 없는 한 계약 대금 총액을 한도로 한다.",
			Category:     model.CategoryLiability,
			RiskLevel:    model.RiskMedium,
			Triggers:     []string{TriggerBudgetOver50M},
			Conflicts:    []string{"cl-warranty-extended"},
			Alternatives: []string{"cl-warranty-basic"},
			Order:        13,
		},
		{
			ID:        "cl-termination",
			Title:     "계약의 해제 및 해지",
			Content:   "일방 당사자가 계약상 의무를 중대하게 위반한 경우 상대방은 상당한 기간을 정하여 시정을 최고하고, 시정되지 아니하면 계약을 해제 또는 해지할 수 있다.",
			Category:  model.CategoryTermination,
			RiskLevel: model.RiskHigh,
			Order:     14,
			Essential: true,
		},
		{
			ID:        "cl-dispute",
			Title:     "분쟁의 해결",
			Content:   "계약과 관련한 분쟁은 상호 협의로 해결하되, 협의가 이루어지지 아니하면 갑의 주소지를 관할하는 법원을 제1심 관할 법원으로 한다.",
			Category:  model.CategoryDispute,
			RiskLevel: model.RiskLow,
			Triggers:  []string{TriggerBudgetOver10M},
			Order:     15,
		},
		{
			ID:        "cl-maintenance",
			Title:     "유지보수 및 운영 지원",
			Content:   "계약 기간 중 정기 점검과 장애 대응의 범위 및 절차는 별첨 운영 기준에 따르며, 계약 종료 후의 유지보수는 별도 계약으로 정한다.",
			Category:  model.CategoryGeneral,
			RiskLevel: model.RiskLow,
			Triggers:  []string{TriggerLongTerm, "service_maintenance"},
			Order:     16,
		},
	}
}
