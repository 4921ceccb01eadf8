package milestones

// Template is one fixed milestone offset from the conference start date.
type Template struct {
	Key          string
	Name         string
	RelativeDays int
}

// TaskTemplate is one entry of the default task backlog.
type TaskTemplate struct {
	Group string
	Name  string
}

var DefaultTemplate = []Template{
	{Key: "M_90", Name: "(D-90) 1차 조직위원회/업무분장/등록비·일정 초안 확정", RelativeDays: -90},
	{Key: "M_80", Name: "(D-80) 안내문/CFP 문구 확정(메일링 준비)", RelativeDays: -80},
	{Key: "M_70", Name: "(D-70) 학술대회 홈페이지 구축/오픈", RelativeDays: -70},
	{Key: "M_60", Name: "(D-60) 2차 조직위(연사 확정/진행점검)", RelativeDays: -60},
	{Key: "M_45", Name: "(D-45) 발표신청 마감(필요시 연장 공지)", RelativeDays: -45},
	{Key: "M_38", Name: "(D-38) 원문 마감 + 발표자 사전등록(발표신청+1주)", RelativeDays: -38},
	{Key: "M_37", Name: "(D-37) 현장 답사(원문 마감 후 1주 내)", RelativeDays: -37},
	{Key: "M_30", Name: "(D-30) 수정본 제출 + 일반 사전등록 마감", RelativeDays: -30},
	{Key: "M_25", Name: "(D-25) 논문번호 부여", RelativeDays: -25},
	{Key: "M_20A", Name: "(D-20) 프로그램 작업 시작(리스트/파일 정합)", RelativeDays: -20},
	{Key: "M_20B", Name: "(D-20) 3차 조직위(세션/좌장/인쇄부수 확정)", RelativeDays: -20},
	{Key: "M_7A", Name: "(D-7) 논문집 인쇄 완료", RelativeDays: -7},
	{Key: "M_7B", Name: "(D-7) 물품/운영 점검(명찰·결제기·좌장평가표 등)", RelativeDays: -7},
	{Key: "M_0", Name: "(D-day) 행사 개최", RelativeDays: 0},
	{Key: "P_+7", Name: "(D+7) 현장등록 리스트/정산 착수", RelativeDays: 7},
	{Key: "P_+30", Name: "(D+30) 우수논문 추천 + 결산/결과보고 제출", RelativeDays: 30},
}

var DefaultTasks = []TaskTemplate{
	{Group: "PLAN", Name: "조직위원회 구성/업무분장 확정"},
	{Group: "CFP_PR", Name: "CFP 초안 작성/검토"},
	{Group: "CFP_PR", Name: "CFP 메일링/홍보 발송"},
	{Group: "PAPER", Name: "발표신청/접수 현황 점검"},
	{Group: "PROGRAM", Name: "세션 구성안 작성"},
	{Group: "PROGRAM", Name: "좌장 후보 리스트업 및 연락"},
	{Group: "PROCEEDINGS", Name: "논문번호 부여 규칙 확정"},
	{Group: "PROCEEDINGS", Name: "논문집 인쇄/출판 진행"},
	{Group: "SPONSOR_EXHIBIT", Name: "후원사/전시업체 섭외 시작"},
	{Group: "OPS_ONSITE", Name: "현장 물품 리스트업(명찰/결제기/평가표 등)"},
	{Group: "STAFF_HELPER", Name: "도우미 섭외 및 사전교육"},
	{Group: "FINANCE", Name: "등록비/예산안 작성"},
	{Group: "POST", Name: "사후 결과보고/결산 템플릿 준비"},
}
