package types

// RejectReason 表示简历被拒绝的机器可读原因码
type RejectReason string

const (
	// ReasonExtractionFailed 两种文本提取策略均失败
	ReasonExtractionFailed RejectReason = "TEXT_EXTRACTION_FAILED"
	// ReasonNotResumeOfficialDoc 文档命中官方信函（offer/录用函等）特征
	ReasonNotResumeOfficialDoc RejectReason = "NOT_A_RESUME_OFFICIAL_DOC"
	// ReasonInsufficientSignal 简历特征词过少
	ReasonInsufficientSignal RejectReason = "INSUFFICIENT_RESUME_SIGNAL"
	// ReasonMissingSections 缺失的预期章节过多
	ReasonMissingSections RejectReason = "MISSING_TOO_MANY_SECTIONS"
	// ReasonProcessingError 分析过程中发生未预期的内部错误
	ReasonProcessingError RejectReason = "PROCESSING_ERROR"
)

// RejectCategory 拒绝类别，对应对外响应的type字段
type RejectCategory string

const (
	// CategoryUnreadable 文档不可读（损坏/加密）
	CategoryUnreadable RejectCategory = "unreadable"
	// CategoryNotResume 文档不像简历
	CategoryNotResume RejectCategory = "not-a-resume"
	// CategoryMissingSections 简历缺失关键章节
	CategoryMissingSections RejectCategory = "missing-sections"
	// CategoryProcessing 内部处理错误
	CategoryProcessing RejectCategory = "processing-error"
)

// ClassificationVerdict 分类器的终态结论，每份文档只计算一次
type ClassificationVerdict struct {
	Accepted bool            // 是否通过简历分类
	Sections map[string]bool // 章节存在性映射，仅Accepted时有意义
	Reason   RejectReason    // 拒绝原因码，仅!Accepted时有意义
	Message  string          // 面向用户的拒绝消息
}

// ContactInfo 联系方式。各字段要么是通过校验的高置信值，要么为空，绝不输出猜测的残缺值
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// AnalysisResult 一次分析调用的聚合结果，产出后不可变
type AnalysisResult struct {
	CandidateName string          `json:"candidate_name"`
	Contact       ContactInfo     `json:"contact_info"`
	Skills        []string        `json:"skills"`     // 去重后的展示形式，上限12
	Education     string          `json:"education"`  // 教育章节文本
	Experience    string          `json:"experience"` // 工作经历章节文本
	Projects      []string        `json:"projects"`   // 项目名列表，上限3
	Sections      map[string]bool `json:"sections_found"`
	FullText      string          `json:"full_text"`
	Summary       string          `json:"summary"`
}

// Rejection 对外的拒绝结果
type Rejection struct {
	Reason   RejectReason   `json:"reason"`
	Category RejectCategory `json:"category"`
	Message  string         `json:"message"`
}

// AnalysisReport 分析调用的最终产出：要么携带Rejection，要么携带Result与10个问题
type AnalysisReport struct {
	Rejection *Rejection      `json:"rejection,omitempty"`
	Result    *AnalysisResult `json:"result,omitempty"`
	Questions []string        `json:"questions,omitempty"` // 恒为10条，按类别分组顺序排列
}

// IsValid 是否为接受结果
func (r *AnalysisReport) IsValid() bool {
	return r.Rejection == nil && r.Result != nil
}
