package types

// SectionKind 表示简历章节类型
type SectionKind string

const (
	// SectionWorkExperience 工作经历章节
	SectionWorkExperience SectionKind = "WORK_EXPERIENCE"
	// SectionEducation 教育经历章节
	SectionEducation SectionKind = "EDUCATION"
	// SectionSkills 技能章节
	SectionSkills SectionKind = "SKILLS"
	// SectionSummary 个人总结/求职目标章节
	SectionSummary SectionKind = "SUMMARY"
	// SectionProjects 项目经历章节（仅用于边界识别）
	SectionProjects SectionKind = "PROJECTS"
	// SectionCertifications 证书章节（仅用于边界识别）
	SectionCertifications SectionKind = "CERTIFICATIONS"
)

// Address 地址信息，各字段均可为空
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
}

// PersonalInfo 个人联系信息
type PersonalInfo struct {
	FirstName    string   `json:"first_name,omitempty"`
	LastName     string   `json:"last_name,omitempty"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Address      *Address `json:"address,omitempty"`
	LinkedInURL  string   `json:"linkedin_url,omitempty"`
	PortfolioURL string   `json:"portfolio_url,omitempty"`
}

// HasName 是否提取到了姓名
func (p *PersonalInfo) HasName() bool {
	return p.FirstName != "" || p.LastName != ""
}

// WorkExperienceEntry 一段工作经历
// StartDate/EndDate 使用规范化的 "MM/YYYY" 形式
type WorkExperienceEntry struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	IsCurrent    bool     `json:"is_current"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// EducationEntry 一段教育经历
type EducationEntry struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	FieldOfStudy   string `json:"field_of_study,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
	Honors         string `json:"honors,omitempty"`
}

// ConfidenceScores 各类别的置信度评分，取值范围 [0, 高置信度上限]
type ConfidenceScores struct {
	PersonalInfo   float64 `json:"personal_info"`
	WorkExperience float64 `json:"work_experience"`
	Education      float64 `json:"education"`
	Skills         float64 `json:"skills"`
}

// ExtractedProfileData 管道产出的结构化档案
// 每次调用管道都会生成一份全新的实例，不在调用之间共享状态
type ExtractedProfileData struct {
	PersonalInfo   *PersonalInfo          `json:"personal_info,omitempty"`
	WorkExperience []*WorkExperienceEntry `json:"work_experience,omitempty"`
	Education      []*EducationEntry      `json:"education,omitempty"`
	Skills         []string               `json:"skills,omitempty"`
	Confidence     ConfidenceScores       `json:"confidence"`
}

// ExtractionMetadata 上游文本提取后端附带的元数据
type ExtractionMetadata struct {
	// SourceFormat 来源文件格式，例如 "pdf"、"docx"、"txt"
	SourceFormat string `json:"source_format,omitempty"`
	// PageCount PDF后端报告的页数，0表示未知
	PageCount int `json:"page_count,omitempty"`
	// Warnings DOCX后端报告的非致命结构告警
	Warnings []string `json:"warnings,omitempty"`
	// TextLength 提取文本的字符数
	TextLength int `json:"text_length,omitempty"`
}
