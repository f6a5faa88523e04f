package canvas

import "time"

// Course is one course record from /api/v1/courses, including the
// sub-resources the course query asks for.
type Course struct {
	ID                     int64        `json:"id"`
	Name                   string       `json:"name"`
	CourseCode             string       `json:"course_code"`
	AccountID              int64        `json:"account_id"`
	UUID                   string       `json:"uuid"`
	WorkflowState          string       `json:"workflow_state"`
	DefaultView            string       `json:"default_view"`
	StartAt                *time.Time   `json:"start_at"`
	EndAt                  *time.Time   `json:"end_at"`
	CreatedAt              time.Time    `json:"created_at"`
	SyllabusBody           *string      `json:"syllabus_body,omitempty"`
	NeedsGradingCount      *int         `json:"needs_grading_count,omitempty"`
	EnrollmentTermID       int64        `json:"enrollment_term_id"`
	IsFavorite             bool         `json:"is_favorite"`
	Position               *int         `json:"position,omitempty"`
	ImageDownloadURL       *string      `json:"image_download_url,omitempty"`
	BannerImageDownloadURL *string      `json:"banner_image_download_url,omitempty"`
	Enrollments            []Enrollment `json:"enrollments,omitempty"`
	Term                   *Term        `json:"term,omitempty"`
}

// Enrollment is the caller's enrollment in a course, with the computed
// score fields the total_scores include adds.
type Enrollment struct {
	Type                 string   `json:"type"`
	Role                 string   `json:"role"`
	EnrollmentState      string   `json:"enrollment_state"`
	ComputedCurrentScore *float64 `json:"computed_current_score,omitempty"`
	ComputedCurrentGrade *string  `json:"computed_current_grade,omitempty"`
	ComputedFinalScore   *float64 `json:"computed_final_score,omitempty"`
	ComputedFinalGrade   *string  `json:"computed_final_grade,omitempty"`
}

// Term is an enrollment term.
type Term struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	StartAt *time.Time `json:"start_at"`
	EndAt   *time.Time `json:"end_at"`
}
