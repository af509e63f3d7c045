package dto

// CourseSpec is the write shape of one academic course entry.
type CourseSpec struct {
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	DisplayName string   `json:"displayName"`
	Years       []int    `json:"years"`
	Branches    []string `json:"branches"`
}

// ReplaceConfigRequest replaces the whole academic configuration.
type ReplaceConfigRequest struct {
	Courses []CourseSpec `json:"courses" binding:"required"`
}
