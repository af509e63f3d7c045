package models

// Course defines one entry of the academic configuration, based on the
// 'courses' table. Code is the normalized lowercase identifier that
// students and products reference by their course fields.
type Course struct {
	ID          int64    `json:"id" db:"id"`
	Code        string   `json:"name" db:"code"`
	DisplayName string   `json:"displayName" db:"display_name"`
	Years       []int    `json:"years" db:"years"`
	Branches    []string `json:"branches" db:"branches"`
	Position    int      `json:"-" db:"position"`
}

// AcademicConfig is the read shape of the academic configuration: the
// ordered course list. The storage is the 'courses' table, so the
// "lazily created singleton" of the source degenerates to an empty list.
type AcademicConfig struct {
	Courses []*Course `json:"courses"`
}
