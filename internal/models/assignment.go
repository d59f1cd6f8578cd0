package models

import "time"

// Assignment (Ödev) — работа внутри курса.
// OrderIndex уникален в пределах своего курса, начинается с 1 и никогда
// не перенумеровывается после удалений.
type Assignment struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}

// AssignmentPatch — частичное обновление. nil-поле не трогается.
// CourseID и OrderIndex через патч не меняются.
type AssignmentPatch struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
}
