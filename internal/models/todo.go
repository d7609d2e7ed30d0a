package models

// Todo is a single task. TargetDate ("YYYY-MM-DD") buckets the task into
// today/tomorrow/backlog views.
type Todo struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Completed  bool   `json:"completed"`
	CreatedAt  int64  `json:"createdAt"`
	UpdatedAt  int64  `json:"updatedAt"`
	TargetDate string `json:"targetDate"`
	Deleted    bool   `json:"deleted,omitempty"`
}

// EffectiveTime returns UpdatedAt when set, otherwise CreatedAt.
func (t Todo) EffectiveTime() int64 {
	if t.UpdatedAt != 0 {
		return t.UpdatedAt
	}
	return t.CreatedAt
}
