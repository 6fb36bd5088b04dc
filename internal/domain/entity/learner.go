package entity

import "time"

// Learner persona inscrita en una TrainingClass. Completed nunca vuelve a false.
type Learner struct {
	ID         string
	TrainingID string
	Name       string
	Completed  bool
	CreatedAt  time.Time
}
