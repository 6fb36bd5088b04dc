package entity

import "time"

// Estados de TrainingClass.
const (
	TrainingStatusConfirmed = "Confirmed"
	TrainingStatusOngoing   = "Ongoing"
	TrainingStatusCompleted = "Completed"
)

// Classrooms aulas físicas disponibles.
var Classrooms = []string{"1", "2", "3", "4"}

// IsValidClassroom indica si el aula existe.
func IsValidClassroom(room string) bool {
	for _, c := range Classrooms {
		if c == room {
			return true
		}
	}
	return false
}

// TrainingClass impartición programada de un curso para un Deal pagado.
type TrainingClass struct {
	ID         string
	DealID     string
	CourseName string
	TrainerID  string
	Classroom  string
	Hours      int
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	CreatedAt  time.Time
}

// IsPlanned indica si la clase aún no ha empezado.
func (t *TrainingClass) IsPlanned() bool {
	return t.Status == TrainingStatusConfirmed
}
