package memory

import (
	"github.com/jhoicas/TrainOps-api/internal/domain"
	"github.com/jhoicas/TrainOps-api/internal/domain/entity"
	"github.com/jhoicas/TrainOps-api/internal/domain/repository"
)

var _ repository.TrainingRepository = (*TrainingRepo)(nil)

// TrainingRepo implementación en memoria de TrainingRepository (clases y alumnos).
type TrainingRepo struct {
	st *state
}

// Create persiste una clase. Rechaza una segunda clase para el mismo deal.
func (r *TrainingRepo) Create(class *entity.TrainingClass) error {
	if existing, _ := r.GetByDealID(class.DealID); existing != nil {
		return domain.ErrDuplicate
	}
	return r.st.trainings.insert(class.ID, class)
}

// GetByID obtiene una clase por ID; nil si no existe.
func (r *TrainingRepo) GetByID(id string) (*entity.TrainingClass, error) {
	return r.st.trainings.get(id), nil
}

// GetByDealID devuelve la clase del deal, o nil.
func (r *TrainingRepo) GetByDealID(dealID string) (*entity.TrainingClass, error) {
	return r.st.trainings.find(func(t *entity.TrainingClass) bool { return t.DealID == dealID }), nil
}

// Update reemplaza la clase.
func (r *TrainingRepo) Update(class *entity.TrainingClass) error {
	return r.st.trainings.put(class.ID, class)
}

// List lista clases en orden de creación.
func (r *TrainingRepo) List() ([]*entity.TrainingClass, error) {
	return r.st.trainings.list(), nil
}

// CreateLearner persiste un alumno inscrito.
func (r *TrainingRepo) CreateLearner(learner *entity.Learner) error {
	return r.st.learners.insert(learner.ID, learner)
}

// GetLearnerByID obtiene un alumno por ID; nil si no existe.
func (r *TrainingRepo) GetLearnerByID(id string) (*entity.Learner, error) {
	return r.st.learners.get(id), nil
}

// UpdateLearner reemplaza el alumno.
func (r *TrainingRepo) UpdateLearner(learner *entity.Learner) error {
	return r.st.learners.put(learner.ID, learner)
}

// ListLearners lista los alumnos de una clase.
func (r *TrainingRepo) ListLearners(trainingID string) ([]*entity.Learner, error) {
	var out []*entity.Learner
	for _, l := range r.st.learners.list() {
		if l.TrainingID == trainingID {
			out = append(out, l)
		}
	}
	return out, nil
}
