package memory

import "github.com/jhoicas/TrainOps-api/internal/domain"

// table colección ordenada por inserción. Las lecturas devuelven copias.
type table[T any] struct {
	rows  map[string]*T
	order []string
	copy  func(*T) *T
}

func newTable[T any](cp func(*T) *T) *table[T] {
	return &table[T]{rows: make(map[string]*T), copy: cp}
}

func (t *table[T]) clone() *table[T] {
	out := &table[T]{
		rows:  make(map[string]*T, len(t.rows)),
		order: make([]string, len(t.order)),
		copy:  t.copy,
	}
	copy(out.order, t.order)
	for id, row := range t.rows {
		out.rows[id] = t.copy(row)
	}
	return out
}

func (t *table[T]) insert(id string, row *T) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if _, ok := t.rows[id]; ok {
		return domain.ErrDuplicate
	}
	t.rows[id] = t.copy(row)
	t.order = append(t.order, id)
	return nil
}

func (t *table[T]) get(id string) *T {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	return t.copy(row)
}

func (t *table[T]) put(id string, row *T) error {
	if _, ok := t.rows[id]; !ok {
		return domain.ErrNotFound
	}
	t.rows[id] = t.copy(row)
	return nil
}

func (t *table[T]) list() []*T {
	out := make([]*T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.copy(t.rows[id]))
	}
	return out
}

// find devuelve la primera fila (en orden de inserción) que cumple match.
func (t *table[T]) find(match func(*T) bool) *T {
	for _, id := range t.order {
		if row := t.rows[id]; match(row) {
			return t.copy(row)
		}
	}
	return nil
}

func (t *table[T]) values() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.copy(t.rows[id]))
	}
	return out
}
