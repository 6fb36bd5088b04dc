package dto

// ErrorResponse cuerpo de error HTTP.
// ConflictingClassID y ConflictKind solo se informan en conflictos de programación.
type ErrorResponse struct {
	Code               string            `json:"code"`
	Message            string            `json:"message"`
	ConflictingClassID string            `json:"conflicting_class_id,omitempty"`
	ConflictKind       string            `json:"conflict_kind,omitempty"`
	Details            map[string]string `json:"details,omitempty"`
}

// DateLayout formato de fecha de los cuerpos JSON (YYYY-MM-DD).
const DateLayout = "2006-01-02"
