package model

// TrainingType is one entry of the closed catalog of session categories. It
// doubles as a trainer's specialization reference.
type TrainingType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
