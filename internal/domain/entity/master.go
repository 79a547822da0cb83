package entity

// Master profesional del salón que atiende las citas.
type Master struct {
	ID    int64
	Name  string
	Phone string
	Email string
}
