package pets

// Kinds usadas por el cargador de demo. Cualquier otro string es válido.
const (
	KindDog = "dog"
	KindCat = "cat"
)

// Pet es el único registro del servicio.
// El ID lo asigna el store al crear; nunca viene del cliente.
type Pet struct {
	ID   int64
	Name string
	Kind string // a.k.a. category
}
