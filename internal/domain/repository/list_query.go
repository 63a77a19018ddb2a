package repository

// ListQuery parámetros ya saneados para listados paginados.
// SortField llega validado contra el allow-list de columnas ordenables de cada
// entidad (nunca se reenvía un valor arbitrario del caller al ORDER BY).
type ListQuery struct {
	Search    string // substring case-insensitive sobre el campo nombre de la entidad
	SortField string
	SortDesc  bool
	Limit     int
	Offset    int
}
