package clock

import (
	"fmt"
	"time"
)

// Clock produce el "ahora" normalizado a una zona civil fija y convertido a UTC
// antes de persistir. Así los cortes de día son consistentes sin importar el TZ
// del servidor donde corra el proceso.
type Clock struct {
	loc *time.Location
	now func() time.Time // inyectable en tests
}

// New carga la zona horaria civil (ej. "America/Bogota"). Falla si la zona no existe
// en la base tzdata del sistema.
func New(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("cargar zona horaria %q: %w", timezone, err)
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// NewFixed construye un reloj que siempre devuelve el instante dado (para tests).
func NewFixed(timezone string, instant time.Time) (*Clock, error) {
	c, err := New(timezone)
	if err != nil {
		return nil, err
	}
	c.now = func() time.Time { return instant }
	return c, nil
}

// Now devuelve el instante actual: hora civil en la zona configurada, convertida a UTC.
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc).UTC()
}

// Location devuelve la zona civil configurada.
func (c *Clock) Location() *time.Location {
	return c.loc
}
