package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Maestros-api/pkg/clock"
)

// El reloj civil siempre devuelve instantes en UTC, sin importar la zona del
// instante de entrada.
func TestClock_Now_SiempreUTC(t *testing.T) {
	bogota, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	// 2024-03-15 10:30 hora de Bogotá (UTC-5) == 15:30 UTC
	instant := time.Date(2024, 3, 15, 10, 30, 0, 0, bogota)
	clk, err := clock.NewFixed("America/Bogota", instant)
	require.NoError(t, err)

	now := clk.Now()
	assert.Equal(t, time.UTC, now.Location(), "Now debe devolver UTC")
	assert.Equal(t, time.Date(2024, 3, 15, 15, 30, 0, 0, time.UTC), now)
}

// Dos relojes con la misma zona y el mismo instante de entrada producen el mismo
// instante UTC aunque el instante llegue expresado en zonas distintas.
func TestClock_Now_IndependienteDeLaZonaDelServidor(t *testing.T) {
	utcInstant := time.Date(2024, 7, 1, 3, 0, 0, 0, time.UTC)

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	clkA, err := clock.NewFixed("America/Bogota", utcInstant)
	require.NoError(t, err)
	clkB, err := clock.NewFixed("America/Bogota", utcInstant.In(tokyo))
	require.NoError(t, err)

	assert.True(t, clkA.Now().Equal(clkB.Now()),
		"el instante UTC no debe depender de la zona en que llegue el time.Time")
}

func TestClock_New_ZonaInvalida(t *testing.T) {
	_, err := clock.New("America/Ciudad_Inexistente")
	assert.Error(t, err, "una zona desconocida debe fallar al construir el reloj")
}

func TestClock_Location(t *testing.T) {
	clk, err := clock.New("America/Bogota")
	require.NoError(t, err)
	assert.Equal(t, "America/Bogota", clk.Location().String())
}
