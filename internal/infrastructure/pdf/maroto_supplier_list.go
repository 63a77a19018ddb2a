// Package pdf implementa la exportación en PDF del maestro de proveedores.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Teléfono | Email | Cupo de crédito         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de proveedores activos                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Maestros-api/internal/application/usecase"
	"github.com/jhoicas/Maestros-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.SupplierPDFGenerator = (*MarotoListGenerator)(nil)

// MarotoListGenerator implementa usecase.SupplierPDFGenerator usando Maroto v2.
type MarotoListGenerator struct{}

// NewMarotoListGenerator construye el generador.
func NewMarotoListGenerator() *MarotoListGenerator { return &MarotoListGenerator{} }

// GenerateSupplierListPDF genera el listado y devuelve sus bytes.
func (g *MarotoListGenerator) GenerateSupplierListPDF(suppliers []*entity.Supplier, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Maestro de proveedores", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, s := range suppliers {
		m.AddRows(supplierRow(s))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(suppliers)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF de proveedores: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Maestro de proveedores", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("2006-01-02 15:04 MST"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Size: 9, Style: fontstyle.Bold, Color: colorPrimary}
	return row.New(7).Add(
		col.New(4).Add(text.New("Nombre", header)),
		col.New(3).Add(text.New("Teléfono", header)),
		col.New(3).Add(text.New("Email", header)),
		col.New(2).Add(text.New("Cupo", props.Text{
			Size: 9, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right,
		})),
	)
}

func supplierRow(s *entity.Supplier) core.Row {
	cell := props.Text{Size: 8}
	return row.New(6).Add(
		col.New(4).Add(text.New(s.Name, cell)),
		col.New(3).Add(text.New(s.Phone, cell)),
		col.New(3).Add(text.New(s.Email, cell)),
		col.New(2).Add(text.New(s.CreditLimit.StringFixed(2), props.Text{
			Size: 8, Align: align.Right,
		})),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Proveedores activos: %d", total), props.Text{
				Size: 8, Color: colorGray,
			}),
		),
	)
}
