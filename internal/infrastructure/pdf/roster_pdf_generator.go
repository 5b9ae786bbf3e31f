// Package pdf implementa el listado imprimible de recepcionistas (A4):
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: CarePlus + título │ fecha + total    │
//	│  ──────────────────────────────────────────  │
//	│  TABLA: ID | Nombre | Número                 │
//	└──────────────────────────────────────────────┘
//
// El password nunca se imprime.
package pdf

import (
	"context"
	"fmt"
	"strconv"
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

	"github.com/jhoicas/Careplus-api/internal/application/ports"
	"github.com/jhoicas/Careplus-api/internal/domain/entity"
)

var _ ports.RosterPDFGenerator = (*MarotoRosterGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 22, Green: 128, Blue: 61}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoRosterGenerator implementa ports.RosterPDFGenerator usando Maroto v2.
type MarotoRosterGenerator struct {
	title string
	now   func() time.Time
}

// NewMarotoRosterGenerator construye el generador; title aparece en la cabecera.
func NewMarotoRosterGenerator(title string) *MarotoRosterGenerator {
	return &MarotoRosterGenerator{title: title, now: time.Now}
}

// GenerateRosterPDF genera el PDF y devuelve sus bytes.
func (g *MarotoRosterGenerator) GenerateRosterPDF(_ context.Context, receptionists []*entity.Receptionist) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Receptionists", true).
		WithAuthor(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(len(receptionists)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))
	for _, r := range tableRows(receptionists) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoRosterGenerator) headerRow(total int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Receptionist roster", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+g.now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Total: "+strconv.Itoa(total), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 2, align.Center),
		h("Name", 6, align.Left),
		h("Number", 4, align.Left),
	)
}

// tableRows una fila por recepcionista; si no hay, una fila con aviso.
func tableRows(receptionists []*entity.Receptionist) []core.Row {
	if len(receptionists) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("No receptionists registered.", props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: colorGray,
			}),
		))}
	}
	result := make([]core.Row, 0, len(receptionists))
	for _, r := range receptionists {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(strconv.Itoa(r.ID), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(text.New(r.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(4).Add(text.New(r.Number, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		))
	}
	return result
}
