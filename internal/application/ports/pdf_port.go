package ports

import (
	"context"

	"github.com/jhoicas/Careplus-api/internal/domain/entity"
)

// RosterPDFGenerator define el puerto de salida para generar el listado imprimible
// de recepcionistas. El adaptador concreto vive en infrastructure/pdf.
type RosterPDFGenerator interface {
	GenerateRosterPDF(ctx context.Context, receptionists []*entity.Receptionist) ([]byte, error)
}
