package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Careplus-api/internal/application/ports"
	"github.com/jhoicas/Careplus-api/internal/domain/repository"
)

// RosterUseCase genera el listado imprimible (PDF) de recepcionistas.
type RosterUseCase struct {
	repo      repository.ReceptionistRepository
	generator ports.RosterPDFGenerator
	now       func() time.Time
}

// NewRosterUseCase construye el caso de uso inyectando el repositorio y el generador PDF.
func NewRosterUseCase(repo repository.ReceptionistRepository, generator ports.RosterPDFGenerator) *RosterUseCase {
	return &RosterUseCase{repo: repo, generator: generator, now: time.Now}
}

// ExportPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *RosterUseCase) ExportPDF(ctx context.Context) (pdfBytes []byte, filename string, err error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("roster: listar recepcionistas: %w", err)
	}
	pdfBytes, err = uc.generator.GenerateRosterPDF(ctx, list)
	if err != nil {
		return nil, "", fmt.Errorf("roster: generar pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("receptionists_%s.pdf", uc.now().Format("20060102")), nil
}
