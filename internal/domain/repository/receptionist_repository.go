package repository

import (
	"context"

	"github.com/jhoicas/Careplus-api/internal/domain/entity"
)

// ReceptionistRepository define el puerto de persistencia para Receptionist (DIP).
// Los métodos Find* devuelven (nil, nil) cuando el registro no existe.
type ReceptionistRepository interface {
	FindByID(ctx context.Context, id int) (*entity.Receptionist, error)
	FindByNumber(ctx context.Context, number string) (*entity.Receptionist, error)
	FindAll(ctx context.Context) ([]*entity.Receptionist, error)
	FindByNameContainingIgnoreCase(ctx context.Context, name string) ([]*entity.Receptionist, error)
	ExistsByNumber(ctx context.Context, number string) (bool, error)
	// Save inserta si ID es 0 y actualiza en otro caso; devuelve la entidad con el ID asignado.
	Save(ctx context.Context, r *entity.Receptionist) (*entity.Receptionist, error)
	Delete(ctx context.Context, r *entity.Receptionist) error
}
