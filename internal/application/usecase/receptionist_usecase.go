package usecase

import (
	"context"
	"strconv"

	"github.com/jhoicas/Careplus-api/internal/application/dto"
	"github.com/jhoicas/Careplus-api/internal/domain"
	"github.com/jhoicas/Careplus-api/internal/domain/entity"
	"github.com/jhoicas/Careplus-api/internal/domain/repository"
)

// LoginSuccessMessage mensaje fijo de login exitoso.
const LoginSuccessMessage = "Login successful"

// ReceptionistUseCase casos de uso para recepcionistas: login y CRUD.
// No guarda estado; cada llamada va directo al repositorio.
type ReceptionistUseCase struct {
	repo repository.ReceptionistRepository
}

// NewReceptionistUseCase construye el caso de uso con el puerto de persistencia.
func NewReceptionistUseCase(repo repository.ReceptionistRepository) *ReceptionistUseCase {
	return &ReceptionistUseCase{repo: repo}
}

// Login busca por id si identifier es un entero de 32 bits; si no, por number.
// Devuelve domain.ErrUnauthorized tanto si no existe como si el password no coincide.
func (uc *ReceptionistUseCase) Login(ctx context.Context, in dto.ReceptionistLoginRequest) (*dto.ReceptionistLoginResponse, error) {
	var (
		rec *entity.Receptionist
		err error
	)
	identifier := string(in.Identifier)
	if id, parseErr := strconv.ParseInt(identifier, 10, 32); parseErr == nil {
		rec, err = uc.repo.FindByID(ctx, int(id))
	} else {
		rec, err = uc.repo.FindByNumber(ctx, identifier)
	}
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Password != in.Password {
		return nil, domain.ErrUnauthorized
	}
	return &dto.ReceptionistLoginResponse{Message: LoginSuccessMessage, Name: rec.Name}, nil
}

// List devuelve todos los recepcionistas.
func (uc *ReceptionistUseCase) List(ctx context.Context) ([]dto.ReceptionistResponse, error) {
	list, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toReceptionistResponses(list), nil
}

// GetByID obtiene un recepcionista por ID. Devuelve domain.ErrReceptionistNotFound si no existe.
func (uc *ReceptionistUseCase) GetByID(ctx context.Context, id int) (*dto.ReceptionistResponse, error) {
	rec, err := uc.findExisting(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReceptionistResponse(rec), nil
}

// SearchByName busca por subcadena del nombre sin distinguir mayúsculas.
func (uc *ReceptionistUseCase) SearchByName(ctx context.Context, name string) ([]dto.ReceptionistResponse, error) {
	list, err := uc.repo.FindByNameContainingIgnoreCase(ctx, name)
	if err != nil {
		return nil, err
	}
	return toReceptionistResponses(list), nil
}

// Create valida que el number no exista y persiste. Devuelve domain.ErrDuplicate si ya existe.
// La verificación y el insert no son atómicos.
func (uc *ReceptionistUseCase) Create(ctx context.Context, in dto.ReceptionistRequest) (*dto.ReceptionistResponse, error) {
	exists, err := uc.repo.ExistsByNumber(ctx, in.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	saved, err := uc.repo.Save(ctx, &entity.Receptionist{
		Name:     in.Name,
		Number:   in.Number,
		Password: in.Password,
	})
	if err != nil {
		return nil, err
	}
	return toReceptionistResponse(saved), nil
}

// Update sobrescribe name, number y password del recepcionista existente.
func (uc *ReceptionistUseCase) Update(ctx context.Context, id int, in dto.ReceptionistRequest) error {
	rec, err := uc.findExisting(ctx, id)
	if err != nil {
		return err
	}
	rec.Name = in.Name
	rec.Number = in.Number
	rec.Password = in.Password
	_, err = uc.repo.Save(ctx, rec)
	return err
}

// Delete elimina un recepcionista existente.
func (uc *ReceptionistUseCase) Delete(ctx context.Context, id int) error {
	rec, err := uc.findExisting(ctx, id)
	if err != nil {
		return err
	}
	return uc.repo.Delete(ctx, rec)
}

func (uc *ReceptionistUseCase) findExisting(ctx context.Context, id int) (*entity.Receptionist, error) {
	rec, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrReceptionistNotFound
	}
	return rec, nil
}

func toReceptionistResponse(r *entity.Receptionist) *dto.ReceptionistResponse {
	if r == nil {
		return nil
	}
	return &dto.ReceptionistResponse{
		ID:       r.ID,
		Name:     r.Name,
		Number:   r.Number,
		Password: r.Password,
	}
}

func toReceptionistResponses(list []*entity.Receptionist) []dto.ReceptionistResponse {
	items := make([]dto.ReceptionistResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReceptionistResponse(r))
	}
	return items
}
