package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Careplus-api/internal/domain"
	"github.com/jhoicas/Careplus-api/internal/domain/entity"
	"github.com/jhoicas/Careplus-api/internal/domain/repository"
)

var _ repository.ReceptionistRepository = (*ReceptionistRepo)(nil)

const receptionistColumns = `id, name, number, password`

// ReceptionistRepo implementación del puerto ReceptionistRepository sobre PostgreSQL (usable con pool o tx).
type ReceptionistRepo struct {
	q Querier
}

// NewReceptionistRepository construye el adaptador de persistencia. Pasar pool o tx (Querier).
func NewReceptionistRepository(q Querier) *ReceptionistRepo {
	return &ReceptionistRepo{q: q}
}

// FindByID obtiene un recepcionista por ID.
func (r *ReceptionistRepo) FindByID(ctx context.Context, id int) (*entity.Receptionist, error) {
	query := `SELECT ` + receptionistColumns + ` FROM receptionists WHERE id = $1`
	rec, err := scanReceptionist(r.q.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get receptionist by id: %w", err)
	}
	return rec, nil
}

// FindByNumber obtiene un recepcionista por number. Si hubiera duplicados devuelve el de menor id.
func (r *ReceptionistRepo) FindByNumber(ctx context.Context, number string) (*entity.Receptionist, error) {
	query := `SELECT ` + receptionistColumns + ` FROM receptionists WHERE number = $1 ORDER BY id LIMIT 1`
	rec, err := scanReceptionist(r.q.QueryRow(ctx, query, number))
	if err != nil {
		return nil, fmt.Errorf("get receptionist by number: %w", err)
	}
	return rec, nil
}

// FindAll lista todos los recepcionistas ordenados por id.
func (r *ReceptionistRepo) FindAll(ctx context.Context) ([]*entity.Receptionist, error) {
	query := `SELECT ` + receptionistColumns + ` FROM receptionists ORDER BY id`
	return r.list(ctx, "list receptionists", query)
}

// FindByNameContainingIgnoreCase busca por subcadena del nombre. Los comodines de LIKE no aplican.
func (r *ReceptionistRepo) FindByNameContainingIgnoreCase(ctx context.Context, name string) ([]*entity.Receptionist, error) {
	query := `SELECT ` + receptionistColumns + ` FROM receptionists WHERE strpos(lower(name), lower($1)) > 0 ORDER BY id`
	return r.list(ctx, "search receptionists", query, name)
}

// ExistsByNumber indica si ya hay un recepcionista con ese number.
func (r *ReceptionistRepo) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM receptionists WHERE number = $1)`, number).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists receptionist by number: %w", err)
	}
	return exists, nil
}

// Save inserta (ID == 0) o actualiza el recepcionista. En el insert asigna el ID generado.
func (r *ReceptionistRepo) Save(ctx context.Context, rec *entity.Receptionist) (*entity.Receptionist, error) {
	if rec.ID == 0 {
		query := `
		INSERT INTO receptionists (name, number, password)
		VALUES ($1, $2, $3)
		RETURNING id`
		if err := r.q.QueryRow(ctx, query, rec.Name, rec.Number, rec.Password).Scan(&rec.ID); err != nil {
			return nil, translateWriteError("insert receptionist", err)
		}
		return rec, nil
	}
	query := `
		UPDATE receptionists SET name = $2, number = $3, password = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, rec.ID, rec.Name, rec.Number, rec.Password)
	if err != nil {
		return nil, translateWriteError("update receptionist", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrReceptionistNotFound
	}
	return rec, nil
}

// Delete elimina el recepcionista por su ID.
func (r *ReceptionistRepo) Delete(ctx context.Context, rec *entity.Receptionist) error {
	_, err := r.q.Exec(ctx, `DELETE FROM receptionists WHERE id = $1`, rec.ID)
	if err != nil {
		return fmt.Errorf("delete receptionist: %w", err)
	}
	return nil
}

func (r *ReceptionistRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Receptionist, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.Receptionist, 0)
	for rows.Next() {
		var rec entity.Receptionist
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Number, &rec.Password); err != nil {
			return nil, fmt.Errorf("scan receptionist: %w", err)
		}
		list = append(list, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

// scanReceptionist devuelve (nil, nil) si no hay fila.
func scanReceptionist(row pgx.Row) (*entity.Receptionist, error) {
	var rec entity.Receptionist
	if err := row.Scan(&rec.ID, &rec.Name, &rec.Number, &rec.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}
