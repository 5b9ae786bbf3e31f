package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Careplus-api/internal/application/dto"
	"github.com/jhoicas/Careplus-api/internal/application/usecase"
	"github.com/jhoicas/Careplus-api/internal/domain"
)

// Mensajes de respuesta de texto del recurso receptionists.
const (
	msgInvalidCredentials = "Invalid credentials"
	msgNotFound           = "Receptionist not found"
	msgCreated            = "Receptionist added successfully."
	msgDuplicateNumber    = "Receptionist with this number already exists."
	msgCreateFailed       = "Failed to add receptionist: "
	msgServerError        = "Something went wrong on the server."
	msgUpdated            = "Receptionist updated successfully."
	msgUpdateFailed       = "Failed to update receptionist: "
	msgDeleted            = "Receptionist deleted successfully."
	msgDeleteFailed       = "Failed to delete receptionist: "
	msgInvalidID          = "Invalid receptionist id"
)

// ReceptionistHandler maneja las peticiones HTTP para el recurso Receptionist.
type ReceptionistHandler struct {
	uc     *usecase.ReceptionistUseCase
	roster *usecase.RosterUseCase
}

// NewReceptionistHandler construye el handler inyectando los casos de uso.
func NewReceptionistHandler(uc *usecase.ReceptionistUseCase, roster *usecase.RosterUseCase) *ReceptionistHandler {
	return &ReceptionistHandler{uc: uc, roster: roster}
}

// Login godoc
// @Summary      Login de recepcionista
// @Tags         receptionists
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReceptionistLoginRequest  true  "identifier (id o number) y password"
// @Success      200   {object}  dto.ReceptionistLoginResponse
// @Failure      401   {object}  dto.MessageResponse
// @Router       /api/receptionists/login [post]
func (h *ReceptionistHandler) Login(c *fiber.Ctx) error {
	var in dto.ReceptionistLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	GetLogger(c).Debug().Str("identifier", string(in.Identifier)).Msg("login de recepcionista")

	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: msgInvalidCredentials})
		}
		GetLogger(c).Error().Err(err).Msg("login de recepcionista")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgServerError})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar recepcionistas
// @Tags         receptionists
// @Produce      json
// @Success      200  {array}  dto.ReceptionistResponse
// @Router       /api/receptionists [get]
func (h *ReceptionistHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		GetLogger(c).Error().Err(err).Msg("listar recepcionistas")
		return internalErrorEmpty(c)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener recepcionista por ID
// @Tags         receptionists
// @Produce      json
// @Param        id   path  int  true  "ID del recepcionista"
// @Success      200  {object}  dto.ReceptionistResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/receptionists/{id} [get]
func (h *ReceptionistHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: msgInvalidID})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrReceptionistNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msgNotFound})
		}
		GetLogger(c).Error().Err(err).Int("id", id).Msg("obtener recepcionista")
		return internalErrorEmpty(c)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar recepcionistas por nombre (subcadena, sin distinguir mayúsculas)
// @Tags         receptionists
// @Produce      json
// @Param        name  query  string  true  "Fragmento del nombre"
// @Success      200   {array}  dto.ReceptionistResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/receptionists/search [get]
func (h *ReceptionistHandler) Search(c *fiber.Ctx) error {
	if !c.Context().QueryArgs().Has("name") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NAME", Message: "name es requerido"})
	}
	out, err := h.uc.SearchByName(c.UserContext(), c.Query("name"))
	if err != nil {
		GetLogger(c).Error().Err(err).Msg("buscar recepcionistas")
		return internalErrorEmpty(c)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear recepcionista
// @Tags         receptionists
// @Accept       json
// @Produce      plain
// @Param        body  body  dto.ReceptionistRequest  true  "name, number, password"
// @Success      201   {string}  string
// @Failure      400   {string}  string
// @Failure      409   {string}  string
// @Router       /api/receptionists [post]
func (h *ReceptionistHandler) Create(c *fiber.Ctx) error {
	var in dto.ReceptionistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(msgCreateFailed + err.Error())
	}
	if _, err := h.uc.Create(c.UserContext(), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).SendString(msgDuplicateNumber)
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).SendString(msgCreateFailed + err.Error())
		}
		GetLogger(c).Error().Err(err).Msg("crear recepcionista")
		return c.Status(fiber.StatusInternalServerError).SendString(msgServerError)
	}
	return c.Status(fiber.StatusCreated).SendString(msgCreated)
}

// Update godoc
// @Summary      Actualizar recepcionista (sobrescribe name, number y password)
// @Tags         receptionists
// @Accept       json
// @Produce      plain
// @Param        id    path  int                      true  "ID del recepcionista"
// @Param        body  body  dto.ReceptionistRequest  true  "name, number, password"
// @Success      200   {string}  string
// @Failure      404   {string}  string
// @Router       /api/receptionists/{id} [put]
func (h *ReceptionistHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(msgInvalidID)
	}
	var in dto.ReceptionistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(msgUpdateFailed + err.Error())
	}
	if err := h.uc.Update(c.UserContext(), id, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrReceptionistNotFound):
			return c.Status(fiber.StatusNotFound).SendString(msgNotFound)
		case errors.Is(err, domain.ErrInvalidInput):
			// En update los errores de validación responden 404, a diferencia de create (400).
			return c.Status(fiber.StatusNotFound).SendString(err.Error())
		}
		GetLogger(c).Error().Err(err).Int("id", id).Msg("actualizar recepcionista")
		return c.Status(fiber.StatusInternalServerError).SendString(msgUpdateFailed + err.Error())
	}
	return c.SendString(msgUpdated)
}

// Delete godoc
// @Summary      Eliminar recepcionista
// @Tags         receptionists
// @Produce      plain
// @Param        id   path  int  true  "ID del recepcionista"
// @Success      200  {string}  string
// @Failure      404  {string}  string
// @Router       /api/receptionists/{id} [delete]
func (h *ReceptionistHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(msgInvalidID)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrReceptionistNotFound) {
			return c.Status(fiber.StatusNotFound).SendString(msgNotFound)
		}
		GetLogger(c).Error().Err(err).Int("id", id).Msg("eliminar recepcionista")
		return c.Status(fiber.StatusInternalServerError).SendString(msgDeleteFailed + err.Error())
	}
	return c.SendString(msgDeleted)
}

// ExportPDF godoc
// @Summary      Descargar listado de recepcionistas en PDF
// @Tags         receptionists
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/receptionists/export/pdf [get]
func (h *ReceptionistHandler) ExportPDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.roster.ExportPDF(c.UserContext())
	if err != nil {
		GetLogger(c).Error().Err(err).Msg("exportar listado pdf")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: msgServerError})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// parseID lee el parámetro :id como entero de 32 bits.
func parseID(c *fiber.Ctx) (int, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// internalErrorEmpty responde 500 con cuerpo vacío.
func internalErrorEmpty(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).Send(nil)
}
