package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/comercio-pro/internal/application/dto"
	"github.com/tu-usuario/comercio-pro/internal/application/provisioning"
	"github.com/tu-usuario/comercio-pro/internal/application/usecase"
	"github.com/tu-usuario/comercio-pro/internal/domain"
)

// AccountHandler maneja el alta de cuentas y su consulta.
type AccountHandler struct {
	provisionUC *provisioning.UseCase
	userUC      *usecase.UserUseCase
}

// NewAccountHandler construye el handler de cuentas.
func NewAccountHandler(provisionUC *provisioning.UseCase, userUC *usecase.UserUseCase) *AccountHandler {
	return &AccountHandler{provisionUC: provisionUC, userUC: userUC}
}

// Provision godoc
// @Summary      Registrar cuenta (usuario + perfil, atómico)
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProvisionRequest  true  "email, password, kind, profile"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/accounts [post]
func (h *AccountHandler) Provision(c *fiber.Ctx) error {
	var in dto.ProvisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateProvision(in); len(fields) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: "la petición tiene campos inválidos",
			Fields:  fields,
		})
	}
	user, err := h.provisionUC.Provision(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		case errors.Is(err, domain.ErrCompanyNameTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "COMPANY_NAME_TAKEN", Message: "el nombre de empresa ya está registrado"})
		case errors.Is(err, domain.ErrProfileAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PROFILE_EXISTS", Message: "la cuenta ya tiene perfil"})
		case errors.Is(err, domain.ErrInvalidKind), errors.Is(err, domain.ErrInvalidIdentifier), errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// validateProvision valida la forma de la petición campo por campo. Las reglas
// de negocio (unicidad, atomicidad) las aplica el caso de uso.
func validateProvision(in dto.ProvisionRequest) map[string]string {
	fields := map[string]string{}
	if !domain.ValidEmail(domain.NormalizeEmail(in.Email)) {
		fields["email"] = "email inválido"
	}
	if len(in.Password) < 8 {
		fields["password"] = "password debe tener al menos 8 caracteres"
	}
	if !domain.ValidKind(in.Kind) {
		fields["kind"] = "kind debe ser company o person"
		return fields
	}
	if in.Profile.Name == "" {
		fields["profile.name"] = "nombre del perfil requerido"
	}
	switch in.Kind {
	case domain.KindCompany:
		if !domain.ValidCompanyTaxID(in.Profile.TaxID) {
			fields["profile.tax_id"] = "NIT debe tener exactamente 9 dígitos"
		}
	case domain.KindPerson:
		if !domain.ValidPersonNationalID(in.Profile.NationalID) {
			fields["profile.national_id"] = "cédula debe tener exactamente 11 dígitos"
		}
	}
	return fields
}

// Me godoc
// @Summary      Cuenta autenticada con su perfil
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AccountResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/accounts/me [get]
func (h *AccountHandler) Me(c *fiber.Ctx) error {
	account, err := h.userUC.GetAccount(GetUserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la cuenta no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(account)
}

// List godoc
// @Summary      Listar cuentas (solo admin)
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "límite"
// @Param        offset  query  int  false  "offset"
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/accounts [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	users, err := h.userUC.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(users)
}

// Deactivate godoc
// @Summary      Desactivar una cuenta (solo admin)
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID de la cuenta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{id} [delete]
func (h *AccountHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.userUC.Deactivate(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la cuenta no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
