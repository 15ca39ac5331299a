package handler

import (
	"errors"
	"net/http"

	"flotagest/internal/apierror"
	"flotagest/internal/dto"
	"flotagest/internal/repository"
	"flotagest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DriversHandler struct{ svc service.DriverService }

func NewDriversHandler(svc service.DriverService) *DriversHandler {
	return &DriversHandler{svc: svc}
}

func (h *DriversHandler) Crear(c *gin.Context) {
	var req dto.CreateDriverRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo crear el motorista"))
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *DriversHandler) Listar(c *gin.Context) {
	var filter dto.DriverFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	drivers, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar motoristas"))
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// ListarActivos serves the narrowed active-only list for selection inputs.
func (h *DriversHandler) ListarActivos(c *gin.Context) {
	drivers, err := h.svc.ListarActivos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar motoristas activos"))
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (h *DriversHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.UpdateDriverRequest
	if !bindAndValidate(c, &req) {
		return
	}
	d, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Motorista no encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo actualizar el motorista"))
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *DriversHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Motorista no encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo eliminar el motorista"))
		return
	}
	c.Status(http.StatusNoContent)
}
