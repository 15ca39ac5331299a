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

type VehiclesHandler struct{ svc service.VehicleService }

func NewVehiclesHandler(svc service.VehicleService) *VehiclesHandler {
	return &VehiclesHandler{svc: svc}
}

func (h *VehiclesHandler) Crear(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	v, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo crear el vehículo"))
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *VehiclesHandler) Listar(c *gin.Context) {
	var filter dto.VehicleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	vehicles, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar vehículos"))
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (h *VehiclesHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.UpdateVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	v, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Vehículo no encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo actualizar el vehículo"))
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VehiclesHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Vehículo no encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo eliminar el vehículo"))
		return
	}
	c.Status(http.StatusNoContent)
}
