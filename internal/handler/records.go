package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"flotagest/internal/apierror"
	"flotagest/internal/dto"
	"flotagest/internal/repository"
	"flotagest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecordsHandler struct{ svc service.RecordService }

func NewRecordsHandler(svc service.RecordService) *RecordsHandler {
	return &RecordsHandler{svc: svc}
}

func (h *RecordsHandler) Crear(c *gin.Context) {
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	// Accept any casing on the wire; the canonical form is lowercase.
	req.Tipo = dto.NormalizeTipo(req.Tipo)
	if err := dto.Validate(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(dto.FieldErrors(err)))
		return
	}
	rec, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) || errors.Is(err, service.ErrDriverNotFound) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo crear el registro"))
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// parseRecordFilter reads the query parameters by hand: uuid values do not
// survive gin's reflective query binding.
func parseRecordFilter(c *gin.Context) (dto.RecordFilter, error) {
	var f dto.RecordFilter
	if raw := c.Query("vehicleId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, fmt.Errorf("vehicleId invalido: %q", raw)
		}
		f.VehicleID = &id
	}
	if raw := c.Query("driverId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return f, fmt.Errorf("driverId invalido: %q", raw)
		}
		f.DriverID = &id
	}
	f.Tipo = c.Query("tipo")
	if raw := c.Query("startDate"); raw != "" {
		t, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return f, fmt.Errorf("startDate invalido: %q", raw)
		}
		f.StartDate = &t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := time.Parse(dto.DateLayout, raw)
		if err != nil {
			return f, fmt.Errorf("endDate invalido: %q", raw)
		}
		f.EndDate = &t
	}
	return f, nil
}

func (h *RecordsHandler) Listar(c *gin.Context) {
	filter, err := parseRecordFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	records, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar registros"))
		return
	}
	c.JSON(http.StatusOK, records)
}

// OpcionesFiltros serves the option lists consumed by the records page's
// filter and selection inputs.
func (h *RecordsHandler) OpcionesFiltros(c *gin.Context) {
	opts, err := h.svc.OpcionesFiltros(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al cargar opciones de filtro"))
		return
	}
	c.JSON(http.StatusOK, opts)
}

func (h *RecordsHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	if req.Tipo != nil {
		normalized := dto.NormalizeTipo(*req.Tipo)
		req.Tipo = &normalized
	}
	if err := dto.Validate(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(dto.FieldErrors(err)))
		return
	}
	rec, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, apierror.New("Registro no encontrado"))
		case errors.Is(err, service.ErrVehicleNotFound), errors.Is(err, service.ErrDriverNotFound):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusBadRequest, apierror.New("No se pudo actualizar el registro"))
		}
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *RecordsHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, apierror.New("Registro no encontrado"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo eliminar el registro"))
		return
	}
	c.Status(http.StatusNoContent)
}
