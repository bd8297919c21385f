package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edgardchm/pokedex-backend/models"
	"github.com/edgardchm/pokedex-backend/repository"
	"github.com/edgardchm/pokedex-backend/responses"
	"github.com/edgardchm/pokedex-backend/service"
)

type TypeHandler struct {
	Service *service.TypeService
}

func NewTypeHandler(svc *service.TypeService) *TypeHandler {
	return &TypeHandler{Service: svc}
}

func (h *TypeHandler) GetAllTypes(c *gin.Context) {
	types, err := h.Service.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Error while getting types from DB, try again")
		return
	}

	var resp responses.TypesResp
	resp.Status = "success"
	resp.Message = "Types Loaded"
	resp.Data = types
	c.JSON(http.StatusOK, resp)
}

func (h *TypeHandler) GetTypeDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Error while converting ID, try again")
		return
	}

	t, err := h.Service.FindOne(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(c, http.StatusNotFound, fmt.Sprintf("Type with ID %d not found", id))
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Error while retrieving type's data, try again")
		return
	}

	var resp responses.TypeResp
	resp.Status = "success"
	resp.Message = "Type Details Loaded"
	resp.Data = t
	c.JSON(http.StatusOK, resp)
}

func (h *TypeHandler) CreateType(c *gin.Context) {
	var input models.CreateTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	t, err := h.Service.Create(c.Request.Context(), input.Name)
	if errors.Is(err, repository.ErrConflict) {
		writeError(c, http.StatusConflict, fmt.Sprintf("Type '%s' already exists", input.Name))
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Error while creating type, try again")
		return
	}

	var resp responses.TypeResp
	resp.Status = "success"
	resp.Message = "Type Created"
	resp.Data = t
	c.JSON(http.StatusCreated, resp)
}
