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

type PokemonHandler struct {
	Service *service.PokemonService
}

func NewPokemonHandler(svc *service.PokemonService) *PokemonHandler {
	return &PokemonHandler{Service: svc}
}

func (h *PokemonHandler) GetAllPokemons(c *gin.Context) {
	var resp responses.PokemonsResp

	pokemons, err := h.Service.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Error while getting pokemons from DB, try again")
		return
	}

	resp.Status = "success"
	resp.Message = "Pokemons Loaded"
	resp.Data = pokemons
	c.JSON(http.StatusOK, resp)
}

func (h *PokemonHandler) GetPokemonDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Error while converting ID, try again")
		return
	}

	pokemon, err := h.Service.FindOne(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(c, http.StatusNotFound, fmt.Sprintf("Pokemon with ID %d not found", id))
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Error while retrieving pokemon's data, try again")
		return
	}

	var resp responses.PokemonResp
	resp.Status = "success"
	resp.Message = "Pokemon Details Loaded"
	resp.Data = pokemon
	c.JSON(http.StatusOK, resp)
}

func (h *PokemonHandler) CreatePokemon(c *gin.Context) {
	var input models.CreatePokemonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	pokemon, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, statusFor(err), "Error while creating pokemon, try again")
		return
	}

	var resp responses.PokemonResp
	resp.Status = "success"
	resp.Message = "Pokemon Created"
	resp.Data = pokemon
	c.JSON(http.StatusCreated, resp)
}

func (h *PokemonHandler) UpdatePokemon(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Error while converting ID, try again")
		return
	}

	var input models.UpdatePokemonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	pokemon, err := h.Service.Update(c.Request.Context(), id, input)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(c, http.StatusNotFound, fmt.Sprintf("Pokemon with ID %d not found", id))
		return
	}
	if err != nil {
		writeError(c, statusFor(err), "Error while updating pokemon, try again")
		return
	}

	var resp responses.PokemonResp
	resp.Status = "success"
	resp.Message = "Pokemon Updated"
	resp.Data = pokemon
	c.JSON(http.StatusOK, resp)
}

func (h *PokemonHandler) DeletePokemon(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Error while converting ID, try again")
		return
	}

	err = h.Service.Delete(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeError(c, http.StatusNotFound, fmt.Sprintf("Pokemon with ID %d not found", id))
		return
	}
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Error while deleting pokemon, try again")
		return
	}

	var res responses.ResponseMessage
	res.Status = "success"
	res.Message = "Pokemon Deleted"
	c.JSON(http.StatusOK, res)
}
