package responses

import (
	"github.com/edgardchm/pokedex-backend/models"
)

type PokemonsResp struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Data    []models.Pokemon `json:"data"`
}

type PokemonResp struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    models.Pokemon `json:"data"`
}

type TypesResp struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Data    []models.Type `json:"data"`
}

type TypeResp struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    models.Type `json:"data"`
}

type ResponseMessage struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
