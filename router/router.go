package router

import (
	"github.com/gin-gonic/contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/edgardchm/pokedex-backend/config"
	"github.com/edgardchm/pokedex-backend/middleware"
)

// Router is exported and used in main.go
func Router(pokemons *middleware.PokemonHandler, types *middleware.TypeHandler, ws *middleware.WebsocketHandler) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(setupCORS()))

	r.GET("/pokemon", pokemons.GetAllPokemons)
	r.GET("/pokemon/:id", pokemons.GetPokemonDetail)
	r.POST("/pokemon", pokemons.CreatePokemon)
	r.PUT("/pokemon/:id", pokemons.UpdatePokemon)
	r.DELETE("/pokemon/:id", pokemons.DeletePokemon)

	r.GET("/type", types.GetAllTypes)
	r.GET("/type/:id", types.GetTypeDetail)
	r.POST("/type", types.CreateType)

	r.GET("/ws", ws.ServeWS)

	return r
}

func setupCORS() cors.Config {
	c := cors.DefaultConfig()
	if config.CORSOrigin == "" || config.CORSOrigin == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowedOrigins = []string{config.CORSOrigin}
	}
	c.AllowedMethods = []string{"POST", "GET", "PUT", "PATCH", "DELETE", "OPTIONS"}
	c.AllowedHeaders = []string{"*"}
	return c
}
