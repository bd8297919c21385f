package main

import (
	"context"
	"log"
	"net/http"

	"github.com/edgardchm/pokedex-backend/config"
	"github.com/edgardchm/pokedex-backend/middleware"
	"github.com/edgardchm/pokedex-backend/repository"
	"github.com/edgardchm/pokedex-backend/router"
	"github.com/edgardchm/pokedex-backend/service"
	"github.com/edgardchm/pokedex-backend/websocket"
)

func main() {
	config.Load()

	ctx := context.Background()

	var typeStore repository.TypeStore
	var pokemonStore repository.PokemonStore

	if config.Storage == "memory" {
		typeStore = repository.NewMemoryTypeStore()
		pokemonStore = repository.NewMemoryPokemonStore()
		log.Println("Using in-memory storage")
	} else {
		db, err := repository.Connect(ctx, config.MongoURI, config.DBName)
		if err != nil {
			log.Fatal(err)
		}
		log.Println("Connected to MongoDB!")

		mongoTypes := repository.NewMongoTypeStore(db)
		if err := mongoTypes.EnsureIndexes(ctx); err != nil {
			log.Fatal(err)
		}
		typeStore = mongoTypes
		pokemonStore = repository.NewMongoPokemonStore(db)
	}

	pool := websocket.NewPool()
	go pool.Start()

	typeService := service.NewTypeService(typeStore)
	reconciler := service.NewTypeReconciler(typeService, typeStore)
	pokemonService := service.NewPokemonService(pokemonStore, reconciler, pool)

	r := router.Router(
		middleware.NewPokemonHandler(pokemonService),
		middleware.NewTypeHandler(typeService),
		middleware.NewWebsocketHandler(pool),
	)

	if config.IsProduction {
		log.Fatal(http.ListenAndServeTLS(":443", "keys/cert.pem", "keys/key.pem", r))
	} else {
		log.Println("Server is getting started at", config.Port)
		log.Fatal(http.ListenAndServe(":"+config.Port, r))
	}
}
