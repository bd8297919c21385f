package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/edgardchm/pokedex-backend/config"
	"github.com/edgardchm/pokedex-backend/models"
	"github.com/edgardchm/pokedex-backend/repository"
	"github.com/edgardchm/pokedex-backend/service"
)

type Sprites struct {
	BackDefault  string `json:"back_default"`
	FrontDefault string `json:"front_default"`
}

type Type struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type PokeType struct {
	Slot int  `json:"slot"`
	Type Type `json:"type"`
}

type Pokemon struct {
	Name           string     `json:"name"`
	Height         float64    `json:"height"`
	Weight         float64    `json:"weight"`
	BaseExperience int        `json:"base_experience"`
	Sprites        Sprites    `json:"sprites"`
	PokeTypes      []PokeType `json:"types"`
}

type Poke struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Results struct {
	Pokes []Poke `json:"results"`
}

func fetchJSON(url string, timeout time.Duration, out interface{}) {
	c := http.Client{
		Timeout: timeout,
	}

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		log.Fatal(err)
	}

	req.Header.Set("User-Agent", "")

	res, getErr := c.Do(req)
	if getErr != nil {
		log.Fatal(getErr)
	}

	if res.Body != nil {
		defer res.Body.Close()
	}

	body, readErr := ioutil.ReadAll(res.Body)
	if readErr != nil {
		log.Fatal(readErr)
	}

	if jsonErr := json.Unmarshal(body, out); jsonErr != nil {
		log.Fatal(jsonErr)
	}
}

// populatePokemon fetches one pokemon from PokeAPI and creates it
// through the service, so the type names go through find-or-create and
// the usual reconciliation.
func populatePokemon(svc *service.PokemonService, url string) {
	var data Pokemon
	fetchJSON(url, time.Second*60, &data)

	typeNames := []string{}
	for i := 0; i < len(data.PokeTypes); i++ {
		typeNames = append(typeNames, data.PokeTypes[i].Type.Name)
	}

	input := models.CreatePokemonInput{
		Name:           data.Name,
		Height:         data.Height,
		Weight:         data.Weight,
		BaseExperience: data.BaseExperience,
		SpriteURL:      data.Sprites.FrontDefault,
		TypeNames:      typeNames,
	}

	saved, err := svc.Create(context.Background(), input)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("inserted", saved.Name, "with id", saved.ID)
}

func main() {
	config.Load()

	ctx := context.Background()
	db, err := repository.Connect(ctx, config.MongoURI, config.DBName)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Connected to MongoDB!")

	typeStore := repository.NewMongoTypeStore(db)
	if err := typeStore.EnsureIndexes(ctx); err != nil {
		log.Fatal(err)
	}
	pokemonStore := repository.NewMongoPokemonStore(db)

	typeService := service.NewTypeService(typeStore)
	reconciler := service.NewTypeReconciler(typeService, typeStore)
	svc := service.NewPokemonService(pokemonStore, reconciler, service.NopNotifier{})

	limit := "10"
	offset := "0"
	if len(os.Args) >= 3 {
		limit = string(os.Args[1])
		offset = string(os.Args[2])
	}

	url := "https://pokeapi.co/api/v2/pokemon?limit=" + limit + "&offset=" + offset
	fmt.Println(url)

	var pokes Results
	fetchJSON(url, time.Second*120, &pokes)

	for i := 0; i < len(pokes.Pokes); i++ {
		populatePokemon(svc, pokes.Pokes[i].URL)
	}
}
