package models

import "time"

type Type struct {
	ID   int    `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

type Pokemon struct {
	ID             int     `json:"id" bson:"_id"`
	Name           string  `json:"name" bson:"name"`
	Height         float64 `json:"height" bson:"height"`
	Weight         float64 `json:"weight" bson:"weight"`
	BaseExperience int     `json:"base_experience" bson:"base_experience"`
	SpriteURL      string  `json:"sprite_url" bson:"sprite_url"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`

	Types []Type `json:"types" bson:"types"`
}
