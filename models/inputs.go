package models

// CreatePokemonInput carries a new pokemon's fields. Height and weight
// are decimal(5,2) values, so anything at or above 1000 is rejected at
// the boundary. Type references may be given by id, by name, or both.
type CreatePokemonInput struct {
	Name           string   `json:"name" binding:"required"`
	Height         float64  `json:"height" binding:"gte=0,lt=1000"`
	Weight         float64  `json:"weight" binding:"gte=0,lt=1000"`
	BaseExperience int      `json:"base_experience"`
	SpriteURL      string   `json:"sprite_url" binding:"omitempty,url"`
	TypeIDs        []int    `json:"typeIds"`
	TypeNames      []string `json:"typeNames"`
}

// UpdatePokemonInput is a partial update: nil fields are left untouched.
// TypeIDs/TypeNames are pointers so that an explicit empty list (clear
// all types) can be told apart from an absent one (keep current types).
type UpdatePokemonInput struct {
	Name           *string   `json:"name"`
	Height         *float64  `json:"height" binding:"omitempty,gte=0,lt=1000"`
	Weight         *float64  `json:"weight" binding:"omitempty,gte=0,lt=1000"`
	BaseExperience *int      `json:"base_experience"`
	SpriteURL      *string   `json:"sprite_url" binding:"omitempty,url"`
	TypeIDs        *[]int    `json:"typeIds"`
	TypeNames      *[]string `json:"typeNames"`
}

type CreateTypeInput struct {
	Name string `json:"name" binding:"required"`
}
