package oas

import (
	"github.com/erraggy/oaswire/keys"
)

// Components holds reusable objects for different aspects of the document.
// Every map is keyed by component names matching ^[A-Za-z0-9._-]+$.
type Components struct {
	Schemas         *keys.Map[*Schema]
	Responses       *keys.Map[*Response]
	Parameters      *keys.Map[*Parameter]
	Examples        *keys.Map[Example]
	RequestBodies   *keys.Map[*RequestBody]
	Headers         *keys.Map[*Header]
	SecuritySchemes *keys.Map[SecurityScheme]
	Links           *keys.Map[*Link]
	Callbacks       *keys.Map[*Callback]
}

// NewComponents returns Components with every map allocated and empty.
// Empty maps are not encoded.
func NewComponents() *Components {
	return &Components{
		Schemas:         keys.NewMap[*Schema](keys.ComponentName),
		Responses:       keys.NewMap[*Response](keys.ComponentName),
		Parameters:      keys.NewMap[*Parameter](keys.ComponentName),
		Examples:        keys.NewMap[Example](keys.ComponentName),
		RequestBodies:   keys.NewMap[*RequestBody](keys.ComponentName),
		Headers:         keys.NewMap[*Header](keys.ComponentName),
		SecuritySchemes: keys.NewMap[SecurityScheme](keys.ComponentName),
		Links:           keys.NewMap[*Link](keys.ComponentName),
		Callbacks:       keys.NewMap[*Callback](keys.ComponentName),
	}
}

// NewCallbacks returns an empty operation callback map keyed by callback name.
func NewCallbacks() *keys.Map[*Callback] {
	return keys.NewMap[*Callback](keys.ComponentName)
}
