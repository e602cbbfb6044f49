// Package text provides string manipulation tools.
package text

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/tool-server/pkg/toolkit"
)

type reverseInput struct {
	Value *string `json:"value"`
}

type reverseOutput struct {
	Reversed string `json:"reversed"`
	Length   int    `json:"length"`
}

func init() {
	toolkit.Register("text/reverse", toolkit.Tool{
		Description: "Reverses a string",
		Router:      newReverseRouter,
	})
}

func newReverseRouter() (chi.Router, error) {
	r := chi.NewRouter()
	r.Post("/", handleReverse)
	return r, nil
}

func handleReverse(w http.ResponseWriter, r *http.Request) {
	input, err := toolkit.Decode[reverseInput](r)
	if err != nil {
		toolkit.Error(w, nil, http.StatusBadRequest, err)
		return
	}
	if input.Value == nil {
		toolkit.Error(w, nil, http.StatusBadRequest, errors.New("value is required"))
		return
	}

	runes := []rune(*input.Value)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	toolkit.Respond(w, http.StatusOK, reverseOutput{
		Reversed: string(runes),
		Length:   len(runes),
	})
}
