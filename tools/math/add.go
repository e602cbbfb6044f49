// Package math provides arithmetic tools.
package math

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/tool-server/pkg/toolkit"
)

type addInput struct {
	A *int `json:"a"`
	B *int `json:"b"`
}

type addOutput struct {
	Sum int `json:"sum"`
}

func init() {
	toolkit.Register("math/add", toolkit.Tool{
		Description: "Adds two integers",
		Router:      newAddRouter,
	})
}

func newAddRouter() (chi.Router, error) {
	r := chi.NewRouter()
	r.Post("/", handleAdd)
	return r, nil
}

func handleAdd(w http.ResponseWriter, r *http.Request) {
	input, err := toolkit.Decode[addInput](r)
	if err != nil {
		toolkit.Error(w, nil, http.StatusBadRequest, err)
		return
	}
	if input.A == nil || input.B == nil {
		toolkit.Error(w, nil, http.StatusBadRequest, errors.New("a and b are required"))
		return
	}

	toolkit.Respond(w, http.StatusOK, addOutput{Sum: *input.A + *input.B})
}
