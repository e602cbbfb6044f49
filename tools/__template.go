// Template for authoring a new tool. Copy this file somewhere under tools/,
// rename it, and register the tool under the identifier that matches its
// location: tools/math/add.go registers "math/add" and is mounted at
// /tools/math/add.
//
// The leading double underscore keeps this file out of the build and out of
// tool discovery.
package tools

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/tool-server/pkg/toolkit"
)

// Declare the input structure: required fields as pointers checked below,
// optional fields as pointers or slices left nil when absent.
type templateInput struct {
	Input1 *string  `json:"input1"` // required string
	Input2 *int     `json:"input2"` // optional integer
	Input3 []string `json:"input3"` // optional list of strings
}

// Declare the output structure.
type templateOutput struct {
	Output1 string `json:"output1"`
	Output2 string `json:"output2"`
	Output3 int    `json:"output3"`
}

func init() {
	toolkit.Register("template", toolkit.Tool{
		Description: "Describe your tool here",
		Router:      newTemplateRouter,
	})
}

func newTemplateRouter() (chi.Router, error) {
	r := chi.NewRouter()
	r.Post("/", handleTemplate)
	return r, nil
}

func handleTemplate(w http.ResponseWriter, r *http.Request) {
	input, err := toolkit.Decode[templateInput](r)
	if err != nil {
		toolkit.Error(w, nil, http.StatusBadRequest, err)
		return
	}
	if input.Input1 == nil {
		toolkit.Error(w, nil, http.StatusBadRequest, errors.New("input1 is required"))
		return
	}

	// Implement your tool here, then populate the outputs.

	toolkit.Respond(w, http.StatusOK, templateOutput{
		Output1: "",
		Output2: "",
		Output3: 0,
	})
}
