package tools

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/tool-server/pkg/toolkit"
)

type echoInput struct {
	Message *string  `json:"message"`
	Repeat  *int     `json:"repeat"`
	Tags    []string `json:"tags"`
}

type echoOutput struct {
	Message string   `json:"message"`
	Tags    []string `json:"tags,omitempty"`
	Count   int      `json:"count"`
}

func init() {
	toolkit.Register("echo", toolkit.Tool{
		Description: "Echoes a message back to the caller",
		Router:      newEchoRouter,
	})
}

func newEchoRouter() (chi.Router, error) {
	r := chi.NewRouter()
	r.Post("/", handleEcho)
	return r, nil
}

func handleEcho(w http.ResponseWriter, r *http.Request) {
	input, err := toolkit.Decode[echoInput](r)
	if err != nil {
		toolkit.Error(w, nil, http.StatusBadRequest, err)
		return
	}
	if input.Message == nil {
		toolkit.Error(w, nil, http.StatusBadRequest, errors.New("message is required"))
		return
	}

	count := 1
	if input.Repeat != nil && *input.Repeat > 1 {
		count = *input.Repeat
	}

	message := ""
	for i := 0; i < count; i++ {
		message += *input.Message
	}

	toolkit.Respond(w, http.StatusOK, echoOutput{
		Message: message,
		Tags:    input.Tags,
		Count:   count,
	})
}
