package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/xenviz/engine/constants"
	"github.com/xenviz/engine/edo"
	"github.com/xenviz/engine/generator"
	"github.com/xenviz/engine/ji"
	"github.com/xenviz/engine/model"
	"github.com/xenviz/engine/mos"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine over HTTP for the visualizer",
	Long:  `Serves the engine over HTTP for the visualizer`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// writeEngineError maps the recoverable input errors to 400 so the
// visualizer can show them inline and keep its last valid value.
func writeEngineError(w http.ResponseWriter, err error) {
	var formatErr *model.FormatError
	var domainErr *model.DomainError
	if errors.As(err, &formatErr) || errors.As(err, &domainErr) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

func HandleEdo(w http.ResponseWriter, r *http.Request) {
	var input model.EdoRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}

	notes, err := edo.Generate(input.Divisions)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	json.NewEncoder(w).Encode(model.EdoResponse{Notes: notes})
}

func HandleJi(w http.ResponseWriter, r *http.Request) {
	var input model.JIRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}

	intervals, err := ji.Generate(input.Primes, input.OddLimit)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	json.NewEncoder(w).Encode(model.JIResponse{Intervals: intervals})
}

func HandleMos(w http.ResponseWriter, r *http.Request) {
	var input model.MosRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}

	cents := 0.0
	if input.GeneratorCents != nil {
		cents = *input.GeneratorCents
	} else {
		var err error
		cents, err = generator.ParseCents(input.Generator)
		if err != nil {
			writeEngineError(w, err)
			return
		}
	}

	res, err := mos.Generate(cents, input.Stacks)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	json.NewEncoder(w).Encode(res)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/edo", HandleEdo).Methods("POST")
	router.HandleFunc("/ji", HandleJi).Methods("POST")
	router.HandleFunc("/mos", HandleMos).Methods("POST")
	router.HandleFunc("/healthz", handleHealth).Methods("GET")

	addr := ":" + constants.GetPort()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, cors.Default().Handler(router)))
}
