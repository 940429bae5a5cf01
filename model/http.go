package model

type EdoRequest struct {
	Divisions int `json:"divisions"`
}

type EdoResponse struct {
	Notes []EdoNote `json:"notes"`
}

type JIRequest struct {
	Primes   []int `json:"primes"`
	OddLimit int   `json:"oddLimit"`
}

type JIResponse struct {
	Intervals []JIInterval `json:"intervals"`
}

// MosRequest carries either a generator expression to parse or an already
// parsed cents value; GeneratorCents wins when both are present.
type MosRequest struct {
	Generator      string   `json:"generator"`
	GeneratorCents *float64 `json:"generatorCents,omitempty"`
	Stacks         int      `json:"stacks"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
