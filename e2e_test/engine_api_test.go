//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xenviz/engine/cmd"
	"github.com/xenviz/engine/model"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *http.Response {
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	w := httptest.NewRecorder()
	handler(w, req)
	return w.Result()
}

func decode(t *testing.T, resp *http.Response, out any) {
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		t.Fatal(err)
	}
}

func TestEdoEndpoint(t *testing.T) {
	assert := assert.New(t)

	resp := postJSON(t, cmd.HandleEdo, model.EdoRequest{Divisions: 12})
	assert.Equal(200, resp.StatusCode)

	var out model.EdoResponse
	decode(t, resp, &out)
	assert.Len(out.Notes, 12)
	assert.False(out.Notes[0].IsEdoPrime)
	assert.InDelta(100, out.Notes[1].Cents, 1e-9)
}

func TestEdoEndpointRejectsZeroDivisions(t *testing.T) {
	assert := assert.New(t)

	resp := postJSON(t, cmd.HandleEdo, model.EdoRequest{Divisions: 0})
	assert.Equal(400, resp.StatusCode)

	var out model.ErrorResponse
	decode(t, resp, &out)
	assert.NotEmpty(out.Error)
}

func TestJiEndpoint(t *testing.T) {
	assert := assert.New(t)

	resp := postJSON(t, cmd.HandleJi, model.JIRequest{Primes: []int{3, 5}, OddLimit: 9})
	assert.Equal(200, resp.StatusCode)

	var out model.JIResponse
	decode(t, resp, &out)
	assert.NotEmpty(out.Intervals)
	for _, iv := range out.Intervals {
		assert.Less(iv.Cents, 1200.0)
		assert.GreaterOrEqual(iv.Cents, 0.0)
	}
}

func TestJiEndpointRejectsEvenOddLimit(t *testing.T) {
	assert := assert.New(t)

	resp := postJSON(t, cmd.HandleJi, model.JIRequest{Primes: []int{3, 5}, OddLimit: 8})
	assert.Equal(400, resp.StatusCode)
}

func TestMosEndpointWithExpression(t *testing.T) {
	assert := assert.New(t)

	resp := postJSON(t, cmd.HandleMos, model.MosRequest{Generator: "3/2", Stacks: 6})
	assert.Equal(200, resp.StatusCode)

	var out model.MosResult
	decode(t, resp, &out)
	assert.Len(out.Notes, 7)
	assert.True(out.Classification.IsMos)
	assert.Equal(5, out.Classification.LargeStepCount)
	assert.Equal(2, out.Classification.SmallStepCount)
}

func TestMosEndpointWithPreParsedCents(t *testing.T) {
	assert := assert.New(t)

	cents := 701.955
	resp := postJSON(t, cmd.HandleMos, model.MosRequest{GeneratorCents: &cents, Stacks: 6})
	assert.Equal(200, resp.StatusCode)

	var out model.MosResult
	decode(t, resp, &out)
	assert.Equal("5L 2s", out.Classification.Label())
}

func TestMosEndpointRejectsBadExpression(t *testing.T) {
	assert := assert.New(t)

	resp := postJSON(t, cmd.HandleMos, model.MosRequest{Generator: "abc", Stacks: 6})
	assert.Equal(400, resp.StatusCode)

	var out model.ErrorResponse
	decode(t, resp, &out)
	assert.NotEmpty(out.Error)
}
