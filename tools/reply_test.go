package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEchoComputer(t *testing.T) {
	out, err := EchoComputer{}.Compute(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	out, err = EchoComputer{}.Compute(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestQuoteComputerLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GOOG", r.URL.Query().Get("symbol"))
		fmt.Fprint(w, `{"symbol":"GOOG","price":"182.44"}`)
	}))
	defer srv.Close()

	out, err := QuoteComputer{Endpoint: srv.URL}.Compute(context.Background(), " goog ")
	require.NoError(t, err)
	assert.Equal(t, "GOOG: 182.44", out)
}

func TestQuoteComputerRejectsNonSymbol(t *testing.T) {
	_, err := QuoteComputer{Endpoint: "http://unused"}.Compute(context.Background(), "not a symbol")
	assert.Error(t, err)

	_, err = QuoteComputer{Endpoint: "http://unused"}.Compute(context.Background(), "")
	assert.Error(t, err)
}

func TestQuoteComputerLookupMiss(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"symbol":"XXXX","price":""}`)
	}))
	defer srv.Close()

	_, err := QuoteComputer{Endpoint: srv.URL}.Compute(context.Background(), "XXXX")
	assert.Error(t, err)
}

func TestNewReplyComputerSelection(t *testing.T) {
	assert.IsType(t, EchoComputer{}, NewReplyComputer("echo", ""))
	assert.IsType(t, EchoComputer{}, NewReplyComputer("", ""))
	assert.IsType(t, QuoteComputer{}, NewReplyComputer("quote", "http://quotes"))
}
