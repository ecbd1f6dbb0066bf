package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslatorServer(t *testing.T, handler http.HandlerFunc) *Translator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewTranslatorWithURL(srv.URL, time.Second)
}

func TestTranslate(t *testing.T) {
	var calls int
	tr := newTranslatorServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/get", r.URL.Path)
		assert.Equal(t, "hello", r.URL.Query().Get("q"))
		assert.Equal(t, "en|es", r.URL.Query().Get("langpair"))
		fmt.Fprint(w, `{"responseStatus":200,"responseData":{"translatedText":"hola"}}`)
	})

	got, err := tr.Translate(context.Background(), "hello", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "hola", got)

	// Second call hits the cache.
	got, err = tr.Translate(context.Background(), "hello", "en", "es")
	require.NoError(t, err)
	assert.Equal(t, "hola", got)
	assert.Equal(t, 1, calls)
}

func TestTranslateSameLanguageShortCircuits(t *testing.T) {
	tr := newTranslatorServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	got, err := tr.Translate(context.Background(), "hello", "en", "en")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestTranslateAPIError(t *testing.T) {
	tr := newTranslatorServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"responseStatus":403,"responseDetails":"quota exceeded","responseData":{"translatedText":""}}`)
	})

	_, err := tr.Translate(context.Background(), "hello", "en", "es")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestTranslateSoftDegrades(t *testing.T) {
	tr := NewTranslatorWithURL("http://127.0.0.1:0", time.Second)

	got := tr.TranslateSoft(context.Background(), "hello", "en", "es")
	assert.Equal(t, UnavailablePrefix+"hello", got)
}

func TestTranslateSoftPassesThrough(t *testing.T) {
	tr := newTranslatorServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"responseStatus":200,"responseData":{"translatedText":"hola"}}`)
	})

	assert.Equal(t, "hola", tr.TranslateSoft(context.Background(), "hello", "en", "es"))
}
