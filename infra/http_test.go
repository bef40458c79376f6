package infra

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWebServer(t *testing.T) {
	assert := require.New(t)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "cards")
	})
	s, err := NewWebServer(slog.Default(), "127.0.0.1:0", handler)
	assert.NoError(err)

	resp, err := http.Get("http://" + s.Addr().String() + "/")
	assert.NoError(err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.NoError(err)
	assert.Equal("cards", string(body))

	s.Close()
	_, err = http.Get("http://" + s.Addr().String() + "/")
	assert.Error(err)
}
