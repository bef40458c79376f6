package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/cloudcopper/cardlist/domain/cards"
	"github.com/cloudcopper/cardlist/infra"
	"github.com/cloudcopper/cardlist/ports"
	"github.com/go-chi/chi/v5"
)

const imageWidth, imageHeight = 640, 400

type ImageController struct {
	log    ports.Logger
	render infra.Render
	mutex  sync.Mutex
	cache  map[int][]byte
}

func NewImageController(log ports.Logger, render infra.Render) *ImageController {
	log = log.With(slog.String("entity", "ImageController"))
	c := &ImageController{
		log:    log,
		render: render,
		cache:  map[int][]byte{},
	}
	return c
}

// Get responds placeholder image /images/{name}, where name is <n>.jpeg.
// The suffix is cut here, as chi does not route on param suffix.
func (c *ImageController) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s, ok := strings.CutSuffix(name, ".jpeg")
	if !ok {
		c.notFound(w, r)
		return
	}
	n, err := cards.ParseImageNumber(s)
	if err != nil {
		c.notFound(w, r)
		return
	}

	data, err := c.image(n)
	if err != nil {
		c.log.Error("unable to draw image", slog.Int("n", n), slog.Any("err", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	c.render.Data(w, http.StatusOK, data)
}

func (c *ImageController) image(n int) ([]byte, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if data, ok := c.cache[n]; ok {
		return data, nil
	}
	data, err := infra.PlaceholderJPEG(n, imageWidth, imageHeight)
	if err != nil {
		return nil, err
	}
	c.cache[n] = data
	return data, nil
}

func (c *ImageController) notFound(w http.ResponseWriter, r *http.Request) {
	c.log.Debug("image not found", slog.String("path", r.URL.Path))
	http.NotFound(w, r)
}
