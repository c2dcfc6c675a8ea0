package handlers

import (
	"log"
	"net/http"

	"github.com/dquispe/electromarket/app/repositories"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ContentHandler struct {
	render  *render.Render
	banners repositories.BannerRepositoryImpl
	blocks  repositories.ContentBlockRepositoryImpl
}

func NewContentHandler(r *render.Render, banners repositories.BannerRepositoryImpl, blocks repositories.ContentBlockRepositoryImpl) *ContentHandler {
	return &ContentHandler{render: r, banners: banners, blocks: blocks}
}

// Banners serves the promotional banners whose date window covers now.
func (h *ContentHandler) Banners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.banners.ActiveNow(r.Context())
	if err != nil {
		log.Printf("ContentHandler.Banners: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]interface{}{"banners": banners})
}

func (h *ContentHandler) Block(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	block, err := h.blocks.GetByKey(r.Context(), key)
	if err != nil {
		log.Printf("ContentHandler.Block: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Error interno"})
		return
	}
	if block == nil {
		h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Contenido no encontrado"})
		return
	}
	h.render.JSON(w, http.StatusOK, block)
}
