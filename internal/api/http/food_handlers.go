package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"

	"amur-backend/internal/domain"
)

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	claims := claimsFrom(r)
	isAdmin := claims != nil && claims.IsAdmin()

	foods, err := h.Catalog.List(lang, r.URL.Query().Get("category"), r.URL.Query().Get("search"), isAdmin)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Categories(requestLanguage(r)))
}

func (h *Handler) popularFoods(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 10
	}

	foods, err := h.Catalog.Popular(lang, limit)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, foods)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	food, err := h.Catalog.Get(mux.Vars(r)["id"], lang)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, food)
}

func (h *Handler) createFood(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.FoodCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	food, err := h.Catalog.Create(req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusCreated, food)
}

func (h *Handler) updateFood(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	var req domain.FoodCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, lang)
		return
	}

	food, err := h.Catalog.Update(mux.Vars(r)["id"], req)
	if err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, food)
}

func (h *Handler) deleteFood(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	if err := h.Catalog.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, err, lang)
		return
	}
	writeMessage(w, http.StatusOK, "food_deleted", lang)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handler) uploadFoodImage(w http.ResponseWriter, r *http.Request) {
	lang := requestLanguage(r)
	foodID := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		badRequest(w, lang)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		badRequest(w, lang)
		return
	}
	defer file.Close()

	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		badRequest(w, lang)
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0755); err != nil {
		writeError(w, err, lang)
		return
	}

	filename := "food_" + foodID + "_" + filepath.Base(header.Filename)
	dst, err := os.Create(filepath.Join(h.UploadDir, filename))
	if err != nil {
		writeError(w, err, lang)
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		writeError(w, err, lang)
		return
	}

	imageURL := "/uploads/" + filename
	if err := h.Catalog.UpdateImage(foodID, imageURL); err != nil {
		writeError(w, err, lang)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image_url": imageURL})
}
