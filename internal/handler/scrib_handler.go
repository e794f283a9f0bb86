package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"scribcraft/internal/repository"
)

// ListScribs returns all scribs with their images as plain maps
func (h *Handlers) ListScribs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	scribs, err := h.ScribService.ListScribs(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]map[string]interface{}, 0, len(scribs))
	for i := range scribs {
		response = append(response, scribs[i].ToMap())
	}

	WriteSuccess(w, response, http.StatusOK)
}

// ScribRouter dispatches /api/scribs/... by method and path:
// POST /api/scribs/ creates, GET/DELETE /api/scribs/{id} read and remove,
// /api/scribs/{id}/comments goes to the comment handlers
func (h *Handlers) ScribRouter(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) >= 5 && pathParts[4] == "comments" {
		switch r.Method {
		case http.MethodPost:
			h.AddComment(w, r)
		case http.MethodGet:
			h.GetComments(w, r)
		default:
			WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.CreateScrib(w, r)
	case http.MethodGet:
		h.GetScrib(w, r)
	case http.MethodDelete:
		h.DeleteScrib(w, r)
	default:
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CreateScrib drives the whole creation flow: generation, persistence,
// image relocation. Errors from any step surface here with their message
func (h *Handlers) CreateScrib(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title  string `json:"title" validate:"required"`
		Prompt string `json:"prompt" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	// checking the title and prompt
	if req.Title == "" {
		WriteError(w, "Отсутствует заголовок", http.StatusBadRequest)
		return
	}

	if req.Prompt == "" {
		WriteError(w, "Отсутствует промпт", http.StatusBadRequest)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	serviceReq := repository.CreateScribRequest{
		UserID: userID,
		Title:  req.Title,
		Prompt: req.Prompt,
	}

	// creating a scrib
	scrib, err := h.ScribService.CreateScrib(r.Context(), serviceReq)
	if err != nil {
		if strings.Contains(err.Error(), "заголовок уже занят") {
			WriteError(w, "Заголовок уже занят", http.StatusConflict)
		} else if strings.Contains(err.Error(), "ошибка генерации") {
			WriteError(w, err.Error(), http.StatusBadGateway)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, scrib.ToMap(), http.StatusCreated)
}

func (h *Handlers) GetScrib(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 4 || pathParts[3] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}
	scribID := pathParts[3]

	scrib, err := h.ScribService.GetScrib(r.Context(), scribID)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Скриб не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	comments, err := h.CommentService.GetByScribID(r.Context(), scribID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := scrib.ToMap()

	commentMaps := make([]map[string]interface{}, 0, len(comments))
	for i := range comments {
		commentMaps = append(commentMaps, comments[i].ToMap())
	}
	response["comments"] = commentMaps

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) DeleteScrib(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 4 || pathParts[3] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}
	scribID := pathParts[3]

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	err := h.ScribService.DeleteScrib(r.Context(), scribID, userID)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Скриб не найден", http.StatusNotFound)
		} else if strings.Contains(err.Error(), "только его автор") {
			WriteError(w, "Доступ запрещен", http.StatusForbidden)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Скриб успешно удален"}, http.StatusOK)
}
