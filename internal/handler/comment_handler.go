package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"scribcraft/internal/repository"
)

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 5 || pathParts[3] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}
	scribID := pathParts[3]

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req struct {
		CommentText string `json:"commentText" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// a comment must have a body
	if req.CommentText == "" {
		WriteError(w, "Комментарий не может быть пустым", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateCommentRequest{
		UserID:      userID,
		ScribID:     scribID,
		CommentText: req.CommentText,
	}

	comment, err := h.CommentService.AddComment(r.Context(), serviceReq)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Скриб не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, comment.ToMap(), http.StatusCreated)
}

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 5 || pathParts[3] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}
	scribID := pathParts[3]

	comments, err := h.CommentService.GetByScribID(r.Context(), scribID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]map[string]interface{}, 0, len(comments))
	for i := range comments {
		response = append(response, comments[i].ToMap())
	}

	WriteSuccess(w, response, http.StatusOK)
}
