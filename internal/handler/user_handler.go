package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"scribcraft/internal/repository"
)

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPut {
		h.UpdateUser(w, r)
		return
	}

	if r.Method == http.MethodDelete {
		h.DeleteUser(w, r)
		return
	}

	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 4 || pathParts[3] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}
	userID := pathParts[3]

	user, err := h.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, user.ToMap(), http.StatusOK)
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// extracting the user id from the url
	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 4 || pathParts[3] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}
	userID := pathParts[3]

	currentUserID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if userID != currentUserID {
		WriteError(w, "Нет прав для обновления этого пользователя", http.StatusForbidden)
		return
	}

	var req struct {
		AvatarURL string `json:"avatarUrl" validate:"omitempty,url"`
		AboutMe   string `json:"aboutMe"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdateUserRequest{
		UserID:    userID,
		AvatarURL: req.AvatarURL,
		AboutMe:   req.AboutMe,
	}

	if err := h.UserService.UpdateUser(r.Context(), serviceReq); err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пользователь обновлен"}, http.StatusOK)
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	pathParts := strings.Split(r.URL.Path, "/")
	if len(pathParts) < 4 || pathParts[3] == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}
	userID := pathParts[3]

	currentUserID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	if userID != currentUserID {
		WriteError(w, "Нет прав для удаления этого пользователя", http.StatusForbidden)
		return
	}

	// everything owned by the user goes with it: scribs, their images and comments
	if err := h.UserService.DeleteUser(r.Context(), userID); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пользователь удален"}, http.StatusOK)
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	// profile with nested scribs
	user, err := h.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		WriteError(w, err.Error(), http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, user.ToMap(), http.StatusOK)
}

// ListUsers returns all accounts as plain maps, without nested scribs
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	users, err := h.UserRepo.GetAllUsers(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	response := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		response = append(response, users[i].ToMap())
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "ok"}, http.StatusOK)
}

func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		WriteError(w, "Не найдено", http.StatusNotFound)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Scribcraft API"}, http.StatusOK)
}
