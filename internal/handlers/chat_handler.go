package handlers

import (
	"encoding/json"
	"net/http"

	"biasharaBack/internal/models"
	"biasharaBack/internal/services"
)

type ChatHandler struct {
	Service *services.ChatService
}

func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var chat models.Chat
	if err := json.NewDecoder(r.Body).Decode(&chat); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	chat.UserID = userID(r)
	created, err := h.Service.CreateChat(r.Context(), chat)
	if err != nil {
		http.Error(w, "Failed to create chat", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(created)
}

func (h *ChatHandler) GetUserChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.Service.UserChats(r.Context(), r.URL.Query().Get(":user_id"))
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(chats)
}

func (h *ChatHandler) GetEntityChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.Service.EntityChats(r.Context(), r.URL.Query().Get(":entity_id"))
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(chats)
}

func (h *ChatHandler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Service.ChatMessages(r.Context(), r.URL.Query().Get(":chat_id"))
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(messages)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChatID string `json:"chat_id"`
		models.ChatMessage
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ChatID == "" {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	req.SenderID = userID(r)
	msg, err := h.Service.SendMessage(r.Context(), req.ChatID, req.ChatMessage)
	if err != nil {
		http.Error(w, "Failed to send message", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(msg)
}
