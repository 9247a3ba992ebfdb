package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "chat_enabled": false})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ok", response["status"])
}

func TestChatEndpoint_InvalidRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/api/chat", func(c *gin.Context) {
		var req struct {
			Message string `json:"message" binding:"required"`
			UserID  string `json:"user_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"content": "response"})
	})

	// Missing required fields
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/chat", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatEndpoint_DisabledWithoutCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Mirrors the registration path when no API key is configured
	router.POST("/api/chat", func(c *gin.Context) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat is disabled"})
	})

	w := httptest.NewRecorder()
	body := []byte(`{"message": "hi", "user_id": "u1"}`)
	req, _ := http.NewRequest("POST", "/api/chat", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
