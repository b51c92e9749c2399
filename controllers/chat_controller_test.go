package controllers

import (
	"TandoorMate/middleware"
	"TandoorMate/models"
	"TandoorMate/services"
	"TandoorMate/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newChatRouter() (*gin.Engine, *services.SessionService) {
	gin.SetMode(gin.TestMode)

	catalog := models.NewCatalog([]models.Restaurant{
		{
			Name:    "Royal Tandoor",
			City:    "Mumbai",
			Cuisine: "Indian",
			Rating:  4.7,
			Menu:    []models.MenuItem{{Name: "Butter Chicken", Price: 350}},
		},
	})
	controller := &ChatController{
		DialogService:  services.NewDialogService(catalog),
		SessionService: services.NewSessionService(),
	}

	router := gin.New()
	router.POST("/v1/chat", middleware.AuthMiddleware(), controller.Chat)
	return router, controller.SessionService
}

func postChat(t *testing.T, router *gin.Engine, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestChatRunsOneTurn(t *testing.T) {
	router, sessions := newChatRouter()

	conversationID := sessions.Create()
	token, err := utils.GenerateConversationToken(conversationID)
	if err != nil {
		t.Fatalf("GenerateConversationToken: %v", err)
	}

	w := postChat(t, router, token, `{"message": "hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, "Royal Tandoor Assistant!") {
		t.Errorf("expected the main menu reply, got: %s", body)
	}
}

func TestChatEndedConversationReturnsNotFound(t *testing.T) {
	router, sessions := newChatRouter()

	conversationID := sessions.Create()
	token, err := utils.GenerateConversationToken(conversationID)
	if err != nil {
		t.Fatalf("GenerateConversationToken: %v", err)
	}
	sessions.End(conversationID)

	w := postChat(t, router, token, `{"message": "hi"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("got status %d, want 404", w.Code)
	}
}

func TestChatMissingMessageReturnsBadRequest(t *testing.T) {
	router, sessions := newChatRouter()

	conversationID := sessions.Create()
	token, err := utils.GenerateConversationToken(conversationID)
	if err != nil {
		t.Fatalf("GenerateConversationToken: %v", err)
	}

	w := postChat(t, router, token, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", w.Code)
	}
}

func TestChatWithoutTokenReturnsUnauthorized(t *testing.T) {
	router, _ := newChatRouter()

	w := postChat(t, router, "", `{"message": "hi"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", w.Code)
	}
}
