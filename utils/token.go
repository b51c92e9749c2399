package utils

import (
	"TandoorMate/config/environment"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateConversationToken signs a bearer token carrying the conversation id.
func GenerateConversationToken(conversationID string) (string, error) {
	claims := jwt.MapClaims{
		"conversation_id": conversationID,
		"iat":             time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(environment.GetTokenSecret()))
}

// ParseConversationToken verifies the token and returns the conversation id.
func ParseConversationToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(environment.GetTokenSecret()), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}
	conversationID, ok := claims["conversation_id"].(string)
	if !ok || conversationID == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return conversationID, nil
}
