package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username doesn't exist, so a miss
// costs the same bcrypt time as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), bcrypt.DefaultCost)

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, bool) {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	token = strings.TrimSpace(token)
	return token, found && token != ""
}

// checkPassword looks the user up and verifies the password. Unknown users
// and wrong passwords both return errNotFound.
func (h *Handler) checkPassword(c *gin.Context, username, password string) (user, error) {
	u, err := h.store.UserByUsername(c, username)
	hash := dummyHash
	if err == nil {
		hash = []byte(u.Password)
	}
	mismatch := bcrypt.CompareHashAndPassword(hash, []byte(password))
	switch {
	case err != nil:
		return user{}, err
	case mismatch != nil:
		return user{}, errNotFound
	}
	return u, nil
}

// login returns the user's current auth token.
// POST /api/login (public). Body: { "username": "...", "password": "..." }.
func (h *Handler) login(c *gin.Context) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.checkPassword(c, body.Username, body.Password)
	if err != nil {
		if !errors.Is(err, errNotFound) {
			logrus.Errorf("[login] lookup %q: %v", body.Username, err)
		}
		apiError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": u.AuthToken, "user_id": u.ID})
}

// logout rotates the user's auth token, which signs out every client holding
// the old one. The next login returns the new token.
// POST /api/logout. Returns 204.
func (h *Handler) logout(c *gin.Context) {
	userID := c.GetInt("user_id")
	if err := h.store.RotateToken(c, userID, h.newToken()); err != nil {
		logrus.Errorf("[logout] user %d: %v", userID, err)
		apiError(c, http.StatusInternalServerError, "failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// authMiddleware resolves the bearer token to a user and sets user_id on the context.
func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			apiError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}

		userID, err := h.store.UserIDForToken(c, token)
		if err != nil {
			if !errors.Is(err, errNotFound) {
				logrus.Errorf("[authMiddleware] token lookup: %v", err)
			}
			apiError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}
