package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolify/internal/domain"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type profileRequest struct {
	Name          *string `json:"name"`
	Classe        *string `json:"classe"`
	Etablissement *string `json:"etablissement"`
	DateNaissance *string `json:"dateNaissance"`
	ProfileImage  *string `json:"profileImage"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.Name)
	if err != nil {
		h.respondError(c, err, "Utilisateur non trouvé")
		return
	}

	token, ok := h.startSession(c, user.ID)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	user, err := h.users.VerifyCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err, "Identifiants invalides")
		return
	}

	if _, ok := h.startSession(c, user.ID); !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userToResponse(user)})
}

func (h *Handler) logout(c *gin.Context) {
	h.transport.Clear(c.Writer)
	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}

func (h *Handler) me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, err, "Utilisateur non trouvé")
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), currentUserID(c), domain.ProfileUpdate{
		Name:          req.Name,
		Classe:        req.Classe,
		Etablissement: req.Etablissement,
		DateNaissance: req.DateNaissance,
		ProfileImage:  req.ProfileImage,
	})
	if err != nil {
		h.respondError(c, err, "Utilisateur non trouvé")
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badBody(c)
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), currentUserID(c), req.CurrentPassword, req.NewPassword); err != nil {
		h.respondError(c, err, "Utilisateur non trouvé")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mot de passe modifié"})
}

// startSession issues a token for userID and sets it on the session cookie.
func (h *Handler) startSession(c *gin.Context, userID string) (string, bool) {
	token, err := h.tokens.Issue(userID)
	if err != nil {
		h.respondError(c, err, "")
		return "", false
	}
	h.transport.Set(c.Writer, token)
	return token, true
}
