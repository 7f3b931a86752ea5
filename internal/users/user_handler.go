package users

import (
	"errors"
	"net/http"

	custom_error "facility/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UsersHandler struct {
	Repository UserRepository
	Logger     *zap.Logger
}

func NewHandler(r UserRepository, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{
		Repository: r,
		Logger:     logger,
	}
}

func (h *UsersHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/users", h.GetUserList)
	router.GET("/users/:id", h.GetUser)
}

func (h *UsersHandler) GetUserList(c *gin.Context) {
	users, err := h.Repository.GetUsers()
	if err != nil {
		h.Logger.Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get users", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UsersHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID", "details": err.Error()})
		return
	}

	user, err := h.Repository.GetUser(id)
	if err != nil {
		var notFound *custom_error.NotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find user", "code": "USER_NOT_FOUND"})
			return
		}
		h.Logger.Error("failed to get user", zap.String("user_id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to get user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
