package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fotopanel/internal/models/db_models"
	"fotopanel/internal/services"
	"fotopanel/pkg/middleware"
	"fotopanel/pkg/utils"
)

// actorFrom reads the identity set by JWTAuthMiddleware. It answers 401 and
// returns false when the claims are unusable.
func actorFrom(c *gin.Context) (services.Actor, bool) {
	userID, err := uuid.Parse(c.GetString(middleware.UserIDKey))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Oturum geçersiz")
		return services.Actor{}, false
	}

	actor := services.Actor{
		UserID: userID,
		Role:   db_models.Role(c.GetString(middleware.RoleKey)),
	}
	if raw := c.GetString(middleware.CustomerIDKey); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Oturum geçersiz")
			return services.Actor{}, false
		}
		actor.CustomerID = &customerID
	}
	return actor, true
}

func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Geçersiz kimlik")
		return uuid.Nil, false
	}
	return id, true
}
