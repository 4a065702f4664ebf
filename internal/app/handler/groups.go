package handler

import (
	"net/http"
	"strconv"

	"littlelemon/internal/app/repository"

	"github.com/gin-gonic/gin"
)

type groupUserDTO struct {
	Username string `json:"username" binding:"required"`
}

func (h *Handler) listGroupUsers(c *gin.Context, groupName string) {
	users, err := h.Repository.ListGroupUsers(groupName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": users})
}

func (h *Handler) addGroupUser(c *gin.Context, groupName string) {
	var in groupUserDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}
	if err := h.Repository.AddUserToGroup(in.Username, groupName); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "user " + in.Username + " added to " + groupName + " group"})
}

func (h *Handler) removeGroupUser(c *gin.Context, groupName string) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	username, err := h.Repository.RemoveUserFromGroup(id, groupName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user " + username + " removed from " + groupName + " group"})
}

// ApiListManagers godoc
// @Summary      List managers
// @Description  List all users in the Manager group (staff only)
// @Tags         Groups
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      403 {object} map[string]string
// @Router       /api/groups/manager/users [get]
func (h *Handler) ApiListManagers(c *gin.Context) {
	h.listGroupUsers(c, repository.GroupManager)
}

// ApiAddManager godoc
// @Summary      Add manager
// @Description  Add user to the Manager group by username (staff only)
// @Tags         Groups
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body groupUserDTO true "Username"
// @Success      201 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/groups/manager/users [post]
func (h *Handler) ApiAddManager(c *gin.Context) {
	h.addGroupUser(c, repository.GroupManager)
}

// ApiRemoveManager godoc
// @Summary      Remove manager
// @Description  Remove user from the Manager group (staff only)
// @Tags         Groups
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/groups/manager/users/{id} [delete]
func (h *Handler) ApiRemoveManager(c *gin.Context) {
	h.removeGroupUser(c, repository.GroupManager)
}

// ApiListDeliveryCrew godoc
// @Summary      List delivery crew
// @Description  List all users in the Delivery crew group (manager only)
// @Tags         Groups
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      403 {object} map[string]string
// @Router       /api/groups/delivery-crew/users [get]
func (h *Handler) ApiListDeliveryCrew(c *gin.Context) {
	h.listGroupUsers(c, repository.GroupDeliveryCrew)
}

// ApiAddDeliveryCrew godoc
// @Summary      Add delivery crew member
// @Description  Add user to the Delivery crew group by username (manager only)
// @Tags         Groups
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body groupUserDTO true "Username"
// @Success      201 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/groups/delivery-crew/users [post]
func (h *Handler) ApiAddDeliveryCrew(c *gin.Context) {
	h.addGroupUser(c, repository.GroupDeliveryCrew)
}

// ApiRemoveDeliveryCrew godoc
// @Summary      Remove delivery crew member
// @Description  Remove user from the Delivery crew group (manager only)
// @Tags         Groups
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/groups/delivery-crew/users/{id} [delete]
func (h *Handler) ApiRemoveDeliveryCrew(c *gin.Context) {
	h.removeGroupUser(c, repository.GroupDeliveryCrew)
}
