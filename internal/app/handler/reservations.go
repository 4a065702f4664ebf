package handler

import (
	"errors"
	"net/http"
	"strconv"

	"littlelemon/internal/app/auth"
	"littlelemon/internal/app/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type reservationCreateDTO struct {
	Name            string `json:"name" binding:"required"`
	NumberOfGuests  int    `json:"numberOfGuests" binding:"required"`
	ReservationDate string `json:"reservationDate" binding:"required"` // YYYY-MM-DD
	ReservationTime string `json:"reservationTime" binding:"required"` // HH:MM
	SpecialRequests string `json:"specialRequests"`
}

type reservationUpdateDTO struct {
	Name            *string `json:"name"`
	NumberOfGuests  *int    `json:"numberOfGuests"`
	ReservationDate *string `json:"reservationDate"`
	ReservationTime *string `json:"reservationTime"`
	SpecialRequests *string `json:"specialRequests"`
}

func reservationErrStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrReservationTaken):
		return http.StatusConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// ApiListReservations godoc
// @Summary      List reservations
// @Description  Users see their own reservations, staff see all
// @Tags         Reservations
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} map[string]string
// @Failure      500 {object} map[string]string
// @Router       /api/reservations [get]
func (h *Handler) ApiListReservations(c *gin.Context) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	items, err := h.Repository.ListReservations(user.ID, user.IsStaff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// ApiGetReservation godoc
// @Summary      Get reservation by ID
// @Tags         Reservations
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Reservation ID"
// @Success      200 {object} repository.Reservation
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/reservations/{id} [get]
func (h *Handler) ApiGetReservation(c *gin.Context) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	res, err := h.Repository.GetReservation(user.ID, user.IsStaff, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ApiCreateReservation godoc
// @Summary      Create reservation
// @Description  Book a table: 1-20 guests, date not in the past, time within 11:00-22:00, one booking per user per slot
// @Tags         Reservations
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body reservationCreateDTO true "Reservation data"
// @Success      201 {object} repository.Reservation
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      409 {object} map[string]string
// @Router       /api/reservations [post]
func (h *Handler) ApiCreateReservation(c *gin.Context) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	var in reservationCreateDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	res, err := h.Repository.CreateReservation(user.ID, in.Name, in.ReservationDate, in.ReservationTime, in.SpecialRequests, in.NumberOfGuests)
	if err != nil {
		c.JSON(reservationErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ApiUpdateReservation godoc
// @Summary      Update reservation
// @Description  Update own reservation, validation re-runs over the merged state
// @Tags         Reservations
// @Security     BearerAuth
// @Accept       json
// @Param        id path int true "Reservation ID"
// @Param        request body reservationUpdateDTO true "Update data"
// @Success      204
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/reservations/{id} [put]
func (h *Handler) ApiUpdateReservation(c *gin.Context) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var in reservationUpdateDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
		return
	}
	if err := h.Repository.UpdateReservation(user.ID, user.IsStaff, id, in.Name, in.ReservationDate, in.ReservationTime, in.SpecialRequests, in.NumberOfGuests); err != nil {
		c.JSON(reservationErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ApiDeleteReservation godoc
// @Summary      Delete reservation
// @Tags         Reservations
// @Security     BearerAuth
// @Param        id path int true "Reservation ID"
// @Success      204
// @Failure      400 {object} map[string]string
// @Failure      401 {object} map[string]string
// @Failure      404 {object} map[string]string
// @Router       /api/reservations/{id} [delete]
func (h *Handler) ApiDeleteReservation(c *gin.Context) {
	user, err := auth.GetUserFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.Repository.DeleteReservation(user.ID, user.IsStaff, id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
