package controllers

import (
	"errors"
	"net/http"

	"github.com/cafefausse/reservation-api/models"
	"github.com/cafefausse/reservation-api/services"
	"github.com/cafefausse/reservation-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReservationController struct {
	DB        *gorm.DB
	Allocator *services.Allocator
}

func NewReservationController(db *gorm.DB, allocator *services.Allocator) *ReservationController {
	return &ReservationController{DB: db, Allocator: allocator}
}

// GetAllReservations -> Mendapatkan semua reservasi
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := rc.DB.Find(&reservations).Error; err != nil {
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

// CreateReservation -> Membuat reservasi baru. Nomor meja tidak pernah
// dikirim klien; allocator yang memilih.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	type reqBody struct {
		CustomerID string `json:"customer_id"`
		TimeSlot   string `json:"time_slot"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFailure(c, utils.Validationf("invalid request body: %v", err))
		return
	}

	if req.CustomerID == "" || req.TimeSlot == "" {
		utils.RespondFailure(c, utils.Validationf("customer_id and time_slot are required"))
		return
	}

	slot, err := utils.ParseTimeSlot(req.TimeSlot)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	reservation, err := rc.Allocator.Reserve(req.CustomerID, slot)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// GetReservationsByCustomer -> Semua reservasi milik satu customer
func (rc *ReservationController) GetReservationsByCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	var customer models.Customer
	if err := rc.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondFailure(c, utils.NotFoundf("customer %s not found", customerID))
			return
		}
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	var reservations []models.Reservation
	if err := rc.DB.Where("customer_id = ?", customerID).Find(&reservations).Error; err != nil {
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservations for customer", reservations)
}

// GetReservationByID -> Detail satu reservasi
func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	reservationID := c.Param("reservation_id")

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, "id = ?", reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondFailure(c, utils.NotFoundf("reservation %s not found", reservationID))
			return
		}
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation detail", reservation)
}

// UpdateReservation -> Pindah reservasi ke time slot baru. Hanya time_slot
// yang bisa diubah; nomor meja dipilih ulang oleh allocator.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")

	type reqBody struct {
		TimeSlot string `json:"time_slot"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFailure(c, utils.Validationf("invalid request body: %v", err))
		return
	}

	if req.TimeSlot == "" {
		utils.RespondFailure(c, utils.Validationf("time_slot is required"))
		return
	}

	slot, err := utils.ParseTimeSlot(req.TimeSlot)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	reservation, err := rc.Allocator.Reschedule(reservationID, slot)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

// DeleteReservation -> Menghapus reservasi tanpa syarat tambahan
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	reservationID := c.Param("reservation_id")

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, "id = ?", reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondFailure(c, utils.NotFoundf("reservation %s not found", reservationID))
			return
		}
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	if err := rc.DB.Delete(&reservation).Error; err != nil {
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	utils.InfoLogger.Printf("Reservation %s deleted (table %d)", reservationID, reservation.TableNumber)
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{"id": reservationID})
}
