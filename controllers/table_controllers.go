package controllers

import (
	"net/http"

	"github.com/cafefausse/reservation-api/services"
	"github.com/cafefausse/reservation-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TableController melayani info ketersediaan meja. Pool meja adalah
// konstanta (1..TotalTables), bukan entitas tersendiri, jadi tidak ada CRUD
// meja; yang ada hanya endpoint read-only untuk staff.
type TableController struct {
	DB        *gorm.DB
	Allocator *services.Allocator
}

func NewTableController(db *gorm.DB, allocator *services.Allocator) *TableController {
	return &TableController{DB: db, Allocator: allocator}
}

// GetAvailability -> daftar meja yang masih kosong untuk satu time slot
func (tc *TableController) GetAvailability(c *gin.Context) {
	slotParam := c.Query("time_slot")
	if slotParam == "" {
		utils.RespondFailure(c, utils.Validationf("time_slot query parameter is required"))
		return
	}

	slot, err := utils.ParseTimeSlot(slotParam)
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	available, err := tc.Allocator.AvailableTables(tc.DB, slot, "")
	if err != nil {
		utils.RespondFailure(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Table availability", gin.H{
		"time_slot":        slot,
		"available_tables": available,
		"total_tables":     tc.Allocator.TotalTables,
	})
}
