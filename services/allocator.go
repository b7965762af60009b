package services

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/cafefausse/reservation-api/models"
	"github.com/cafefausse/reservation-api/utils"
	"gorm.io/gorm"
)

// DefaultTotalTables adalah jumlah meja di pool kalau tidak dikonfigurasi.
// Meja diberi nomor 1..TotalTables.
const DefaultTotalTables = 30

// Allocator menangani penempatan meja untuk reservasi: untuk satu time slot,
// kumpulkan meja yang sudah terisi, dan pilih satu meja kosong secara acak.
// Slot dibandingkan dengan kesamaan nilai persis, bukan overlap.
type Allocator struct {
	db          *gorm.DB
	TotalTables int

	// ExemptSelf mengubah perilaku Reschedule: kalau true, meja milik
	// reservasi yang sedang di-update tidak dihitung sebagai terisi.
	// Default false: pindah ke slot yang sama bisa gagal "no tables
	// available" walaupun satu-satunya meja terisi adalah miliknya sendiri.
	ExemptSelf bool

	mu  sync.Mutex
	rng *rand.Rand
}

// NewAllocator membuat Allocator dengan sumber acak yang di-seed dari jam.
func NewAllocator(db *gorm.DB, totalTables int) *Allocator {
	if totalTables <= 0 {
		totalTables = DefaultTotalTables
	}
	return &Allocator{
		db:          db,
		TotalTables: totalTables,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed mengganti seed sumber acak. Dipakai tes supaya pemilihan meja
// reproducible.
func (a *Allocator) Seed(seed int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rng = rand.New(rand.NewSource(seed))
}

// AvailableTables -> daftar nomor meja yang masih kosong pada slot tersebut.
// exemptID (boleh kosong) mengecualikan satu reservasi dari scan.
func (a *Allocator) AvailableTables(tx *gorm.DB, slot time.Time, exemptID string) ([]int, error) {
	query := tx.Model(&models.Reservation{}).Where("time_slot = ?", slot)
	if exemptID != "" {
		query = query.Where("id <> ?", exemptID)
	}

	var occupied []int
	if err := query.Pluck("table_number", &occupied).Error; err != nil {
		return nil, utils.StorageErr(err)
	}

	taken := make(map[int]bool, len(occupied))
	for _, n := range occupied {
		taken[n] = true
	}

	available := make([]int, 0, a.TotalTables)
	for n := 1; n <= a.TotalTables; n++ {
		if !taken[n] {
			available = append(available, n)
		}
	}

	utils.InfoLogger.Debugf("slot %s: %d occupied, %d available",
		slot.Format(time.RFC3339), len(occupied), len(available))
	return available, nil
}

// pickTable memilih satu meja secara uniform random dari daftar meja kosong.
// Tidak ada urutan preferensi (bukan lowest-numbered); klien tidak boleh
// bergantung pada meja mana yang keluar.
func (a *Allocator) pickTable(available []int) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return available[a.rng.Intn(len(available))]
}

// Reserve membuat reservasi baru: cek customer ada, scan meja terisi pada
// slot, pilih meja kosong, lalu simpan. Scan dan insert berjalan dalam satu
// transaksi supaya dua request bersamaan tidak merebut meja terakhir yang
// sama.
func (a *Allocator) Reserve(customerID string, slot time.Time) (*models.Reservation, error) {
	var reservation *models.Reservation

	err := a.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, "id = ?", customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundf("customer %s not found", customerID)
			}
			return utils.StorageErr(err)
		}

		available, err := a.AvailableTables(tx, slot, "")
		if err != nil {
			return err
		}
		if len(available) == 0 {
			return utils.Conflictf("no tables available for this time slot")
		}

		res := models.Reservation{
			CustomerID:  customerID,
			TimeSlot:    slot,
			TableNumber: a.pickTable(available),
		}
		if err := tx.Create(&res).Error; err != nil {
			return utils.StorageErr(err)
		}
		reservation = &res
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %s: table %d at %s for customer %s",
		reservation.ID, reservation.TableNumber, reservation.TimeSlot.Format(time.RFC3339), customerID)
	return reservation, nil
}

// Reschedule memindahkan reservasi ke slot baru dan memilih ulang meja.
// Scan ketersediaan dihitung terhadap SEMUA record saat ini; record yang
// sedang di-update ikut terhitung kecuali ExemptSelf aktif.
func (a *Allocator) Reschedule(reservationID string, slot time.Time) (*models.Reservation, error) {
	var reservation *models.Reservation

	err := a.db.Transaction(func(tx *gorm.DB) error {
		var res models.Reservation
		if err := tx.First(&res, "id = ?", reservationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundf("reservation %s not found", reservationID)
			}
			return utils.StorageErr(err)
		}

		exemptID := ""
		if a.ExemptSelf {
			exemptID = res.ID
		}

		available, err := a.AvailableTables(tx, slot, exemptID)
		if err != nil {
			return err
		}
		if len(available) == 0 {
			return utils.Conflictf("no tables available for this time slot")
		}

		res.TimeSlot = slot
		res.TableNumber = a.pickTable(available)
		if err := tx.Save(&res).Error; err != nil {
			return utils.StorageErr(err)
		}
		reservation = &res
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Reservation %s moved to %s, table %d",
		reservation.ID, reservation.TimeSlot.Format(time.RFC3339), reservation.TableNumber)
	return reservation, nil
}
