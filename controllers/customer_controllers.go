package controllers

import (
	"errors"
	"net/http"

	"github.com/cafefausse/reservation-api/models"
	"github.com/cafefausse/reservation-api/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

// GetAllCustomers -> Mendapatkan semua customer
func (cc *CustomerController) GetAllCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := cc.DB.Find(&customers).Error; err != nil {
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of customers", customers)
}

// CreateCustomer -> Membuat record Customer baru
func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	type reqBody struct {
		Name             string `json:"name"`
		Email            string `json:"email"`
		PhoneNumber      string `json:"phone_number"`
		NewsletterSignup bool   `json:"newsletter_signup"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFailure(c, utils.Validationf("invalid request body: %v", err))
		return
	}

	if req.Name == "" || req.Email == "" {
		utils.RespondFailure(c, utils.Validationf("name and email are required"))
		return
	}

	// Cek email sudah dipakai atau belum sebelum menulis
	var count int64
	if err := cc.DB.Model(&models.Customer{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}
	if count > 0 {
		utils.RespondFailure(c, utils.Conflictf("email %s is already in use", req.Email))
		return
	}

	customer := models.Customer{
		Name:             req.Name,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		NewsletterSignup: req.NewsletterSignup,
	}

	if err := cc.DB.Create(&customer).Error; err != nil {
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	utils.InfoLogger.Printf("New customer created: %s (%s)", customer.Name, customer.Email)
	utils.RespondJSON(c, http.StatusCreated, "Customer created", customer)
}

// GetCustomerByID -> Menampilkan detail 1 customer
func (cc *CustomerController) GetCustomerByID(c *gin.Context) {
	customerID := c.Param("customer_id")

	var customer models.Customer
	if err := cc.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondFailure(c, utils.NotFoundf("customer %s not found", customerID))
			return
		}
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer detail", customer)
}

// UpdateCustomer -> Update sebagian field customer.
// Field string hanya diterapkan kalau ada DAN tidak kosong; string kosong
// diperlakukan sama dengan field yang tidak dikirim (perilaku warisan,
// tercakup di tes).
func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	type reqBody struct {
		Name             *string `json:"name"`
		Email            *string `json:"email"`
		PhoneNumber      *string `json:"phone_number"`
		NewsletterSignup *bool   `json:"newsletter_signup"`
	}

	var req reqBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondFailure(c, utils.Validationf("invalid request body: %v", err))
		return
	}

	var customer models.Customer
	if err := cc.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondFailure(c, utils.NotFoundf("customer %s not found", customerID))
			return
		}
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	if req.Name != nil && *req.Name != "" {
		customer.Name = *req.Name
	}
	if req.Email != nil && *req.Email != "" && *req.Email != customer.Email {
		// Email baru harus tetap unik antar customer
		var count int64
		if err := cc.DB.Model(&models.Customer{}).Where("email = ? AND id <> ?", *req.Email, customer.ID).Count(&count).Error; err != nil {
			utils.RespondFailure(c, utils.StorageErr(err))
			return
		}
		if count > 0 {
			utils.RespondFailure(c, utils.Conflictf("email %s is already in use", *req.Email))
			return
		}
		customer.Email = *req.Email
	}
	if req.PhoneNumber != nil && *req.PhoneNumber != "" {
		customer.PhoneNumber = *req.PhoneNumber
	}
	if req.NewsletterSignup != nil {
		customer.NewsletterSignup = *req.NewsletterSignup
	}

	if err := cc.DB.Save(&customer).Error; err != nil {
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Customer updated", customer)
}

// DeleteCustomer -> Menghapus customer. Ditolak selama customer masih punya
// reservasi.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	var customer models.Customer
	if err := cc.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondFailure(c, utils.NotFoundf("customer %s not found", customerID))
			return
		}
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	var reservations int64
	if err := cc.DB.Model(&models.Reservation{}).Where("customer_id = ?", customerID).Count(&reservations).Error; err != nil {
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}
	if reservations > 0 {
		utils.RespondFailure(c, utils.Conflictf("cannot delete customer with active reservations"))
		return
	}

	if err := cc.DB.Delete(&customer).Error; err != nil {
		utils.RespondFailure(c, utils.StorageErr(err))
		return
	}

	utils.InfoLogger.Printf("Customer %s deleted", customerID)
	utils.RespondJSON(c, http.StatusOK, "Customer deleted", gin.H{"id": customerID})
}
