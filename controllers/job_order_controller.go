package controllers

import (
	"errors"

	"fiber-erp/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type JobOrderController struct {
	DB *gorm.DB
}

func NewJobOrderController(db *gorm.DB) *JobOrderController {
	return &JobOrderController{DB: db}
}

func (c *JobOrderController) CreateJobOrder(ctx *fiber.Ctx) error {
	var jobInput struct {
		CustomerCode     string  `json:"customer_code" validate:"required"`
		OrderType        string  `json:"order_type" validate:"required,oneof=local export"`
		Incoterm         string  `json:"incoterm"`
		ProductSummary   string  `json:"product_summary"`
		TotalWeightMT    float64 `json:"total_weight_mt" validate:"gt=0"`
		ContainerCount   int     `json:"container_count" validate:"gte=0"`
		ContainerType    string  `json:"container_type"`
		DeliveryDate     string  `json:"delivery_date"`
		ExpectedDelivery string  `json:"expected_delivery"`
	}

	if err := ctx.BodyParser(&jobInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(jobInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var customer models.Customer
	if err := c.DB.Where("customer_code = ?", jobInput.CustomerCode).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Customer not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userID := int(ctx.Locals("userID").(float64))

	var job models.JobOrder
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		jobNumber, err := generateDocumentNumber(tx, "job_orders", "job_number", "JOB")
		if err != nil {
			return err
		}

		job = models.JobOrder{
			JobNumber:        jobNumber,
			CustomerCode:     customer.CustomerCode,
			CustomerName:     customer.CustomerName,
			Status:           models.JobStatusOpen,
			OrderType:        jobInput.OrderType,
			Incoterm:         jobInput.Incoterm,
			ProductSummary:   jobInput.ProductSummary,
			TotalWeightMT:    jobInput.TotalWeightMT,
			ContainerCount:   jobInput.ContainerCount,
			ContainerType:    jobInput.ContainerType,
			DeliveryDate:     jobInput.DeliveryDate,
			ExpectedDelivery: jobInput.ExpectedDelivery,
			CreatedBy:        userID,
		}

		return tx.Create(&job).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job order created successfully", "data": job})
}

func (c *JobOrderController) GetAllJobOrders(ctx *fiber.Ctx) error {
	var jobs []models.JobOrder

	query := c.DB.Model(&models.JobOrder{})
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if orderType := ctx.Query("order_type"); orderType != "" {
		query = query.Where("order_type = ?", orderType)
	}

	if err := query.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job orders found", "data": jobs})
}

func (c *JobOrderController) GetJobOrderByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var job models.JobOrder
	if err := c.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job order found", "data": job})
}

func (c *JobOrderController) UpdateJobOrderStatus(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	status := ctx.Query("status")
	allowed := map[string]bool{
		models.JobStatusOpen:             true,
		models.JobStatusProcessing:       true,
		models.JobStatusReadyForDispatch: true,
		models.JobStatusDispatched:       true,
		models.JobStatusCompleted:        true,
	}
	if !allowed[status] {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status: " + status})
	}

	var job models.JobOrder
	if err := c.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Job order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	job.Status = status
	job.UpdatedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Save(&job).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Job order status updated", "data": job})
}
