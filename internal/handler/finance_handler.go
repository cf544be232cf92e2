package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/maemanahmaemanah39-collab/venaules/internal/model"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/csvutil"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/database"
	"github.com/maemanahmaemanah39-collab/venaules/pkg/logger"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// ListTransactions returns every transaction, optionally filtered by
// projectId or pocketId.
func ListTransactions(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("transaction", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	query := database.GetDB()
	if projectID := c.QueryParam("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if pocketID := c.QueryParam("pocketId"); pocketID != "" {
		query = query.Where("pocket_id = ?", pocketID)
	}

	var transactions []model.Transaction
	if result := query.Find(&transactions); result.Error != nil {
		log.Error("Failed to list transactions", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, transactions)
}

// CreateTransaction creates a transaction under the create timeout.
func CreateTransaction(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("transaction", "create")

	var transaction model.Transaction
	if err := c.Bind(&transaction); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	transaction.ID = ""

	ctx, cancel := context.WithTimeout(c.Request().Context(), createTimeout)
	defer cancel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().WithContext(ctx).Create(&transaction); result.Error != nil {
		if isTimeout(ctx, result.Error) {
			return timeoutJSON(c, "Timeout: Gagal menyimpan transaksi. Silakan coba lagi.")
		}
		log.Error("Failed to create transaction", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	log.Info("Transaction created", zap.String("id", transaction.ID), zap.String("type", transaction.Type))
	return c.JSON(http.StatusCreated, transaction)
}

// UpdateTransaction applies a partial update to a transaction.
func UpdateTransaction(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("transaction", "update")

	id := c.Param("id")

	var transaction model.Transaction
	if result := database.GetDB().Where("id = ?", id).First(&transaction); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Transaction not found"})
	}

	if err := c.Bind(&transaction); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	transaction.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&transaction); result.Error != nil {
		log.Error("Failed to update transaction", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction removes a transaction by id.
func DeleteTransaction(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("transaction", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.Transaction{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete transaction", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}

// ExportTransactionsCSV streams the transaction list as a timestamped CSV
// download.
func ExportTransactionsCSV(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("transaction", "export")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var transactions []model.Transaction
	if result := database.GetDB().Find(&transactions); result.Error != nil {
		log.Error("Failed to export transactions", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	export := csvutil.Export{
		Headers:          []string{"Tanggal", "Deskripsi", "Jenis", "Kategori", "Jumlah", "Metode"},
		Filename:         "daftar-transaksi.csv",
		IncludeTimestamp: true,
		IncludeHeaders:   true,
	}
	for _, t := range transactions {
		export.Rows = append(export.Rows, []string{
			t.Date, t.Description, t.Type, t.Category,
			csvutil.FormatAmount(t.Amount), t.Method,
		})
	}

	return writeCSV(c, export)
}

// ListCards returns every card.
func ListCards(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("card", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var cards []model.Card
	if result := database.GetDB().Find(&cards); result.Error != nil {
		log.Error("Failed to list cards", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, cards)
}

// CreateCard creates a card.
func CreateCard(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("card", "create")

	var card model.Card
	if err := c.Bind(&card); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	card.ID = ""

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&card); result.Error != nil {
		log.Error("Failed to create card", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, card)
}

// UpdateCard applies a partial update to a card.
func UpdateCard(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("card", "update")

	id := c.Param("id")

	var card model.Card
	if result := database.GetDB().Where("id = ?", id).First(&card); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Card not found"})
	}

	if err := c.Bind(&card); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	card.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&card); result.Error != nil {
		log.Error("Failed to update card", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, card)
}

// DeleteCard removes a card by id.
func DeleteCard(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("card", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.Card{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete card", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListFinancialPockets returns every financial pocket.
func ListFinancialPockets(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("financial_pocket", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var pockets []model.FinancialPocket
	if result := database.GetDB().Find(&pockets); result.Error != nil {
		log.Error("Failed to list financial pockets", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, pockets)
}

// CreateFinancialPocket creates a financial pocket.
func CreateFinancialPocket(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("financial_pocket", "create")

	var pocket model.FinancialPocket
	if err := c.Bind(&pocket); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	pocket.ID = ""

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().Create(&pocket); result.Error != nil {
		log.Error("Failed to create financial pocket", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusCreated, pocket)
}

// UpdateFinancialPocket applies a partial update to a financial pocket.
func UpdateFinancialPocket(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("financial_pocket", "update")

	id := c.Param("id")

	var pocket model.FinancialPocket
	if result := database.GetDB().Where("id = ?", id).First(&pocket); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Financial pocket not found"})
	}

	if err := c.Bind(&pocket); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	pocket.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&pocket); result.Error != nil {
		log.Error("Failed to update financial pocket", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, pocket)
}

// DeleteFinancialPocket removes a financial pocket by id.
func DeleteFinancialPocket(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("financial_pocket", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.FinancialPocket{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete financial pocket", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}
