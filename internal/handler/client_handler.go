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
	"github.com/maemanahmaemanah39-collab/venaules/pkg/security"
	"github.com/maemanahmaemanah39-collab/venaules/prometheus"
)

// ListClients returns every client record.
func ListClients(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("client", "list")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var clients []model.Client
	if result := database.GetDB().Find(&clients); result.Error != nil {
		log.Error("Failed to list clients", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, clients)
}

// CreateClient creates a client. The insert runs under the create timeout
// and newly created clients get a portal access id when none is supplied.
func CreateClient(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("client", "create")

	var client model.Client
	if err := c.Bind(&client); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	client.ID = ""

	if client.PortalAccessID == "" {
		token, err := security.GenerateSecureToken(21)
		if err != nil {
			log.Error("Failed to generate portal access id", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create client"})
		}
		client.PortalAccessID = token
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), createTimeout)
	defer cancel()

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if result := database.GetDB().WithContext(ctx).Create(&client); result.Error != nil {
		if isTimeout(ctx, result.Error) {
			return timeoutJSON(c, "Timeout: Gagal menyimpan data klien. Silakan coba lagi.")
		}
		log.Error("Failed to create client", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	log.Info("Client created", zap.String("id", client.ID), zap.String("name", client.Name))
	return c.JSON(http.StatusCreated, client)
}

// UpdateClient applies a partial update: only fields present in the request
// body overwrite the stored record.
func UpdateClient(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("client", "update")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("query")(time.Now())
	var client model.Client
	if result := database.GetDB().Where("id = ?", id).First(&client); result.Error != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Client not found"})
	}

	if err := c.Bind(&client); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}
	client.ID = id

	defer prometheus.TrackDBOperation("update")(time.Now())
	if result := database.GetDB().Save(&client); result.Error != nil {
		log.Error("Failed to update client", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.JSON(http.StatusOK, client)
}

// DeleteClient removes a client by id.
func DeleteClient(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("client", "delete")

	id := c.Param("id")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if result := database.GetDB().Delete(&model.Client{}, "id = ?", id); result.Error != nil {
		log.Error("Failed to delete client", zap.String("id", id), zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}
	return c.NoContent(http.StatusNoContent)
}

// ExportClientsCSV streams the client list as a timestamped CSV download.
func ExportClientsCSV(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RecordEntityOperation("client", "export")
	defer prometheus.TrackDBOperation("query")(time.Now())

	var clients []model.Client
	if result := database.GetDB().Find(&clients); result.Error != nil {
		log.Error("Failed to export clients", zap.Error(result.Error))
		return dbErrorJSON(c, result.Error)
	}

	export := csvutil.Export{
		Headers:          []string{"Nama", "Email", "Telepon", "WhatsApp", "Instagram", "Status", "Tipe Klien", "Klien Sejak", "Kontak Terakhir"},
		Filename:         "daftar-klien.csv",
		IncludeTimestamp: true,
		IncludeHeaders:   true,
	}
	for _, cl := range clients {
		export.Rows = append(export.Rows, []string{
			cl.Name, cl.Email, cl.Phone, cl.Whatsapp, cl.Instagram,
			cl.Status, cl.ClientType, cl.Since, cl.LastContact,
		})
	}

	return writeCSV(c, export)
}

// writeCSV sets the download headers and renders an export to the response.
func writeCSV(c echo.Context, export csvutil.Export) error {
	filename := csvutil.FinalFilename(export, time.Now())
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Response().WriteHeader(http.StatusOK)
	return csvutil.Write(c.Response(), export)
}
