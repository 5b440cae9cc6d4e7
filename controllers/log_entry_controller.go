package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/westeen/Medala-v3/services"

	"github.com/gin-gonic/gin"
)

// Public response shapes for the logging endpoints. Identical to the
// extraction contracts today, but kept separate so either side can change.
type MealLogResponse struct {
	Calories      int    `json:"calories"`
	Protein       int    `json:"protein"`
	Fat           int    `json:"fat"`
	Carbohydrates int    `json:"carbohydrates"`
	Description   string `json:"description"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type LogEntryController struct {
	logs *services.LogService
}

func NewLogEntryController(logs *services.LogService) *LogEntryController {
	return &LogEntryController{logs: logs}
}

func (ctl *LogEntryController) LogMeals(c *gin.Context) {
	text := c.PostForm("text")
	files, err := readUploads(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	extracted, err := ctl.logs.LogMeal(c.Request.Context(), text, files)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, MealLogResponse{
		Calories:      extracted.Calories,
		Protein:       extracted.Protein,
		Fat:           extracted.Fat,
		Carbohydrates: extracted.Carbohydrates,
		Description:   extracted.Description,
	})
}

func (ctl *LogEntryController) LogDocs(c *gin.Context) {
	files, err := readUploads(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	extracted, err := ctl.logs.LogDocs(c.Request.Context(), files)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, SummaryResponse{Summary: extracted.Summary})
}

func (ctl *LogEntryController) LogGeneralText(c *gin.Context) {
	extracted, err := ctl.logs.LogGeneralText(c.Request.Context(), c.PostForm("text"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, SummaryResponse{Summary: extracted.Summary})
}

func (ctl *LogEntryController) LogGeneralVoice(c *gin.Context) {
	files, err := readUploads(c)
	if err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	extracted, err := ctl.logs.LogGeneralVoice(c.Request.Context(), files)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, SummaryResponse{Summary: extracted.Summary})
}

// readUploads drains the "files" multipart field. Files are optional on
// every endpoint, so a non-multipart request is not an error.
func readUploads(c *gin.Context) ([]services.Attachment, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	var attachments []services.Attachment
	for _, header := range form.File["files"] {
		f, err := header.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, services.Attachment{
			Filename: header.Filename,
			Data:     data,
		})
	}
	return attachments, nil
}
