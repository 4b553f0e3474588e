package controllers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"go_fileapi_backend/models"
	"go_fileapi_backend/queue"
	"go_fileapi_backend/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FileController handles file upload and retrieval requests
type FileController struct {
	db    *gorm.DB
	queue *queue.FileQueue
	store *services.FileStore
}

// NewFileController creates a new file controller
func NewFileController(db *gorm.DB, q *queue.FileQueue, store *services.FileStore) *FileController {
	return &FileController{db: db, queue: q, store: store}
}

// UploadFile accepts a multipart upload and enqueues it for persistence.
// The file only reaches disk and the database when the scheduler flushes
// the queue.
// POST /upload-file/
func (fc *FileController) UploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		unprocessable(c, missingDetail([]string{"body", "file"}, nil))
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to read file"})
		return
	}
	defer f.Close()

	contents, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to read file"})
		return
	}

	fc.queue.Put(queue.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Extension:   strings.TrimPrefix(filepath.Ext(header.Filename), "."),
		Size:        header.Size,
		SizeKB:      decimal.NewFromInt(header.Size).Div(decimal.NewFromInt(1024)),
		Contents:    contents,
	})

	c.JSON(http.StatusOK, gin.H{
		"filename": header.Filename,
		"status":   "File added to upload queue",
	})
}

// GetFiles returns all persisted files
// GET /files
func (fc *FileController) GetFiles(c *gin.Context) {
	files := []models.File{}
	if err := fc.db.Order("created_at").Find(&files).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch files"})
		return
	}

	c.JSON(http.StatusOK, files)
}

// GetFile returns a single file by ID
// GET /files/:id
func (fc *FileController) GetFile(c *gin.Context) {
	id := c.Param("id")

	var file models.File
	if err := fc.db.First(&file, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "File not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch file"})
		return
	}

	c.JSON(http.StatusOK, file)
}

// DeleteFile deletes a file row and its copy on disk
// DELETE /files/:id
func (fc *FileController) DeleteFile(c *gin.Context) {
	id := c.Param("id")

	var file models.File
	if err := fc.db.First(&file, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "File not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch file"})
		return
	}

	if err := fc.db.Delete(&file).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to delete file"})
		return
	}
	// A row without a disk copy is fine, Remove tolerates it
	if err := fc.store.Remove(file.Path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to delete file from disk"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted successfully"})
}

// DeleteFiles deletes multiple files and reports a result per ID
// DELETE /files/
func (fc *FileController) DeleteFiles(c *gin.Context) {
	var ids []string
	if err := c.ShouldBindJSON(&ids); err != nil {
		unprocessable(c, missingDetail([]string{"body"}, nil))
		return
	}

	response := make([]gin.H, 0, len(ids))
	for _, id := range ids {
		var file models.File
		if err := fc.db.First(&file, "id = ?", id).Error; err != nil {
			response = append(response, gin.H{id: "File not found"})
			continue
		}

		if err := fc.db.Delete(&file).Error; err != nil {
			response = append(response, gin.H{id: "Failed to delete file"})
			continue
		}
		fc.store.Remove(file.Path)
		response = append(response, gin.H{id: "File deleted successfully"})
	}

	c.JSON(http.StatusOK, response)
}
