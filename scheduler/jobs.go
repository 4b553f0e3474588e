package scheduler

import (
	"log"
	"time"

	"go_fileapi_backend/config"
	"go_fileapi_backend/models"
	"go_fileapi_backend/queue"
	"go_fileapi_backend/services"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// Scheduler manages scheduled jobs
type Scheduler struct {
	cron     *gocron.Scheduler
	db       *gorm.DB
	queue    *queue.FileQueue
	store    *services.FileStore
	fileTTL  time.Duration
	maxUsers int
	maxItems int
}

// NewScheduler creates a new scheduler instance
func NewScheduler(db *gorm.DB, q *queue.FileQueue, store *services.FileStore, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron:     gocron.NewScheduler(time.UTC),
		db:       db,
		queue:    q,
		store:    store,
		fileTTL:  cfg.FileTTL,
		maxUsers: cfg.MaxUsers,
		maxItems: cfg.MaxItems,
	}
}

// Start starts all scheduled jobs
func (s *Scheduler) Start() {
	log.Println("Starting scheduler...")

	// Persist queued uploads every 4 minutes
	s.cron.Every(4).Minutes().Do(func() {
		s.flushUploadQueue()
	})

	// Expire stored files every 5 minutes
	s.cron.Every(5).Minutes().Do(func() {
		s.deleteOldFiles()
	})

	// Trim user and item tables every 10 minutes
	s.cron.Every(10).Minutes().Do(func() {
		s.trimExcessUsers()
	})
	s.cron.Every(10).Minutes().Do(func() {
		s.trimExcessItems()
	})

	s.cron.StartAsync()
	log.Println("Scheduler started successfully")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("Scheduler stopped")
}

// flushUploadQueue drains the upload queue to disk and the database
func (s *Scheduler) flushUploadQueue() {
	log.Println("Flushing upload queue...")

	for {
		upload, ok := s.queue.Get()
		if !ok {
			break
		}

		path, err := s.store.Save(upload.Filename, upload.Contents, time.Now())
		if err != nil {
			log.Printf("Error storing %s: %v", upload.Filename, err)
			continue
		}

		file := models.File{
			Filename:    upload.Filename,
			Path:        path,
			ContentType: upload.ContentType,
			Size:        upload.Size,
			SizeKB:      upload.SizeKB,
		}
		if err := s.db.Create(&file).Error; err != nil {
			log.Printf("Error saving file record for %s: %v", upload.Filename, err)
			continue
		}

		log.Printf("Uploaded file %s (ID: %s)", file.Filename, file.ID)
	}
}

// deleteOldFiles removes files older than the retention window. File age
// comes from the timestamp prefix the store writes into each path.
func (s *Scheduler) deleteOldFiles() {
	log.Println("Searching for old files...")

	var files []models.File
	if err := s.db.Find(&files).Error; err != nil {
		log.Printf("Error loading files: %v", err)
		return
	}

	now := time.Now()
	for _, file := range files {
		storedAt, err := s.store.StoredAt(file.Path)
		if err != nil {
			log.Printf("Skipping %s: %v", file.Path, err)
			continue
		}

		if now.Sub(storedAt) <= s.fileTTL {
			continue
		}

		if err := s.store.Remove(file.Path); err != nil {
			log.Printf("Error removing %s from disk: %v", file.Path, err)
			continue
		}
		if err := s.db.Delete(&models.File{}, "id = ?", file.ID).Error; err != nil {
			log.Printf("Error deleting file record %s: %v", file.ID, err)
			continue
		}

		log.Printf("Deleted file %s (ID: %s)", file.Filename, file.ID)
	}
}

// trimExcessUsers deletes the newest users beyond the configured cap
func (s *Scheduler) trimExcessUsers() {
	log.Println("Trimming excess users...")

	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		log.Printf("Error loading users: %v", err)
		return
	}

	if len(users) <= s.maxUsers {
		return
	}

	ids := make([]uint, 0, len(users)-s.maxUsers)
	for _, user := range users[s.maxUsers:] {
		ids = append(ids, user.ID)
	}

	// Items cascade via the foreign key
	if err := s.db.Delete(&models.User{}, ids).Error; err != nil {
		log.Printf("Error deleting excess users: %v", err)
		return
	}

	log.Printf("Deleted %d excess users", len(ids))
}

// trimExcessItems deletes the newest items beyond the configured cap
func (s *Scheduler) trimExcessItems() {
	log.Println("Trimming excess items...")

	var items []models.Item
	if err := s.db.Order("id").Find(&items).Error; err != nil {
		log.Printf("Error loading items: %v", err)
		return
	}

	if len(items) <= s.maxItems {
		return
	}

	ids := make([]uint, 0, len(items)-s.maxItems)
	for _, item := range items[s.maxItems:] {
		ids = append(ids, item.ID)
	}

	if err := s.db.Delete(&models.Item{}, ids).Error; err != nil {
		log.Printf("Error deleting excess items: %v", err)
		return
	}

	log.Printf("Deleted %d excess items", len(ids))
}
