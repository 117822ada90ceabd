package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/utils"
)

// Scheduler menjalankan pekerjaan rumah tangga periodik. Saat ini hanya
// satu: memangkas change feed supaya tabelnya tidak tumbuh tanpa batas.
type Scheduler struct {
	DB        *gorm.DB
	Retention time.Duration

	cron *cron.Cron
}

func NewScheduler(db *gorm.DB) *Scheduler {
	return &Scheduler{
		DB:        db,
		Retention: 24 * time.Hour,
		cron:      cron.New(),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.PruneChangeLogs); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// PruneChangeLogs menghapus entri change feed yang lebih tua dari masa
// retensi. Klien polling hanya peduli pada perubahan sejak fetch terakhir,
// jadi entri lama tidak pernah dibaca lagi.
func (s *Scheduler) PruneChangeLogs() {
	cutoff := time.Now().UTC().Add(-s.Retention)

	res := s.DB.Where("changed_at < ?", cutoff).Delete(&models.ChangeLog{})
	if res.Error != nil {
		utils.ErrorLogger.Printf("Scheduler: failed to prune change logs: %v", res.Error)
		return
	}
	if res.RowsAffected > 0 {
		utils.InfoLogger.Printf("Scheduler: pruned %d change log entries older than %s",
			res.RowsAffected, cutoff.Format(time.RFC3339))
	}
}
