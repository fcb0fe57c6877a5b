package services

import (
	"log"
	"repboard/internal/db"
	"repboard/internal/ledger"
	"repboard/internal/models"
)

// Recorder 将核心账本发出的动作记录落库，供 /admin/actions 查询。
// Notify 在账本持锁期间被同步调用，所以落库动作放到 goroutine 里执行，
// 账本侧永远不会被数据库阻塞。
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// Notify implements ledger.Notifier.
func (r *Recorder) Notify(a ledger.Action) {
	go func() {
		entry := models.ActionLog{
			Kind:       string(a.Kind),
			ItemID:     a.ItemID,
			Actor:      uint64(a.Actor),
			Label:      a.Label,
			Reputation: a.Reputation,
		}
		if err := db.DB.Create(&entry).Error; err != nil {
			log.Printf("Failed to record action %s/%d: %v", a.Kind, a.ItemID, err)
		}
	}()
}

// RecentActions 按时间倒序返回一页动作流水
func RecentActions(page, perPage int) ([]models.ActionLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 50
	}

	var total int64
	if err := db.DB.Model(&models.ActionLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.ActionLog
	err := db.DB.Order("created_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&logs).Error
	return logs, total, err
}
