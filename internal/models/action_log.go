package models

import (
	"time"
)

// ActionLog 动作流水：核心账本每次成功变更产生一条，供外部索引器/前端消费
type ActionLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Kind       string    `gorm:"size:20;not null;index" json:"kind"` // post, comment, vote, moderator
	ItemID     uint64    `gorm:"not null;index" json:"item_id"`
	Actor      uint64    `gorm:"not null;index" json:"actor"`
	Label      string    `gorm:"size:200;not null" json:"label"` // 动作标签，或管理员删除时的原因
	Reputation int64     `gorm:"not null" json:"reputation"`     // 变更后受影响账户的声望
	CreatedAt  time.Time `json:"created_at"`
}
