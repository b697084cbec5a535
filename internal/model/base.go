package model

import (
	"time"
)

// Base 基础模型
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// 通用记录状态
const (
	StatusActive  = 1 // 正常
	StatusDeleted = 2 // 已删除
)
