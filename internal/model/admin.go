package model

import "time"

// Admin 管理员模型
type Admin struct {
	Base
	Username    string     `gorm:"type:varchar(50);not null;uniqueIndex" json:"username"`
	Password    string     `gorm:"type:varchar(100);not null" json:"-"`
	RealName    string     `gorm:"type:varchar(50)" json:"real_name"`
	Status      int        `gorm:"type:tinyint(1);not null;default:1" json:"status"` // 1=正常 2=删除
	LastLoginAt *time.Time `json:"last_login_at"`
}

// TableName 指定表名
func (Admin) TableName() string {
	return "admin"
}
