package model

// Category 分类模型
type Category struct {
	Base
	Name      string `gorm:"type:varchar(50);not null" json:"name"`
	ListOrder int    `gorm:"column:list_order;type:int(11);not null;default:0" json:"list_order"`
	Status    int    `gorm:"type:tinyint(1);not null;default:1;index" json:"status"` // 1=正常 2=删除
}

// TableName 指定表名
func (Category) TableName() string {
	return "category"
}
