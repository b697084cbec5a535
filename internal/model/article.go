package model

import (
	"strconv"
	"time"
)

// 文章显示状态
const (
	DisplayHidden = 0
	DisplayShown  = 1
)

// Article 文章主表，不含正文
type Article struct {
	ID           uint       `gorm:"column:news_id;primaryKey" json:"news_id"`
	Title        string     `gorm:"type:varchar(80);not null" json:"title"`
	Intro        string     `gorm:"type:varchar(500);not null" json:"intro"`
	Keywords     string     `gorm:"type:varchar(100);not null" json:"keywords"`
	Source       string     `gorm:"type:varchar(50);not null" json:"source"`
	ImageURL     string     `gorm:"column:image_url;type:varchar(100)" json:"image_url"`
	CategoryID   uint       `gorm:"column:cat_id;not null;index" json:"cat_id"`
	Display      int        `gorm:"type:tinyint(1);not null" json:"display"`
	ListOrder    int        `gorm:"column:list_order;type:int(11);not null;default:0;index" json:"list_order"`
	Status       int        `gorm:"type:tinyint(1);not null;default:1;index" json:"status"`
	CreatedBy    uint       `gorm:"not null;index" json:"created_by"`
	CreatedTime  time.Time  `gorm:"not null;index" json:"created_time"`
	ModifiedBy   uint       `gorm:"not null;default:0" json:"modified_by"`
	ModifiedTime *time.Time `json:"modified_time"`
}

// TableName 指定表名
func (Article) TableName() string {
	return "news"
}

// ArticleData 文章正文，与 Article 一一对应
type ArticleData struct {
	ArticleID uint   `gorm:"column:news_id;primaryKey;autoIncrement:false" json:"news_id"`
	Content   string `gorm:"type:mediumtext;not null" json:"content"`
}

// TableName 指定表名
func (ArticleData) TableName() string {
	return "news_data"
}

// ESDocID 正文在 Elasticsearch 中的文档ID
func (d *ArticleData) ESDocID() string {
	return strconv.FormatUint(uint64(d.ArticleID), 10)
}

// ESIndexName 默认索引名
func (ArticleData) ESIndexName() string {
	return "news_data"
}

// ESMapping 正文索引映射
func (ArticleData) ESMapping() string {
	return `{
  "mappings": {
    "properties": {
      "news_id": { "type": "long" },
      "content": { "type": "text" }
    }
  }
}`
}

// 管理员筛选条件
const (
	AdminFilterNone    int64 = -1 // 不按管理员筛选
	AdminFilterNoMatch int64 = 0  // 管理员不存在，结果为空
)

// ArticleQuery 文章列表查询条件，各条件之间为 AND 关系
type ArticleQuery struct {
	Title     string
	AdminID   int64
	StartTime *time.Time
	EndTime   *time.Time
	Page      int
	PageSize  int
}
