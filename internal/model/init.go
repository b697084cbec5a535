package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"gorm.io/gorm"
)

// 需要自动迁移的模型列表
var models = []interface{}{
	&Admin{},
	&Category{},
	&Article{},
	&ArticleData{},
}

// InitTables 初始化数据库表
func InitTables(db *gorm.DB) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("自动迁移数据库表失败: %w", err)
	}
	return nil
}

// InitESIndices 初始化正文索引，已存在时跳过，返回是否新建
func InitESIndices(client *elasticsearch.Client, indexName string) (bool, error) {
	ctx := context.Background()
	if indexName == "" {
		indexName = ArticleData{}.ESIndexName()
	}

	resp, err := client.Indices.Exists([]string{indexName}, client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return false, fmt.Errorf("检查索引 %s 是否存在时出错: %w", indexName, err)
	}
	resp.Body.Close()

	if resp.StatusCode != 404 {
		return false, nil
	}

	createResp, err := client.Indices.Create(
		indexName,
		client.Indices.Create.WithContext(ctx),
		client.Indices.Create.WithBody(strings.NewReader(ArticleData{}.ESMapping())),
	)
	if err != nil {
		return false, fmt.Errorf("创建索引 %s 失败: %w", indexName, err)
	}
	defer createResp.Body.Close()
	if createResp.IsError() {
		return false, fmt.Errorf("创建索引 %s 返回错误: %s", indexName, createResp.String())
	}
	return true, nil
}
