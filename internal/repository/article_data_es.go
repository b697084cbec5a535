package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/nsxzhou1114/news-admin/internal/model"
)

// ESArticleDataRepository 文章正文仓储（Elasticsearch）
// 不参与数据库事务，写入失败时由调用方回滚主表
type ESArticleDataRepository struct {
	transport esapi.Transport
	index     string
}

// NewESArticleDataRepository 创建正文仓储，transport 通常为 *elasticsearch.Client
func NewESArticleDataRepository(transport esapi.Transport, index string) *ESArticleDataRepository {
	if index == "" {
		index = model.ArticleData{}.ESIndexName()
	}
	return &ESArticleDataRepository{transport: transport, index: index}
}

type esGetResponse struct {
	Found  bool              `json:"found"`
	Source model.ArticleData `json:"_source"`
}

// Find 按文章ID查询正文，不存在时返回 nil
func (r *ESArticleDataRepository) Find(ctx context.Context, articleID uint) (*model.ArticleData, error) {
	req := esapi.GetRequest{
		Index:      r.index,
		DocumentID: docID(articleID),
	}

	res, err := req.Do(ctx, r.transport)
	if err != nil {
		return nil, fmt.Errorf("从ES获取文章正文失败: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("从ES获取文章正文失败: %s", res.String())
	}

	var payload esGetResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("解析ES文章正文失败: %w", err)
	}
	if !payload.Found {
		return nil, nil
	}
	data := payload.Source
	data.ArticleID = articleID
	return &data, nil
}

// Insert 写入正文文档
func (r *ESArticleDataRepository) Insert(ctx context.Context, data *model.ArticleData) error {
	body, err := json.Marshal(data)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: data.ESDocID(),
		Body:       bytes.NewReader(body),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, r.transport)
	if err != nil {
		return fmt.Errorf("保存文章正文到ES失败: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("保存文章正文到ES失败: %s", res.String())
	}
	return nil
}

// UpdateContent 更新正文内容，文档不存在时返回 0
func (r *ESArticleDataRepository) UpdateContent(ctx context.Context, articleID uint, content string) (int64, error) {
	body, err := json.Marshal(map[string]interface{}{
		"doc": map[string]string{"content": content},
	})
	if err != nil {
		return 0, err
	}

	req := esapi.UpdateRequest{
		Index:      r.index,
		DocumentID: docID(articleID),
		Body:       bytes.NewReader(body),
		Refresh:    "true",
	}

	res, err := req.Do(ctx, r.transport)
	if err != nil {
		return 0, fmt.Errorf("更新ES文章正文失败: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return 0, nil
	}
	if res.IsError() {
		return 0, fmt.Errorf("更新ES文章正文失败: %s", res.String())
	}
	return 1, nil
}

func docID(articleID uint) string {
	return strconv.FormatUint(uint64(articleID), 10)
}
