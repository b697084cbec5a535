package database

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/nsxzhou1114/news-admin/internal/config"
	"github.com/nsxzhou1114/news-admin/internal/logger"
	"go.uber.org/zap"
)

// InitElasticsearch 初始化Elasticsearch连接
func InitElasticsearch(cfg *config.ElasticsearchConfig, retries uint) (*elasticsearch.Client, error) {
	esConfig := elasticsearch.Config{
		Addresses: cfg.URLs,
	}
	if cfg.Username != "" && cfg.Password != "" {
		esConfig.Username = cfg.Username
		esConfig.Password = cfg.Password
	}

	client, err := elasticsearch.NewClient(esConfig)
	if err != nil {
		return nil, fmt.Errorf("连接elasticsearch失败: %w", err)
	}

	err = retry.Do(
		func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			res, err := client.Info(client.Info.WithContext(ctx))
			if err != nil {
				return err
			}
			defer res.Body.Close()
			if res.IsError() {
				return fmt.Errorf("elasticsearch返回错误: %s", res.Status())
			}
			return nil
		},
		retry.Attempts(attempts(retries)),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("elasticsearch连接失败，准备重试", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("elasticsearch健康检查失败: %w", err)
	}

	logger.Info("elasticsearch连接成功", zap.Strings("addresses", cfg.URLs))
	return client, nil
}
