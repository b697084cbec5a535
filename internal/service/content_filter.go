package service

import (
	"fmt"

	"github.com/importcjj/sensitive"
	"github.com/microcosm-cc/bluemonday"
	"github.com/nsxzhou1114/news-admin/internal/config"
	"github.com/nsxzhou1114/news-admin/internal/dto"
	"github.com/nsxzhou1114/news-admin/pkg/errcode"
)

// ContentFilter 文章内容过滤：敏感词检测与HTML清理
// nil 值表示不做任何过滤
type ContentFilter struct {
	words  *sensitive.Filter
	policy *bluemonday.Policy
}

// NewContentFilter 根据配置创建内容过滤器
func NewContentFilter(cfg config.ArticleConfig) (*ContentFilter, error) {
	f := &ContentFilter{}
	if len(cfg.SensitiveWords) > 0 || cfg.SensitiveDict != "" {
		f.words = sensitive.New()
		f.words.AddWord(cfg.SensitiveWords...)
		if cfg.SensitiveDict != "" {
			if err := f.words.LoadWordDict(cfg.SensitiveDict); err != nil {
				return nil, fmt.Errorf("加载敏感词词库失败: %w", err)
			}
		}
	}
	if cfg.SanitizeContent {
		f.policy = bluemonday.UGCPolicy()
	}
	return f, nil
}

// Check 依次检查标题、简介、关键词、内容，返回第一个命中的敏感词
func (f *ContentFilter) Check(req *dto.ArticleSaveRequest) error {
	if f == nil || f.words == nil {
		return nil
	}
	fields := []struct {
		label string
		text  string
	}{
		{"标题", req.Title},
		{"文章简介", req.Intro},
		{"文章关键词", req.Keywords},
		{"文章内容", req.Content},
	}
	for _, field := range fields {
		if found, word := f.words.FindIn(field.text); found {
			return errcode.Newf(errcode.Validation, "%s包含敏感词: %s", field.label, word)
		}
	}
	return nil
}

// Sanitize 清理正文中不安全的HTML
func (f *ContentFilter) Sanitize(content string) string {
	if f == nil || f.policy == nil {
		return content
	}
	return f.policy.Sanitize(content)
}
