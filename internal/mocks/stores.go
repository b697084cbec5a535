package mocks

import (
	"context"
	"time"

	"github.com/nsxzhou1114/news-admin/internal/model"
)

// UpdateCall 记录一次文章更新
type UpdateCall struct {
	ID         uint
	ActiveOnly bool
	Fields     map[string]interface{}
}

// MockArticleStore 文章主表的内存实现
type MockArticleStore struct {
	Articles    map[uint]*model.Article
	NextID      uint
	InsertID    *uint // 非 nil 时 Insert 返回该ID且不保存
	Err         error
	LastQuery   *model.ArticleQuery
	PageResult  []model.Article
	PageTotal   int64
	UpdateCalls []UpdateCall
	// BeforeUpdate 在更新前调用，用于模拟并发修改
	BeforeUpdate func(id uint)
}

func NewMockArticleStore() *MockArticleStore {
	return &MockArticleStore{
		Articles: make(map[uint]*model.Article),
		NextID:   1,
	}
}

// Put 直接写入一篇文章
func (m *MockArticleStore) Put(a *model.Article) {
	m.Articles[a.ID] = a
	if a.ID >= m.NextID {
		m.NextID = a.ID + 1
	}
}

func (m *MockArticleStore) FindActive(ctx context.Context, id uint) (*model.Article, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	a, ok := m.Articles[id]
	if !ok || a.Status != model.StatusActive {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *MockArticleStore) FindPage(ctx context.Context, q model.ArticleQuery) ([]model.Article, int64, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	m.LastQuery = &q
	return m.PageResult, m.PageTotal, nil
}

func (m *MockArticleStore) Insert(ctx context.Context, a *model.Article) (uint, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	if m.InsertID != nil {
		return *m.InsertID, nil
	}
	a.ID = m.NextID
	m.NextID++
	copied := *a
	m.Articles[a.ID] = &copied
	return a.ID, nil
}

func (m *MockArticleStore) Update(ctx context.Context, id uint, activeOnly bool, fields map[string]interface{}) (int64, error) {
	m.UpdateCalls = append(m.UpdateCalls, UpdateCall{ID: id, ActiveOnly: activeOnly, Fields: fields})
	if m.BeforeUpdate != nil {
		m.BeforeUpdate(id)
	}
	if m.Err != nil {
		return 0, m.Err
	}
	a, ok := m.Articles[id]
	if !ok || (activeOnly && a.Status != model.StatusActive) {
		return 0, nil
	}
	applyFields(a, fields)
	return 1, nil
}

func applyFields(a *model.Article, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "title":
			a.Title = v.(string)
		case "intro":
			a.Intro = v.(string)
		case "keywords":
			a.Keywords = v.(string)
		case "source":
			a.Source = v.(string)
		case "image_url":
			a.ImageURL = v.(string)
		case "display":
			a.Display = v.(int)
		case "cat_id":
			a.CategoryID = v.(uint)
		case "list_order":
			a.ListOrder = v.(int)
		case "status":
			a.Status = v.(int)
		case "modified_by":
			a.ModifiedBy = v.(uint)
		case "modified_time":
			t := v.(time.Time)
			a.ModifiedTime = &t
		}
	}
}

// MockArticleBodyStore 文章正文的内存实现
type MockArticleBodyStore struct {
	Bodies      map[uint]string
	Err         error
	InsertErr   error
	InsertCalls int
	UpdateCalls int
}

func NewMockArticleBodyStore() *MockArticleBodyStore {
	return &MockArticleBodyStore{Bodies: make(map[uint]string)}
}

func (m *MockArticleBodyStore) Find(ctx context.Context, articleID uint) (*model.ArticleData, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	content, ok := m.Bodies[articleID]
	if !ok {
		return nil, nil
	}
	return &model.ArticleData{ArticleID: articleID, Content: content}, nil
}

func (m *MockArticleBodyStore) Insert(ctx context.Context, data *model.ArticleData) error {
	m.InsertCalls++
	if m.InsertErr != nil {
		return m.InsertErr
	}
	m.Bodies[data.ArticleID] = data.Content
	return nil
}

func (m *MockArticleBodyStore) UpdateContent(ctx context.Context, articleID uint, content string) (int64, error) {
	m.UpdateCalls++
	if m.Err != nil {
		return 0, m.Err
	}
	if _, ok := m.Bodies[articleID]; !ok {
		return 0, nil
	}
	m.Bodies[articleID] = content
	return 1, nil
}

// MockCategoryStore 分类的内存实现
type MockCategoryStore struct {
	Categories map[uint]*model.Category
	NextID     uint
	Err        error
}

func NewMockCategoryStore() *MockCategoryStore {
	return &MockCategoryStore{Categories: make(map[uint]*model.Category), NextID: 1}
}

func (m *MockCategoryStore) FindActive(ctx context.Context, id uint) (*model.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.Categories[id]
	if !ok || c.Status != model.StatusActive {
		return nil, nil
	}
	return c, nil
}

func (m *MockCategoryStore) Create(ctx context.Context, c *model.Category) error {
	if m.Err != nil {
		return m.Err
	}
	c.ID = m.NextID
	m.NextID++
	m.Categories[c.ID] = c
	return nil
}

// MockAdminStore 管理员的内存实现
type MockAdminStore struct {
	Admins     map[string]*model.Admin
	NextID     uint
	Err        error
	LoginErr   error
	LastLogins map[uint]time.Time
}

func NewMockAdminStore() *MockAdminStore {
	return &MockAdminStore{
		Admins:     make(map[string]*model.Admin),
		NextID:     1,
		LastLogins: make(map[uint]time.Time),
	}
}

func (m *MockAdminStore) FindByUsername(ctx context.Context, username string) (*model.Admin, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Admins[username], nil
}

func (m *MockAdminStore) Create(ctx context.Context, a *model.Admin) error {
	if m.Err != nil {
		return m.Err
	}
	if a.ID == 0 {
		a.ID = m.NextID
		m.NextID++
	}
	m.Admins[a.Username] = a
	return nil
}

func (m *MockAdminStore) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	if m.LoginErr != nil {
		return m.LoginErr
	}
	m.LastLogins[id] = at
	return nil
}

// MockTransactor 直接执行回调，不提供回滚
type MockTransactor struct {
	Calls int
}

func (m *MockTransactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}
