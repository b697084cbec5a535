package repository

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor 基于 gorm 的事务执行器，事务句柄随 context 传递给各仓储
type Transactor struct {
	db *gorm.DB
}

// NewTransactor 创建事务执行器
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// Transaction 在事务中执行 fn，fn 返回错误时回滚；已处于事务中时直接复用
func (t *Transactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn 返回当前 context 绑定的事务，没有事务时返回普通连接
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
