package auth

import (
	"sync"
	"time"
)

// TokenBlacklist 令牌黑名单，记录已登出令牌的ID直到其过期
type TokenBlacklist struct {
	tokens map[string]time.Time // 令牌ID->过期时间
	mutex  sync.RWMutex
	now    func() time.Time
}

// NewTokenBlacklist 创建令牌黑名单
func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{
		tokens: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Add 将令牌加入黑名单，顺带清理已过期的记录
func (b *TokenBlacklist) Add(tokenID string, expireAt time.Time) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.cleanupLocked()
	b.tokens[tokenID] = expireAt
}

// Contains 检查令牌是否在黑名单中
func (b *TokenBlacklist) Contains(tokenID string) bool {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	expireAt, ok := b.tokens[tokenID]
	return ok && b.now().Before(expireAt)
}

// Len 黑名单中的记录数
func (b *TokenBlacklist) Len() int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return len(b.tokens)
}

func (b *TokenBlacklist) cleanupLocked() {
	now := b.now()
	for id, expireAt := range b.tokens {
		if !now.Before(expireAt) {
			delete(b.tokens, id)
		}
	}
}
