package idgen

import (
	"fmt"

	sf "github.com/bwmarrin/snowflake"
)

// Generator 雪花算法ID生成器
type Generator struct {
	node *sf.Node
}

// New 创建ID生成器，nodeID 取值 0-1023
func New(nodeID int64) (*Generator, error) {
	node, err := sf.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("初始化雪花节点失败: %w", err)
	}
	return &Generator{node: node}, nil
}

// Next 生成唯一ID
func (g *Generator) Next() int64 {
	return g.node.Generate().Int64()
}

// NextString 生成唯一ID的字符串形式
func (g *Generator) NextString() string {
	return g.node.Generate().String()
}
