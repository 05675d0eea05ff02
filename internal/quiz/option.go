package quiz

import (
	"math/rand"
)

// GeneratorOption 定义Generator的配置选项
type GeneratorOption func(*Generator)

// WithSeed 使用固定种子的随机源，测试与复现场景用
func WithSeed(seed int64) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRandomSource 注入自定义随机源
func WithRandomSource(src rand.Source) GeneratorOption {
	return func(g *Generator) {
		g.rng = rand.New(src)
	}
}
