package dfs_test

import (
	"testing"

	"github.com/katalvlaran/advent/dfs"
)

// BenchmarkDFS_Chain10000 measures a deep single-source traversal.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "v0")
	}
}
