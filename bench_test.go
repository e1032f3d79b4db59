package tablemark_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tablemark/tablemark"
	lua "github.com/yuin/gopher-lua"
)

// BenchmarkWorkloads times every workload variant at the three documented
// input sizes. Run with:
//
//	go test -bench=Workloads -run=none
func BenchmarkWorkloads(b *testing.B) {
	for _, w := range tablemark.Workloads() {
		for _, n := range []int{100, 1000, 10000} {
			b.Run(fmt.Sprintf("%s/n=%d", w.Name, n), func(b *testing.B) {
				L := lua.NewState()
				defer L.Close()
				_, err := w.Load(L)
				require.NoError(b, err)

				var sink float64
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					sum, err := w.Invoke(L, n)
					if err != nil {
						b.Fatal(err)
					}
					sink += sum
				}
				_ = sink
			})
		}
	}
}
