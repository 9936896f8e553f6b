package pqueue

import (
	"math/rand"
	"testing"
)

// BenchmarkQueue_AddPop measures the steady-state cost of Add followed
// by Pop for N elements.
func BenchmarkQueue_AddPop(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(1))
	priorities := make([]int, n)
	for i := range priorities {
		priorities[i] = rng.Intn(1 << 20)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := New[*item](n)
		for _, p := range priorities {
			q.Add(&item{priority: p})
		}
		for q.Len() > 0 {
			_, _ = q.Pop()
		}
	}
}

// BenchmarkQueue_Delete measures deleting a random half of the queue
// before draining the rest.
func BenchmarkQueue_Delete(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(2))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := New[*item](n)
		items := make([]*item, n)
		for j := range items {
			items[j] = &item{priority: rng.Intn(1 << 20)}
			q.Add(items[j])
		}
		for j := 0; j < n; j += 2 {
			q.Delete(items[j])
		}
		for q.Len() > 0 {
			_, _ = q.Pop()
		}
	}
}
