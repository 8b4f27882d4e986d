package vector

import "testing"

func BenchmarkVector_Add(b *testing.B) {
	v := MustNew(1, 2)
	w := MustNew(0.001, -0.002)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Add(w)
	}
}

func BenchmarkVector_Normalize(b *testing.B) {
	v := MustNew(3, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.X, v.Y = 3, 4
		v.Normalize() //nolint:errcheck
	}
}

func BenchmarkVector_RotateBy(b *testing.B) {
	v := MustNew(3, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.RotateBy(0.01)
	}
}

func BenchmarkVector_Distance(b *testing.B) {
	v := MustNew(3, 4)
	w := MustNew(-7, 2)
	var sink float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += v.Distance(w)
	}
	_ = sink
}
