package integrators

import "testing"

func BenchmarkRK4Step(b *testing.B) {
	integ := NewRK4()
	x, y := 1.0, 0.0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, y = integ.Step(rotation{}, nil, x, y, 0.01)
	}
	_ = x
	_ = y
}

func BenchmarkEulerStep(b *testing.B) {
	integ := NewEuler()
	x, y := 1.0, 0.0
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x, y = integ.Step(rotation{}, nil, x, y, 0.01)
	}
	_ = x
	_ = y
}
