package random

// Source yields a uniform draw in [0,1).
type Source interface {
	Float64() float64
}
