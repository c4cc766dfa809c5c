package cpu

import "math"

// Float64 element-wise kernels.

func addFloat64(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subFloat64(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulFloat64(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func divFloat64(dst, a, b []float64) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

// Float64 in-place kernels.

func addAssignFloat64(a, b []float64) {
	for i := range a {
		a[i] += b[i]
	}
}

func subAssignFloat64(a, b []float64) {
	for i := range a {
		a[i] -= b[i]
	}
}

// Float64 scalar kernels.

func scaleFloat64(dst, a []float64, k float64) {
	for i := range a {
		dst[i] = a[i] * k
	}
}

func divScalarFloat64(dst, a []float64, k float64) {
	for i := range a {
		dst[i] = a[i] / k
	}
}

func scaleAssignFloat64(a []float64, k float64) {
	for i := range a {
		a[i] *= k
	}
}

func divScalarAssignFloat64(a []float64, k float64) {
	for i := range a {
		a[i] /= k
	}
}

// Float64 reductions.

func dotFloat64(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func sumFloat64(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v
	}
	return sum
}

func normFloat64(a []float64) float64 {
	var sum float64
	for _, v := range a {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func lpNormFloat64(a []float64, p float64) float64 {
	switch {
	case p == 1:
		var sum float64
		for _, v := range a {
			sum += math.Abs(v)
		}
		return sum
	case p == 2:
		return normFloat64(a)
	case math.IsInf(p, 1):
		var maxAbs float64
		for _, v := range a {
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
		return maxAbs
	default:
		var sum float64
		for _, v := range a {
			sum += math.Pow(math.Abs(v), p)
		}
		return math.Pow(sum, 1/p)
	}
}
