package cpu

import "math"

// Float32 element-wise kernels. All slices share one length; the operator
// layer validated shapes before dispatch.

func addFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

func subFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] - b[i]
	}
}

func mulFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

func divFloat32(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] / b[i]
	}
}

// Float32 in-place kernels.

func addAssignFloat32(a, b []float32) {
	for i := range a {
		a[i] += b[i]
	}
}

func subAssignFloat32(a, b []float32) {
	for i := range a {
		a[i] -= b[i]
	}
}

// Float32 scalar kernels.

func scaleFloat32(dst, a []float32, k float32) {
	for i := range a {
		dst[i] = a[i] * k
	}
}

func divScalarFloat32(dst, a []float32, k float32) {
	for i := range a {
		dst[i] = a[i] / k
	}
}

func scaleAssignFloat32(a []float32, k float32) {
	for i := range a {
		a[i] *= k
	}
}

func divScalarAssignFloat32(a []float32, k float32) {
	for i := range a {
		a[i] /= k
	}
}

// Float32 reductions. Dot and sum accumulate at element precision; the norm
// family accumulates in float64 because the final sqrt/pow runs there anyway.

func dotFloat32(a, b []float32) float64 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return float64(sum)
}

func sumFloat32(a []float32) float64 {
	var sum float32
	for _, v := range a {
		sum += v
	}
	return float64(sum)
}

func normFloat32(a []float32) float64 {
	var sum float64
	for _, v := range a {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum)
}

func lpNormFloat32(a []float32, p float64) float64 {
	switch {
	case p == 1:
		var sum float64
		for _, v := range a {
			sum += math.Abs(float64(v))
		}
		return sum
	case p == 2:
		return normFloat32(a)
	case math.IsInf(p, 1):
		var maxAbs float64
		for _, v := range a {
			maxAbs = math.Max(maxAbs, math.Abs(float64(v)))
		}
		return maxAbs
	default:
		var sum float64
		for _, v := range a {
			sum += math.Pow(math.Abs(float64(v)), p)
		}
		return math.Pow(sum, 1/p)
	}
}
