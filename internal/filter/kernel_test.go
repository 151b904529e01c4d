package filter

import (
	"math"
	"testing"
)

func TestGaussianKernelZeroRadius(t *testing.T) {
	kernel := GaussianKernel(0)

	if len(kernel) != 1 {
		t.Errorf("GaussianKernel(0) len = %d, want 1", len(kernel))
	}

	if kernel[0] != 1.0 {
		t.Errorf("GaussianKernel(0)[0] = %v, want 1.0", kernel[0])
	}
}

func TestGaussianKernelNegativeRadius(t *testing.T) {
	kernel := GaussianKernel(-5)

	if len(kernel) != 1 {
		t.Errorf("GaussianKernel(-5) len = %d, want 1", len(kernel))
	}
}

func TestGaussianKernelSize(t *testing.T) {
	for _, r := range []int{1, 2, 5, 10, 25} {
		if got := len(GaussianKernel(r)); got != 2*r+1 {
			t.Errorf("GaussianKernel(%d) len = %d, want %d", r, got, 2*r+1)
		}
	}
}

func TestGaussianKernelNormalized(t *testing.T) {
	for _, r := range []int{1, 2, 3, 5, 10, 25} {
		var sum float32
		for _, v := range GaussianKernel(r) {
			sum += v
		}

		if math.Abs(float64(sum)-1.0) > 0.001 {
			t.Errorf("GaussianKernel(%d) sum = %v, want ~1.0", r, sum)
		}
	}
}

func TestGaussianKernelSymmetric(t *testing.T) {
	kernel := GaussianKernel(7)
	n := len(kernel)

	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		if absf32(kernel[i]-kernel[j]) > 0.0001 {
			t.Errorf("kernel[%d] = %v != kernel[%d] = %v (asymmetric)", i, kernel[i], j, kernel[j])
		}
	}
}

func TestGaussianKernelPeakAtCenter(t *testing.T) {
	kernel := GaussianKernel(10)
	center := len(kernel) / 2

	for i := 1; i <= center; i++ {
		if kernel[center-i] > kernel[center-i+1] {
			t.Errorf("kernel not decreasing away from center at offset %d", i)
		}
	}
}

func TestSigma(t *testing.T) {
	tests := []struct {
		radius int
		want   float64
	}{
		{1, 1.0},
		{10, 4.6},
		{25, 10.6},
	}

	for _, tt := range tests {
		if got := Sigma(tt.radius); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Sigma(%d) = %v, want %v", tt.radius, got, tt.want)
		}
	}
}

func TestClampRadius(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{10, 10},
		{25, 25},
		{26, 25},
		{1000, 25},
	}

	for _, tt := range tests {
		if got := ClampRadius(tt.in); got != tt.want {
			t.Errorf("ClampRadius(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestBoxKernel(t *testing.T) {
	kernel := BoxKernel(3)

	if len(kernel) != 7 {
		t.Fatalf("BoxKernel(3) len = %d, want 7", len(kernel))
	}
	for i, v := range kernel {
		if absf32(v-1.0/7) > 1e-6 {
			t.Errorf("BoxKernel(3)[%d] = %v, want %v", i, v, 1.0/7)
		}
	}

	if got := BoxKernel(0); len(got) != 1 || got[0] != 1 {
		t.Errorf("BoxKernel(0) = %v, want [1]", got)
	}
}

func TestCachedGaussianKernel(t *testing.T) {
	a := CachedGaussianKernel(8)
	b := CachedGaussianKernel(8)

	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel(8) returned a different slice on the second call")
	}

	if got := len(CachedGaussianKernel(0)); got != 3 {
		t.Errorf("CachedGaussianKernel(0) len = %d, want 3 (radius clamped to 1)", got)
	}
	if got := len(CachedGaussianKernel(99)); got != 2*MaxRadius+1 {
		t.Errorf("CachedGaussianKernel(99) len = %d, want %d", got, 2*MaxRadius+1)
	}
}
