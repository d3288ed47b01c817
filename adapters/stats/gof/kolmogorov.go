package gof

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// exactKolmogorovLimit is the largest n evaluated with the exact matrix method
const exactKolmogorovLimit = 1000

// KolmogorovCDF returns P(D_n < d) for the two-sided one-sample
// Kolmogorov-Smirnov statistic. Small samples use the Marsaglia-Tsang-Wang
// matrix method; large samples and far tails use asymptotic forms.
func KolmogorovCDF(n int, d float64) float64 {
	if n <= 0 || d <= 0 {
		return 0
	}
	if d >= 1 {
		return 1
	}

	nf := float64(n)
	s := d * d * nf
	if s > 7.24 || (s > 3.76 && n > 99) {
		return 1 - 2*math.Exp(-(2.000071+0.331/math.Sqrt(nf)+1.409/nf)*s)
	}
	if n > exactKolmogorovLimit {
		lambda := (math.Sqrt(nf) + 0.12 + 0.11/math.Sqrt(nf)) * d
		return 1 - kolmogorovQ(lambda)
	}
	return clampProbability(marsagliaTsangWang(n, d))
}

// KolmogorovPValue returns P(D_n >= d)
func KolmogorovPValue(n int, d float64) float64 {
	return clampProbability(1 - KolmogorovCDF(n, d))
}

// UniformStatistic returns the one-sample D of samples against U(0,1)
func UniformStatistic(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	d := 0.0
	for i, x := range sorted {
		f := math.Min(math.Max(x, 0), 1)
		if v := float64(i+1)/n - f; v > d {
			d = v
		}
		if v := f - float64(i)/n; v > d {
			d = v
		}
	}
	return d
}

// kolmogorovQ is the limiting survival function 2*sum((-1)^(j-1) exp(-2 j^2 x^2))
func kolmogorovQ(lambda float64) float64 {
	if lambda < 0.2 {
		return 1
	}
	sum := 0.0
	sign := 1.0
	for j := 1; j <= 100; j++ {
		term := math.Exp(-2 * float64(j*j) * lambda * lambda)
		sum += sign * term
		if term < 1e-12 {
			break
		}
		sign = -sign
	}
	return clampProbability(2 * sum)
}

// marsagliaTsangWang evaluates the exact distribution, Marsaglia, Tsang and
// Wang (2003), J. Stat. Software 8(18). Powers are kept in (matrix, exponent)
// form to avoid overflow.
func marsagliaTsangWang(n int, d float64) float64 {
	nf := float64(n)
	k := int(nf*d) + 1
	m := 2*k - 1
	h := float64(k) - nf*d

	H := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i-j+1 >= 0 {
				H.Set(i, j, 1)
			}
		}
	}
	for i := 0; i < m; i++ {
		H.Set(i, 0, H.At(i, 0)-math.Pow(h, float64(i+1)))
		H.Set(m-1, i, H.At(m-1, i)-math.Pow(h, float64(m-i)))
	}
	if 2*h-1 > 0 {
		H.Set(m-1, 0, H.At(m-1, 0)+math.Pow(2*h-1, float64(m)))
	}
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i-j+1 > 0 {
				v := H.At(i, j)
				for g := 1; g <= i-j+1; g++ {
					v /= float64(g)
				}
				H.Set(i, j, v)
			}
		}
	}

	Q, eQ := matrixPower(H, 0, n)
	s := Q.At(k-1, k-1)
	for i := 1; i <= n; i++ {
		s = s * float64(i) / nf
		if s < 1e-140 {
			s *= 1e140
			eQ -= 140
		}
	}
	return s * math.Pow(10, float64(eQ))
}

// matrixPower returns A^p as (V, eV) meaning V * 10^eV
func matrixPower(A *mat.Dense, eA, p int) (*mat.Dense, int) {
	if p == 1 {
		return mat.DenseCopyOf(A), eA
	}

	V, eV := matrixPower(A, eA, p/2)
	m, _ := A.Dims()

	B := mat.NewDense(m, m, nil)
	B.Mul(V, V)
	eB := 2 * eV

	if p%2 == 0 {
		V, eV = B, eB
	} else {
		C := mat.NewDense(m, m, nil)
		C.Mul(A, B)
		V, eV = C, eA+eB
	}

	if V.At(m/2, m/2) > 1e140 {
		V.Scale(1e-140, V)
		eV += 140
	}
	return V, eV
}
