package gof

// chiSquareTable holds printed upper-tail critical values for df 1..10
var chiSquareTable = map[int]map[float64]float64{
	1:  {0.005: 7.88, 0.01: 6.63, 0.025: 5.02, 0.05: 3.84, 0.10: 2.71, 0.20: 1.64, 0.90: 0.02, 0.95: 0.00, 0.975: 0.00, 0.99: 0.00, 0.995: 0.00},
	2:  {0.005: 10.60, 0.01: 9.21, 0.025: 7.38, 0.05: 5.99, 0.10: 4.61, 0.20: 3.22, 0.90: 0.21, 0.95: 0.10, 0.975: 0.05, 0.99: 0.02, 0.995: 0.01},
	3:  {0.005: 12.84, 0.01: 11.34, 0.025: 9.35, 0.05: 7.81, 0.10: 6.25, 0.20: 4.64, 0.90: 0.58, 0.95: 0.35, 0.975: 0.22, 0.99: 0.11, 0.995: 0.07},
	4:  {0.005: 14.86, 0.01: 13.28, 0.025: 11.14, 0.05: 9.49, 0.10: 7.78, 0.20: 5.99, 0.90: 1.06, 0.95: 0.71, 0.975: 0.48, 0.99: 0.30, 0.995: 0.21},
	5:  {0.005: 16.75, 0.01: 15.09, 0.025: 12.83, 0.05: 11.07, 0.10: 9.24, 0.20: 7.29, 0.90: 1.61, 0.95: 1.15, 0.975: 0.83, 0.99: 0.55, 0.995: 0.41},
	6:  {0.005: 18.55, 0.01: 16.81, 0.025: 14.45, 0.05: 12.59, 0.10: 10.64, 0.20: 8.56, 0.90: 2.20, 0.95: 1.64, 0.975: 1.24, 0.99: 0.87, 0.995: 0.68},
	7:  {0.005: 20.28, 0.01: 18.48, 0.025: 16.01, 0.05: 14.07, 0.10: 12.02, 0.20: 9.80, 0.90: 2.83, 0.95: 2.17, 0.975: 1.69, 0.99: 1.24, 0.995: 0.99},
	8:  {0.005: 21.95, 0.01: 20.09, 0.025: 17.53, 0.05: 15.51, 0.10: 13.36, 0.20: 11.03, 0.90: 3.49, 0.95: 2.73, 0.975: 2.18, 0.99: 1.65, 0.995: 1.34},
	9:  {0.005: 23.59, 0.01: 21.67, 0.025: 19.02, 0.05: 16.92, 0.10: 14.68, 0.20: 12.24, 0.90: 4.17, 0.95: 3.33, 0.975: 2.70, 0.99: 2.09, 0.995: 1.73},
	10: {0.005: 25.19, 0.01: 23.21, 0.025: 20.48, 0.05: 18.31, 0.10: 15.99, 0.20: 13.44, 0.90: 4.87, 0.95: 3.94, 0.975: 3.25, 0.99: 2.56, 0.995: 2.16},
}

// TabulatedChiSquare returns the printed critical value for (df, alpha)
func TabulatedChiSquare(df int, alpha float64) (float64, bool) {
	row, ok := chiSquareTable[df]
	if !ok {
		return 0, false
	}
	v, ok := row[alpha]
	return v, ok
}

// ksTable maps alpha to K(alpha) for the asymptotic critical value K/sqrt(n),
// ordered from most to least conservative
var ksTable = []struct {
	alpha float64
	k     float64
}{
	{0.001, 1.95},
	{0.005, 1.73},
	{0.01, 1.63},
	{0.025, 1.48},
	{0.05, 1.36},
	{0.10, 1.22},
}

// KolmogorovK returns K(alpha). An untabulated alpha falls back to the
// nearest tabulated level that is more conservative (smaller alpha); below
// the smallest level the strictest K is used.
func KolmogorovK(alpha float64) float64 {
	k := ksTable[0].k
	for _, row := range ksTable {
		if row.alpha <= alpha {
			k = row.k
		}
	}
	return k
}
