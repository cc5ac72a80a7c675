package eos80

// T68Factor converts ITS-90 temperatures to the IPTS-68 scale of the
// published coefficients.
const T68Factor = 1.00024

// Coefficient tables are stored lowest order first: c[0] + c[1]·x + c[2]·x² ...

// Standard Mean Ocean Water, Bigg (1967).
var smowA = [...]float64{999.842594, 6.793952e-2, -9.095290e-3, 1.001685e-4, -1.120083e-6, 6.536332e-9}

// One-atmosphere density, Millero & Poisson (1981).
var (
	dens0B = [...]float64{8.24493e-1, -4.0899e-3, 7.6438e-5, -8.2467e-7, 5.3875e-9}
	dens0C = [...]float64{-5.72466e-3, 1.0227e-4, -1.6546e-6}
)

const dens0D0 = 4.8314e-4

// Secant bulk modulus, Millero et al. (1980) as tabulated in UNESCO 44.
var (
	// pure water
	seckH = [...]float64{3.239908, 1.43713e-3, 1.16092e-4, -5.77905e-7}
	seckK = [...]float64{8.50935e-5, -6.12293e-6, 5.2787e-8}
	seckE = [...]float64{19652.21, 148.4206, -2.327105, 1.360477e-2, -5.155288e-5}

	// seawater at one atmosphere
	seckI = [...]float64{2.2838e-3, -1.0981e-5, -1.6078e-6}
	seckM = [...]float64{-9.9348e-7, 2.0816e-8, 9.1697e-10}
	seckF = [...]float64{54.6746, -0.603459, 1.09987e-2, -6.1670e-5}
	seckG = [...]float64{7.944e-2, 1.6483e-2, -5.3009e-4}
)

const seckJ0 = 1.91075e-4

// Adiabatic lapse rate, Bryden (1973).
var (
	adtgA = [...]float64{3.5803e-5, 8.5258e-6, -6.836e-8, 6.6228e-10}
	adtgB = [...]float64{1.8932e-6, -4.2393e-8}
	adtgC = [...]float64{1.8741e-8, -6.7795e-10, 8.733e-12, -5.4481e-14}
	adtgD = [...]float64{-1.1351e-10, 2.7759e-12}
	adtgE = [...]float64{-4.6206e-13, 1.8676e-14, -2.1687e-16}
)

// horner evaluates c[0] + x·(c[1] + x·(c[2] + ...)).
func horner(c []float64, x float64) float64 {
	v := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		v = c[i] + v*x
	}
	return v
}
