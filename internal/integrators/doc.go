// Package integrators provides one-dimensional pressure-stepping schemes for
// dx/dp = f(x, p), used to carry a water parcel's temperature along an
// adiabat.
//
// [Gill] is the four-stage Runge-Kutta variant with the (1 ∓ 1/√2) weights
// published with the UNESCO potential temperature algorithm; it is the only
// scheme the EOS-80 functions use. [RK4], [Midpoint], [Euler] and the
// adaptive [RK45] exist to compare against it.
//
// All integrators are stateless values and safe for concurrent use.
package integrators
