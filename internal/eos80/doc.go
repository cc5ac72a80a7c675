// Package eos80 implements the UNESCO 1983 (EOS-80) equation of state for
// seawater.
//
// Every quantity is a function of practical salinity S, in-situ temperature T
// (°C, ITS-90) and pressure P (decibar), carried in [grid.Grid] values:
//
//   - [Smow]: density of Standard Mean Ocean Water (kg/m³)
//   - [Dens0]: density at zero pressure (kg/m³)
//   - [Seck]: secant bulk modulus (bar)
//   - [Dens]: in-situ density (kg/m³)
//   - [Adtg]: adiabatic temperature gradient (°C/dbar)
//   - [Ptmp]: potential temperature at a reference pressure (°C)
//   - [Pden]: potential density at a reference pressure (kg/m³)
//
// The published coefficients are stated on the IPTS-68 scale; inputs are
// converted with T68 = 1.00024·T before any polynomial is evaluated.
//
// # Shapes
//
// S fixes the output shape. T must match it exactly. P and PR are broadcast
// independently: 1×1, 1×n, m×1 or m×n. S and T are checked first, then P,
// then PR, so the first failing argument is the one reported.
//
// # Numeric domain
//
// Physically invalid input is not an error: negative salinity yields NaN
// from √S and a vanishing bulk modulus yields ±Inf. [CheckRange] is an
// opt-in validator for callers that want the EOS-80 range enforced.
//
// All functions are pure and safe for concurrent use.
package eos80
