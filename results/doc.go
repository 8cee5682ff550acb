// Package results writes and reads the per-temperature results table and
// renders it as plots.
//
// What:
//
//	The table is plain text: one header comment listing the columns and the
//	total elapsed wall-clock seconds, then one comma-separated row per
//	temperature.
//
//	# temperature, energy_density, magnetisation, specific_heat, susceptibility, correlation_length, elapsed_time: 42
//	2, -1.74, 0.91, 0.83, 0.21, 0
//
//	correlation_length is present only when it was measured.
//
// Errors:
//
//	ErrLengthMismatch, ErrTemperature (Write);
//	ErrMalformed (Read); I/O errors are wrapped with github.com/pkg/errors.
package results
