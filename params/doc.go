// Package params reads simulation parameter files and builds temperature grids.
//
// What:
//
//	A parameter file is a list of "key: value" lines (godotenv syntax, so
//	"key=value", comments and quoting work too):
//
//	rows: 32
//	cols: 32
//	therm_steps: 10000
//	measure_steps: 10000
//	temperatures: 2.0, 2.2, 2.269, 2.4
//	measure_struct_fact: True
//	outputfile: out_32x32.txt
//
//	Instead of temperatures, temperature_range: start, stop, step expands
//	through Arange. Optional keys: coupling, seed, workers, plot_dir, and
//	therm_steps / measure_steps, which default to DefaultSteps(max(rows, cols)).
//	ApplyEnv overrides workers and seed from LVISING_WORKERS / LVISING_SEED.
//
// Errors:
//
//	ErrMissingParameter, ErrBadValue (both wrapped with the key name),
//	ErrZeroStep, ErrStepDirection, ErrPoints.
package params
