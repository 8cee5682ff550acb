package params

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvising/simulation"
)

// Parameter file keys.
const (
	KeyRows             = "rows"
	KeyCols             = "cols"
	KeyThermSteps       = "therm_steps"
	KeyMeasureSteps     = "measure_steps"
	KeyTemperatures     = "temperatures"
	KeyTemperatureRange = "temperature_range"
	KeyStructFactor     = "measure_struct_fact"
	KeyOutputFile       = "outputfile"
	KeyCoupling         = "coupling"
	KeySeed             = "seed"
	KeyWorkers          = "workers"
	KeyPlotDir          = "plot_dir"
)

// Environment overrides read by ApplyEnv.
const (
	EnvWorkers = "LVISING_WORKERS"
	EnvSeed    = "LVISING_SEED"
)

var (
	// ErrMissingParameter indicates a mandatory key absent from the file.
	ErrMissingParameter = errors.New("params: missing parameter")
	// ErrBadValue indicates a value that does not parse for its key.
	ErrBadValue = errors.New("params: bad value")
)

// Parameters is a parsed parameter file.
type Parameters struct {
	simulation.Config
	OutputFile string
	PlotDir    string // empty: no plots
}

// Load reads and parses the parameter file at path.
func Load(path string) (*Parameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "params: open")
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}

	return p, nil
}

// Parse reads a parameter file from r. Missing therm_steps / measure_steps
// fall back to DefaultSteps of the larger lattice side; other optional keys
// keep the values of simulation.DefaultConfig.
func Parse(r io.Reader) (*Parameters, error) {
	kv, err := godotenv.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "params: parse")
	}

	p := &Parameters{Config: simulation.DefaultConfig()}
	for _, f := range []struct {
		key string
		dst *int
	}{
		{KeyRows, &p.Rows},
		{KeyCols, &p.Cols},
	} {
		if *f.dst, err = requiredInt(kv, f.key); err != nil {
			return nil, err
		}
	}
	p.ThermSteps, p.MeasureSteps = DefaultSteps(max(p.Rows, p.Cols))
	for _, f := range []struct {
		key string
		dst *int
	}{
		{KeyThermSteps, &p.ThermSteps},
		{KeyMeasureSteps, &p.MeasureSteps},
	} {
		if _, ok := kv[f.key]; !ok {
			continue
		}
		if *f.dst, err = requiredInt(kv, f.key); err != nil {
			return nil, err
		}
	}
	if p.OutputFile = strings.TrimSpace(kv[KeyOutputFile]); p.OutputFile == "" {
		return nil, errors.Wrap(ErrMissingParameter, KeyOutputFile)
	}
	if p.Temperatures, err = temperatures(kv); err != nil {
		return nil, err
	}

	if v, ok := kv[KeyStructFactor]; ok {
		if p.MeasureCorrelationLength, err = strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			return nil, badValue(KeyStructFactor, v)
		}
	}
	if v, ok := kv[KeyCoupling]; ok {
		if p.Coupling, err = strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return nil, badValue(KeyCoupling, v)
		}
	}
	if v, ok := kv[KeySeed]; ok {
		if p.Seed, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return nil, badValue(KeySeed, v)
		}
	}
	if v, ok := kv[KeyWorkers]; ok {
		if p.Workers, err = strconv.Atoi(strings.TrimSpace(v)); err != nil {
			return nil, badValue(KeyWorkers, v)
		}
	}
	p.PlotDir = strings.TrimSpace(kv[KeyPlotDir])

	return p, nil
}

// ApplyEnv overrides Workers and Seed from the environment.
// Unset or unparsable variables leave the current value.
func ApplyEnv(p *Parameters) {
	p.Workers = getEnvInt(EnvWorkers, p.Workers)
	p.Seed = int64(getEnvInt(EnvSeed, int(p.Seed)))
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func requiredInt(kv map[string]string, key string) (int, error) {
	v, ok := kv[key]
	if !ok {
		return 0, errors.Wrap(ErrMissingParameter, key)
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, badValue(key, v)
	}

	return n, nil
}

// temperatures reads the explicit list, falling back to temperature_range.
func temperatures(kv map[string]string) ([]float64, error) {
	if v, ok := kv[KeyTemperatures]; ok {
		temps, err := floatList(v)
		if err != nil {
			return nil, badValue(KeyTemperatures, v)
		}
		return temps, nil
	}

	v, ok := kv[KeyTemperatureRange]
	if !ok {
		return nil, errors.Wrap(ErrMissingParameter, KeyTemperatures)
	}
	bounds, err := floatList(v)
	if err != nil || len(bounds) != 3 {
		return nil, badValue(KeyTemperatureRange, v)
	}
	temps, err := Arange(bounds[0], bounds[1], bounds[2])
	if err != nil {
		return nil, errors.Wrap(err, KeyTemperatureRange)
	}

	return temps, nil
}

func floatList(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}

	return out, nil
}

func badValue(key, value string) error {
	return errors.Wrapf(ErrBadValue, "%s=%q", key, value)
}
