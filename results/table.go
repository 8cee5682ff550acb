package results

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvising/observables"
)

// Column names, in file order.
const (
	ColTemperature       = "temperature"
	ColEnergyDensity     = "energy_density"
	ColMagnetisation     = "magnetisation"
	ColSpecificHeat      = "specific_heat"
	ColSusceptibility    = "susceptibility"
	ColCorrelationLength = "correlation_length"

	elapsedKey = "elapsed_time:"
)

var (
	// ErrLengthMismatch indicates temperatures and estimates of different lengths.
	ErrLengthMismatch = errors.New("results: temperatures and estimates differ in length")
	// ErrTemperature indicates a zero, negative or NaN temperature.
	ErrTemperature = errors.New("results: temperatures must be positive")
	// ErrMalformed indicates a table that cannot be read back.
	ErrMalformed = errors.New("results: malformed table")
)

// Table is a results table read back from disk.
type Table struct {
	Columns []string
	Rows    [][]float64
	Elapsed time.Duration
}

// Column returns the values of the named column.
func (t *Table) Column(name string) ([]float64, bool) {
	for j, c := range t.Columns {
		if c == name {
			out := make([]float64, len(t.Rows))
			for i, row := range t.Rows {
				out[i] = row[j]
			}
			return out, true
		}
	}

	return nil, false
}

// Write emits the header and one row per temperature to w.
// temps[i] labels estimates[i]; elapsed is truncated to whole seconds.
func Write(w io.Writer, temps []float64, estimates []observables.Estimates, elapsed time.Duration, withCorrelation bool) error {
	if len(temps) != len(estimates) {
		return ErrLengthMismatch
	}
	for _, t := range temps {
		if math.IsNaN(t) || t <= 0 {
			return ErrTemperature
		}
	}

	cols := columns(withCorrelation)
	bw := bufio.NewWriter(w)
	bw.WriteString("# " + strings.Join(cols, ", ") + ", " + elapsedKey + " ")
	bw.WriteString(strconv.FormatInt(int64(elapsed/time.Second), 10))
	bw.WriteByte('\n')

	row := make([]string, 0, len(cols))
	for i, e := range estimates {
		row = append(row[:0],
			format(temps[i]),
			format(e.EnergyDensity),
			format(e.Magnetisation),
			format(e.SpecificHeat),
			format(e.Susceptibility),
		)
		if withCorrelation {
			row = append(row, format(e.CorrelationLength))
		}
		bw.WriteString(strings.Join(row, ", "))
		bw.WriteByte('\n')
	}

	return errors.Wrap(bw.Flush(), "results: write")
}

// WriteFile creates path and writes the table into it.
func WriteFile(path string, temps []float64, estimates []observables.Estimates, elapsed time.Duration, withCorrelation bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "results: create")
	}
	if err = Write(f, temps, estimates, elapsed, withCorrelation); err != nil {
		f.Close()
		return err
	}

	return errors.Wrap(f.Close(), "results: close")
}

// Read parses a table produced by Write.
func Read(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	t := &Table{}
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if strings.HasPrefix(text, "#") {
			if t.Columns != nil {
				return nil, errors.Wrapf(ErrMalformed, "line %d: second header", line)
			}
			if err := t.parseHeader(strings.TrimPrefix(text, "#")); err != nil {
				return nil, errors.Wrapf(err, "line %d", line)
			}
			continue
		}
		if t.Columns == nil {
			return nil, errors.Wrapf(ErrMalformed, "line %d: row before header", line)
		}
		fields := strings.Split(text, ",")
		if len(fields) != len(t.Columns) {
			return nil, errors.Wrapf(ErrMalformed, "line %d: %d values for %d columns", line, len(fields), len(t.Columns))
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, errors.Wrapf(ErrMalformed, "line %d: %v", line, err)
			}
			row[j] = v
		}
		t.Rows = append(t.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "results: read")
	}
	if t.Columns == nil {
		return nil, errors.Wrap(ErrMalformed, "missing header")
	}

	return t, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "results: open")
	}
	defer f.Close()

	return Read(f)
}

func (t *Table) parseHeader(h string) error {
	for _, f := range strings.Split(h, ",") {
		f = strings.TrimSpace(f)
		if !strings.HasPrefix(f, elapsedKey) {
			t.Columns = append(t.Columns, f)
			continue
		}
		secs, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(f, elapsedKey)), 64)
		if err != nil {
			return errors.Wrapf(ErrMalformed, "elapsed time: %v", err)
		}
		t.Elapsed = time.Duration(secs * float64(time.Second))
	}
	if len(t.Columns) == 0 || t.Columns[0] != ColTemperature {
		return errors.Wrap(ErrMalformed, "first column must be "+ColTemperature)
	}

	return nil
}

func columns(withCorrelation bool) []string {
	cols := []string{ColTemperature, ColEnergyDensity, ColMagnetisation, ColSpecificHeat, ColSusceptibility}
	if withCorrelation {
		cols = append(cols, ColCorrelationLength)
	}

	return cols
}

func format(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
