package write

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// WriteSettings controls where the progress of an optimization run goes.
// The zero value writes nothing.
type WriteSettings struct {
	DisplayWriters []Writer     // Where should the display be written. This can be set to nil to avoid all display
	Logger         *slog.Logger // If non-nil, receives one Debug record per iteration
}

// DefaultWriteSettings returns settings that write nothing, so that library
// callers don't get output they did not ask for.
func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{}
}

type Type int

const (
	// Logger is a writer intended to save details of the optimization run
	// for future postprocessing. The data is saved as a csv and data is printed
	// every major interation of the optimizer
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the optimization
	// Writes only happen periodically, and an effort is made to align columns
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

const headingInterval = 30
const valueInterval time.Duration = 500 * time.Millisecond

// Display writes the values collected from its data adders. Displayers only
// print at specific times, Loggers write every iteration.
// Assumption is that headings don't change during a run
type Display struct {
	displayValues []*Value

	headings   []string
	values     []string
	maxLengths []int

	lastHeadingDisplay int
	lastValueDisplay   time.Time

	existsDisplayer bool
	existsLogger    bool

	writers    []Writer
	slogger    *slog.Logger
	dataAdders []DataAdder
}

func NewDisplay() *Display {
	return &Display{}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// accumulateValues gets all of the values from the data adders and stores
// them in display
func (d *Display) accumulateValues() {
	d.displayValues = d.displayValues[:0]
	for _, add := range d.dataAdders {
		d.displayValues = add.AppendWriteData(d.displayValues)
	}
}

// Init initializes the displays for the writers according to their Type
func (d *Display) Init(w *WriteSettings) error {
	// headings and values are displayed on the first iteration
	d.lastHeadingDisplay = headingInterval + 1
	d.lastValueDisplay = time.Now().Add(-valueInterval)
	d.existsDisplayer = false
	d.existsLogger = false

	d.writers = nil
	d.slogger = nil
	if w != nil {
		d.writers = w.DisplayWriters
		d.slogger = w.Logger
	}
	if len(d.writers) == 0 {
		return nil
	}
	d.accumulateValues()

	d.headings = d.headings[:0]
	for _, dat := range d.displayValues {
		d.headings = append(d.headings, dat.Heading)
	}

	for _, w := range d.writers {
		switch w.T {
		default:
			return fmt.Errorf("display: unknown writer type %d", w.T)
		case Logger:
			d.existsLogger = true
			if err := writeCSV(w, d.headings); err != nil {
				return err
			}
		case Displayer:
			d.existsDisplayer = true
			if _, err := io.WriteString(w, "Beginning Optimization\n\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Iterate is the write action performed by display at every iteration
// of the algorithm
func (d *Display) Iterate() error {
	if d.slogger != nil && d.slogger.Enabled(context.Background(), slog.LevelDebug) {
		d.accumulateValues()
		attrs := make([]slog.Attr, 0, len(d.displayValues))
		for _, v := range d.displayValues {
			attrs = append(attrs, slog.Any(v.Heading, v.Value))
		}
		d.slogger.LogAttrs(context.Background(), slog.LevelDebug, "iteration", attrs...)
	}
	if len(d.writers) == 0 {
		return nil
	}

	var displayValues, displayHeadings bool
	if d.existsDisplayer {
		displayValues = d.shouldDisplayValues()
		if displayValues {
			d.lastValueDisplay = time.Now()
			d.lastHeadingDisplay++
		}

		displayHeadings = d.shouldDisplayHeadings()
		if displayHeadings {
			d.lastHeadingDisplay = 0
		}
	}

	// only accumulate values if needed
	if d.existsLogger || displayValues || displayHeadings {
		d.accumulateValues()
		d.values = d.values[:0]
		for _, v := range d.displayValues {
			d.values = append(d.values, valueToString(v.Value))
		}
	}

	if displayValues || displayHeadings {
		d.maxLengths = d.maxLengths[:0]
		for i, v := range d.values {
			l := len(v)
			if len(d.headings[i]) > l {
				l = len(d.headings[i])
			}
			d.maxLengths = append(d.maxLengths, l)
		}
	}
	for _, w := range d.writers {
		switch w.T {
		case Logger:
			if err := writeCSV(w, d.values); err != nil {
				return err
			}
		case Displayer:
			if displayHeadings {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
				if err := writeAlignedStrings(w, d.headings, d.maxLengths); err != nil {
					return err
				}
			}
			if displayValues {
				if err := writeAlignedStrings(w, d.values, d.maxLengths); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (d *Display) shouldDisplayValues() bool {
	// Limit printing with really quick objective functions
	return time.Since(d.lastValueDisplay) > valueInterval
}

func (d *Display) shouldDisplayHeadings() bool {
	return d.lastHeadingDisplay > headingInterval
}

func writeAlignedStrings(w io.Writer, strs []string, maxLengths []int) error {
	for i, str := range strs {
		s := str + strings.Repeat(" ", maxLengths[i]-len(str)) + "\t"
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeCSV writes one comma separated line
func writeCSV(w io.Writer, fields []string) error {
	_, err := io.WriteString(w, strings.Join(fields, ",")+"\n")
	return err
}

func valueToString(v interface{}) string {
	switch v := v.(type) {
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%e", v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
