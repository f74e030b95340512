// Package drill runs a table through a fixed workload and checks the results,
// including that every key and value reaches its destructor exactly once.
package drill

import (
	"fmt"
	"io"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/homier/arraytable"
)

type Report struct {
	Inserted    int
	Overwritten int
	Removed     int
	Filled      int
	Live        int
}

// ledger counts insertions and destructions per key and per value.
type ledger struct {
	keyInserts    map[int]int
	keyDestroys   map[int]int
	valueInserts  map[string]int
	valueDestroys map[string]int
}

func newLedger() *ledger {
	return &ledger{
		keyInserts:    make(map[int]int),
		keyDestroys:   make(map[int]int),
		valueInserts:  make(map[string]int),
		valueDestroys: make(map[string]int),
	}
}

func (l *ledger) balanced() error {
	if len(l.keyDestroys) != len(l.keyInserts) {
		return errors.Errorf("%d keys inserted, %d destroyed", len(l.keyInserts), len(l.keyDestroys))
	}

	for k, n := range l.keyInserts {
		if got := l.keyDestroys[k]; got != n {
			return errors.Errorf("key %d: inserted %d times, destroyed %d times", k, n, got)
		}
	}

	if len(l.valueDestroys) != len(l.valueInserts) {
		return errors.Errorf("%d values inserted, %d destroyed", len(l.valueInserts), len(l.valueDestroys))
	}

	for v, n := range l.valueInserts {
		if got := l.valueDestroys[v]; got != n {
			return errors.Errorf("value %q: inserted %d times, destroyed %d times", v, n, got)
		}
	}

	return nil
}

// Run inserts cfg.Keys keys, overwrites the even ones, removes every third
// one, fills the table up to its capacity and destroys it, verifying the table
// after every step. With cfg.Print the surviving workload entries are written to out.
func Run(cfg Config, logger *zap.Logger, out io.Writer) (Report, error) {
	var report Report

	if err := cfg.Validate(); err != nil {
		return report, err
	}

	l := newLedger()

	t, err := arraytable.NewComparable(
		arraytable.WithCapacity[int, string](cfg.Capacity),
		arraytable.WithKeyDestructor[int, string](func(k int) { l.keyDestroys[k]++ }),
		arraytable.WithValueDestructor[int, string](func(v string) { l.valueDestroys[v]++ }),
		arraytable.WithLogger[int, string](logger),
	)
	if err != nil {
		return report, errors.Wrap(err, "create table")
	}
	defer t.Destroy()

	insert := func(k int, v string) error {
		if err := t.Insert(k, v); err != nil {
			return errors.Wrapf(err, "insert %d", k)
		}

		l.keyInserts[k]++
		l.valueInserts[v]++

		return nil
	}

	for k := range cfg.Keys {
		if err := insert(k, fmt.Sprintf("v-%d", k)); err != nil {
			return report, err
		}
		report.Inserted++
	}

	for k := 0; k < cfg.Keys; k += 2 {
		if err := insert(k, fmt.Sprintf("w-%d", k)); err != nil {
			return report, err
		}
		report.Overwritten++
	}

	if t.Len() != cfg.Keys {
		return report, errors.Errorf("overwrites changed the size: want %d, got %d", cfg.Keys, t.Len())
	}

	for k := 0; k < cfg.Keys; k += 3 {
		if !t.Remove(k) {
			return report, errors.Errorf("key %d not removed", k)
		}
		report.Removed++
	}

	if t.Remove(-1) {
		return report, errors.New("removed a key that was never inserted")
	}

	if want := cfg.Keys - report.Removed; t.Len() != want {
		return report, errors.Errorf("size after removals: want %d, got %d", want, t.Len())
	}

	for k := range cfg.Keys {
		if err := checkLookup(t, k); err != nil {
			return report, err
		}
	}

	if cfg.Print {
		t.ForEach(func(k int, v string) {
			_, _ = fmt.Fprintf(out, "%d: %s\n", k, v)
		})
	}

	for k := cfg.Keys; t.Len() < t.Capacity(); k++ {
		if err := insert(k, fmt.Sprintf("f-%d", k)); err != nil {
			return report, err
		}
		report.Filled++
	}

	if err := t.Insert(-1, "overflow"); !errors.Is(err, arraytable.ErrCapacityExceeded) {
		return report, errors.Errorf("insert into a full table: want %v, got %v", arraytable.ErrCapacityExceeded, err)
	}

	report.Live = t.Len()
	t.Destroy()

	if !t.IsEmpty() {
		return report, errors.New("table not empty after destroy")
	}

	if err := l.balanced(); err != nil {
		return report, errors.Wrap(err, "destructor calls")
	}

	logger.Info("drill passed",
		zap.Int("inserted", report.Inserted),
		zap.Int("overwritten", report.Overwritten),
		zap.Int("removed", report.Removed),
		zap.Int("filled", report.Filled),
		zap.Int("live", report.Live),
	)

	return report, nil
}

func checkLookup(t *arraytable.Table[int, string], k int) error {
	v, ok := t.Lookup(k)

	switch {
	case k%3 == 0:
		if ok {
			return errors.Errorf("removed key %d still maps to %q", k, v)
		}
	case k%2 == 0:
		if want := fmt.Sprintf("w-%d", k); !ok || v != want {
			return errors.Errorf("key %d: want %q, got %q (found: %v)", k, want, v, ok)
		}
	default:
		if want := fmt.Sprintf("v-%d", k); !ok || v != want {
			return errors.Errorf("key %d: want %q, got %q (found: %v)", k, want, v, ok)
		}
	}

	return nil
}
