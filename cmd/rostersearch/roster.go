package main

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/benz9527/xpartial/lib/infra"
	"github.com/benz9527/xpartial/lib/partial"
	"github.com/benz9527/xpartial/lib/tuple"
)

// person is (last name, first name, age). Empty CSV cells are null fields.
type person = tuple.Triple[string, string, int]

//go:embed roster.csv
var defaultRoster string

var (
	byPerson    = partial.CompareFunc(partial.Shared[string](partial.Shared[string](partial.Shared[int](partial.Terminal[tuple.End]()))))
	byLast      = partial.OneOf(partial.Triple[string, string, int]())
	byLastFirst = partial.TwoOf(partial.Triple[string, string, int]())
)

func field[F, R any](v F, ok bool, rest R) tuple.Tuple[F, R] {
	if !ok {
		return tuple.PrependNull[F](rest)
	}
	return tuple.Prepend(v, rest)
}

func parsePerson(rec []string) (person, error) {
	if len(rec) != 3 {
		return person{}, infra.NewErrorStackf("want 3 fields, got %d", len(rec))
	}
	last, first, ageText := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1]), strings.TrimSpace(rec[2])
	age, hasAge := 0, len(ageText) > 0
	if hasAge {
		var err error
		if age, err = strconv.Atoi(ageText); err != nil {
			return person{}, infra.WrapErrorStack(err, "invalid age")
		}
	}
	return person(field(last, len(last) > 0,
		field(first, len(first) > 0,
			field(age, hasAge, tuple.End{}),
		),
	)), nil
}

// parseRoster keeps every valid row. Invalid rows are skipped and reported
// together in the returned error.
func parseRoster(r io.Reader) ([]person, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	var (
		people []person
		merr   error
	)
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// The reader is unable to resync after a malformed quote.
			merr = multierr.Append(merr, infra.WrapErrorStack(err, "read roster"))
			break
		}
		line, _ := reader.FieldPos(0)
		if line == 1 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "last") {
			continue
		}
		p, err := parsePerson(rec)
		if err != nil {
			merr = multierr.Append(merr, infra.WrapErrorStack(err, "roster line "+strconv.Itoa(line)))
			continue
		}
		people = append(people, p)
	}
	slices.SortStableFunc(people, func(a, b person) int {
		return byPerson(a.Tuple(), b.Tuple())
	})
	return people, merr
}

func loadRoster(cfg *config) ([]person, error) {
	if len(cfg.roster) == 0 {
		return parseRoster(strings.NewReader(defaultRoster))
	}
	f, err := os.Open(cfg.roster)
	if err != nil {
		return nil, infra.WrapErrorStack(err, "open roster")
	}
	defer func() {
		_ = f.Close()
	}()
	return parseRoster(f)
}

// search returns the sub-slice of sorted matching the last name, and the
// first name if it is set.
func search(sorted []person, last, first string) []person {
	if len(first) == 0 {
		return partial.Matches(sorted, byLast.Compare(tuple.From1(last)))
	}
	return partial.Matches(sorted, byLastFirst.Compare(tuple.From2(last, first)))
}
