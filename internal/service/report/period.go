package report

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout    = "2006-01-02"
	displayLayout = "02.01.2006"
)

var (
	ErrInvalidDate   = errors.New("Неверный формат дат")
	ErrInvalidPeriod = errors.New("дата окончания периода раньше даты начала")
)

// Period: отчётный период, обе границы включаются.
type Period struct {
	Start time.Time
	End   time.Time
}

func ParsePeriod(start, end string) (Period, error) {
	from, err := time.ParseInLocation(DateLayout, start, time.Local)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %s", ErrInvalidDate, start)
	}
	to, err := time.ParseInLocation(DateLayout, end, time.Local)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %s", ErrInvalidDate, end)
	}
	if to.Before(from) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Start: from, End: to}, nil
}

// Until возвращает исключающую верхнюю границу для запросов, начало дня после End.
func (p Period) Until() time.Time {
	return p.End.AddDate(0, 0, 1)
}

func (p Period) Days() int {
	return int(p.Until().Sub(p.Start).Hours()/24 + 0.5)
}

// Contains сравнивает только календарную дату t.
func (p Period) Contains(t time.Time) bool {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, p.Start.Location())
	return !day.Before(p.Start) && !day.After(p.End)
}

// String в формате «dd.mm.yyyy-dd.mm.yyyy», используется в именах файлов.
func (p Period) String() string {
	return p.Start.Format(displayLayout) + "-" + p.End.Format(displayLayout)
}
