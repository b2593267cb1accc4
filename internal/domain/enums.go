package domain

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPresent  Status = "Present"
	StatusSick     Status = "Sick"
	StatusVacation Status = "Vacation"
	StatusHoliday  Status = "Holiday"
	StatusOther    Status = "Other"
)

// Statuses lists every accepted status in display order.
var Statuses = []Status{StatusPresent, StatusSick, StatusVacation, StatusHoliday, StatusOther}

// legacyStatusLabels maps the German labels stored by older databases
// to their canonical status.
var legacyStatusLabels = map[string]Status{
	"krank":    StatusSick,
	"urlaub":   StatusVacation,
	"feiertag": StatusHoliday,
	"sonstige": StatusOther,
}

// Valid reports whether s is one of the canonical statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus accepts a canonical status (case-insensitive) or a legacy label.
func ParseStatus(s string) (Status, error) {
	trimmed := strings.TrimSpace(s)
	for _, known := range Statuses {
		if strings.EqualFold(trimmed, string(known)) {
			return known, nil
		}
	}
	if st, ok := legacyStatusLabels[strings.ToLower(trimmed)]; ok {
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalid, s)
}

// CalendarClass returns the decoration class a calendar uses for a day
// carrying this status. Other has no decoration.
func (s Status) CalendarClass() string {
	switch s {
	case StatusSick:
		return "day-sick"
	case StatusVacation:
		return "day-vacation"
	case StatusPresent:
		return "day-present"
	case StatusHoliday:
		return "holiday-day"
	default:
		return ""
	}
}

// Modality is a billable therapy type that performance records count.
// Its value doubles as the therapy catalog name used to price it.
type Modality string

const (
	ModalityKG         Modality = "kg"
	ModalityMT         Modality = "mt"
	ModalityMLD        Modality = "mld"
	ModalityMLD45      Modality = "mld_45"
	ModalityMLD60      Modality = "mld_60"
	ModalityMA         Modality = "ma"
	ModalityFango      Modality = "fango"
	ModalityUltraschal Modality = "ultraschal"
	ModalityHB         Modality = "hb"
)

// Modalities is the canonical modality order used for columns, forms and reports.
var Modalities = []Modality{
	ModalityKG, ModalityMT, ModalityMLD, ModalityMLD45, ModalityMLD60,
	ModalityMA, ModalityFango, ModalityUltraschal, ModalityHB,
}

// Label returns the short display label, e.g. "MLD 45".
func (m Modality) Label() string {
	switch m {
	case ModalityFango:
		return "Fango"
	case ModalityUltraschal:
		return "Ultraschal"
	}
	return strings.ToUpper(strings.ReplaceAll(string(m), "_", " "))
}

// Column returns the performance table column holding this modality's count.
func (m Modality) Column() string {
	return string(m) + "_num"
}
