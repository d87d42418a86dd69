package valuation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// FaultID identifies a condition defect a customer can report on a trade-in.
type FaultID string

const (
	FaultCrackedScreen   FaultID = "cracked-screen"
	FaultBiometric       FaultID = "biometric-failure"
	FaultICloudLocked    FaultID = "icloud-locked"
	FaultSpeaker         FaultID = "speaker-broken"
	FaultCamera          FaultID = "camera-broken"
	FaultButtons         FaultID = "buttons-damaged"
	FaultBatteryDegraded FaultID = "battery-degraded"
	FaultWaterDamage     FaultID = "water-damage"
)

// Fault is one entry of the fault catalog. Rate is a fraction of the device's
// base price in (0, 1].
type Fault struct {
	ID    FaultID         `json:"id"`
	Label string          `json:"label"`
	Rate  decimal.Decimal `json:"rate"`
}

// FaultTable maps fault ids to their catalog entries.
type FaultTable map[FaultID]Fault

func rate(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DefaultFaults is the storefront's fault catalog.
var DefaultFaults = NewFaultTable(
	Fault{ID: FaultCrackedScreen, Label: "Cracked or damaged screen", Rate: rate("0.25")},
	Fault{ID: FaultBiometric, Label: "Face ID / Touch ID not working", Rate: rate("0.15")},
	Fault{ID: FaultICloudLocked, Label: "iCloud / activation locked", Rate: rate("0.80")},
	Fault{ID: FaultSpeaker, Label: "Speaker not working", Rate: rate("0.10")},
	Fault{ID: FaultCamera, Label: "Camera not working", Rate: rate("0.10")},
	Fault{ID: FaultButtons, Label: "Damaged buttons", Rate: rate("0.05")},
	Fault{ID: FaultBatteryDegraded, Label: "Battery health below 80%", Rate: rate("0.15")},
	Fault{ID: FaultWaterDamage, Label: "Signs of water damage", Rate: rate("0.30")},
)

func NewFaultTable(faults ...Fault) FaultTable {
	t := make(FaultTable, len(faults))
	for _, f := range faults {
		t[f.ID] = f
	}
	return t
}

// List returns the catalog ordered by id.
func (t FaultTable) List() []Fault {
	out := make([]Fault, 0, len(t))
	for _, f := range t {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Selection is a set of selected fault ids. Order is irrelevant.
type Selection map[FaultID]struct{}

func NewSelection(ids ...FaultID) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// SelectionFromStrings builds a selection from raw ids as submitted by clients.
func SelectionFromStrings(ids []string) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[FaultID(id)] = struct{}{}
	}
	return s
}

// Known returns the selected ids present in the table, sorted.
func (s Selection) Known(t FaultTable) []FaultID {
	out := make([]FaultID, 0, len(s))
	for id := range s {
		if _, ok := t[id]; ok {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
