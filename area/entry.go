package area

import (
	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Entry is a resource cost vector. Every field is a non-negative count of the corresponding
// FPGA primitive.
type Entry struct {
	LUT  int
	FF   int
	BRAM int
	URAM int
	DSP  int
}

// Add returns the element-wise sum of two entries
func (e Entry) Add(other Entry) Entry {
	return Entry{
		LUT:  e.LUT + other.LUT,
		FF:   e.FF + other.FF,
		BRAM: e.BRAM + other.BRAM,
		URAM: e.URAM + other.URAM,
		DSP:  e.DSP + other.DSP,
	}
}

func (e Entry) IsZero() bool {
	return e == Entry{}
}

func (e Entry) Validate() error {
	if e.LUT < 0 || e.FF < 0 || e.BRAM < 0 || e.URAM < 0 || e.DSP < 0 {
		return errors.Newf("area entry has a negative resource count: %+v", e)
	}
	return nil
}

// WriteJSON populates a json object with the five resource counts
func (e Entry) WriteJSON(json *jwriter.ObjectState) {
	json.Name("LUT").Int(e.LUT)
	json.Name("FF").Int(e.FF)
	json.Name("BRAM").Int(e.BRAM)
	json.Name("URAM").Int(e.URAM)
	json.Name("DSP").Int(e.DSP)
}

// Sum adds any number of entries together
func Sum(entries ...Entry) Entry {
	var total Entry
	for _, entry := range entries {
		total = total.Add(entry)
	}
	return total
}
