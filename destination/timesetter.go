package destination

import (
	"fmt"
	"time"

	"github.com/TalentFormula/rtfdoc/group"
)

// TimeSetter builds a date-time from the \yr/\mo/\dy/\hr/\min/\sec control
// words set on its owning group and hands it to assign on close. Those
// control words fall to the control dispatcher's generic
// "prop[word]=param" default rule, so TimeSetter reads them directly off
// the property map it was handed at construction rather than through
// Write — a \creatim group ordinarily carries no literal text at all.
type TimeSetter struct {
	Unsupported
	props  group.PropertyMap
	assign func(time.Time)
}

// NewTimeSetter returns a TimeSetter reading yr/mo/dy/hr/min/sec off props
// (the property map of the group this destination is installed on) when
// that group closes.
func NewTimeSetter(name string, props group.PropertyMap, assign func(time.Time)) *TimeSetter {
	return &TimeSetter{Unsupported: Unsupported{Name: name}, props: props, assign: assign}
}

func (t *TimeSetter) Close() error {
	if !t.props.Has("yr") || !t.props.Has("mo") || !t.props.Has("dy") {
		return fmt.Errorf("%s: date destination missing required yr/mo/dy", t.Name)
	}
	yr := t.props.Int("yr", 0)
	mo := t.props.Int("mo", 1)
	dy := t.props.Int("dy", 1)
	hr := t.props.Int("hr", 0)
	min := t.props.Int("min", 0)
	sec := t.props.Int("sec", 0)
	if t.assign != nil {
		t.assign(time.Date(yr, time.Month(mo), dy, hr, min, sec, 0, time.UTC))
	}
	return nil
}
