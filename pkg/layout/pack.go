package layout

// Item is an entry for Pack. A flexible item takes a share of whatever length
// the fixed items leave over.
type Item struct {
	Flexible bool
	Length   float64
}

// Fixed returns a fixed item.
func Fixed(length float64) Item { return Item{Length: length} }

// Flex is a flexible item.
var Flex = Item{Flexible: true}

// Interval is a half-open range along one axis.
type Interval struct{ Start, End float64 }

func (iv Interval) Length() float64 { return iv.End - iv.Start }

// Pack lays out items one after another along an axis of the given total
// length. Fixed items keep their length; flexible items split the rest
// equally, getting nothing if the fixed items already use up total.
//
// It returns the interval of each item, the length given to each flexible
// item, and the length of all items together.
func Pack(total float64, items []Item) (intervals []Interval, flex, length float64) {
	fixed, nFlex := 0.0, 0
	for _, item := range items {
		if item.Flexible {
			nFlex++
		} else {
			fixed += item.Length
		}
	}
	if nFlex > 0 {
		flex = max(total-fixed, 0) / float64(nFlex)
	}
	intervals = make([]Interval, len(items))
	x := 0.0
	for i, item := range items {
		l := item.Length
		if item.Flexible {
			l = flex
		}
		intervals[i] = Interval{x, x + l}
		x += l
	}
	return intervals, flex, x
}
