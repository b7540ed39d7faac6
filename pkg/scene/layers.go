package scene

import (
	"fmt"
	"math/bits"
	"strings"
)

// LayerCount is the number of channels a Layers mask holds.
const LayerCount = 64

// Layers is a bitmask of enabled channels. Two objects share a layer when
// their masks intersect.
type Layers struct {
	Mask uint64
}

// NewLayers returns a mask with only channel 0 enabled.
func NewLayers() Layers {
	return Layers{Mask: 1}
}

func channelBit(channel uint) uint64 {
	if channel >= LayerCount {
		panic(fmt.Sprintf("scene: layer channel %d out of range [0, %d)", channel, LayerCount))
	}
	return 1 << channel
}

// Set enables channel and disables every other channel.
func (l *Layers) Set(channel uint) {
	l.Mask = channelBit(channel)
}

// Enable turns channel on.
func (l *Layers) Enable(channel uint) {
	l.Mask |= channelBit(channel)
}

// EnableAll turns every channel on.
func (l *Layers) EnableAll() {
	l.Mask = ^uint64(0)
}

// Toggle flips channel.
func (l *Layers) Toggle(channel uint) {
	l.Mask ^= channelBit(channel)
}

// Disable turns channel off.
func (l *Layers) Disable(channel uint) {
	l.Mask &^= channelBit(channel)
}

// DisableAll turns every channel off.
func (l *Layers) DisableAll() {
	l.Mask = 0
}

// Test reports whether l and other share at least one channel.
func (l Layers) Test(other Layers) bool {
	return l.Mask&other.Mask != 0
}

// IsEnabled reports whether channel is on.
func (l Layers) IsEnabled(channel uint) bool {
	return l.Mask&channelBit(channel) != 0
}

// Channels returns the enabled channels in ascending order.
func (l Layers) Channels() []uint {
	out := make([]uint, 0, bits.OnesCount64(l.Mask))
	for m := l.Mask; m != 0; m &= m - 1 {
		out = append(out, uint(bits.TrailingZeros64(m)))
	}
	return out
}

// String lists the enabled channels, e.g. "layers[0 5]".
func (l Layers) String() string {
	ch := l.Channels()
	parts := make([]string, len(ch))
	for i, c := range ch {
		parts[i] = fmt.Sprint(c)
	}
	return "layers[" + strings.Join(parts, " ") + "]"
}
