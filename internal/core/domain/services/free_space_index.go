package services

import (
	"fmt"
	"math"
	"slices"

	"loadplanner/internal/core/domain/model/kernel"
	"loadplanner/internal/pkg/errs"
)

// MinSpanCm is the smallest remaining extent, in centimetres, worth keeping as
// free space after a split. Thinner slivers are discarded.
const MinSpanCm = 1.0

// FreeSpace is an empty axis-aligned region inside the container.
// X, Y, Z locate its origin corner; W, D, H are its extent along each axis.
type FreeSpace struct {
	X, Y, Z float64
	W, D, H float64
}

// Volume returns W × D × H.
func (s FreeSpace) Volume() float64 {
	return s.W * s.D * s.H
}

// Fits reports whether size fits inside s without rotation.
func (s FreeSpace) Fits(size kernel.Dimensions) bool {
	return size.Width() <= s.W+kernel.Epsilon &&
		size.Depth() <= s.D+kernel.Epsilon &&
		size.Height() <= s.H+kernel.Epsilon
}

// FreeSpaceIndex keeps the free regions of one container as an arena of values
// addressed by index. Placing a box replaces the chosen region by at most
// three children (right of, behind and above the box) which, with the box,
// exactly tile the original region. Regions therefore never overlap.
//
// The index is not safe for concurrent use; each planning call owns one.
type FreeSpaceIndex struct {
	spaces []FreeSpace
}

// NewFreeSpaceIndex creates an index holding the single region root.
func NewFreeSpaceIndex(root FreeSpace) *FreeSpaceIndex {
	return &FreeSpaceIndex{spaces: []FreeSpace{root}}
}

// Len returns the number of free regions.
func (f *FreeSpaceIndex) Len() int {
	return len(f.spaces)
}

// Candidates returns a snapshot of the free regions in index order.
func (f *FreeSpaceIndex) Candidates() []FreeSpace {
	return slices.Clone(f.spaces)
}

// Commit places a box of the given orientation at the origin corner of the
// region at spaceIndex and splits the remainder.
//
// Children, emitted only when their remaining span exceeds MinSpanCm:
//   - right:  {x+w, y, z, W-w, D, H}
//   - behind: {x, y+d, z, w, D-d, H}
//   - above:  {x, y, z+h, w, d, H-h}
//
// Returns:
//   - kernel.Point: where the box was placed
//   - error: when spaceIndex is out of range or the orientation does not fit
func (f *FreeSpaceIndex) Commit(spaceIndex int, size kernel.Dimensions) (kernel.Point, error) {
	if spaceIndex < 0 || spaceIndex >= len(f.spaces) {
		return kernel.Point{}, errs.NewValueIsOutOfRangeError("space index", spaceIndex, 0, len(f.spaces)-1)
	}
	if err := size.Validate(); err != nil {
		return kernel.Point{}, err
	}

	s := f.spaces[spaceIndex]
	if !s.Fits(size) {
		return kernel.Point{}, errs.NewValueIsInvalidErrorWithCause(
			"orientation", fmt.Errorf("%s does not fit free space %+v", size, s))
	}

	at, err := kernel.NewPoint(s.X, s.Y, s.Z)
	if err != nil {
		return kernel.Point{}, err
	}

	w, d, h := size.Width(), size.Depth(), size.Height()
	f.spaces = slices.Delete(f.spaces, spaceIndex, spaceIndex+1)

	if s.W-w > MinSpanCm {
		f.spaces = append(f.spaces, FreeSpace{X: s.X + w, Y: s.Y, Z: s.Z, W: s.W - w, D: s.D, H: s.H})
	}
	if s.D-d > MinSpanCm {
		f.spaces = append(f.spaces, FreeSpace{X: s.X, Y: s.Y + d, Z: s.Z, W: w, D: s.D - d, H: s.H})
	}
	if s.H-h > MinSpanCm {
		f.spaces = append(f.spaces, FreeSpace{X: s.X, Y: s.Y, Z: s.Z + h, W: w, D: d, H: s.H - h})
	}

	return at, nil
}

// Coalesce merges pairs of regions that touch along one axis and share the
// same cross-section on the other two, until no pair qualifies. The scan
// restarts after every merge. Each merge removes one region, so the loop ends
// after at most Len()-1 merges.
//
// Returns the number of merges performed.
func (f *FreeSpaceIndex) Coalesce() int {
	merges := 0
	for f.mergeOnce() {
		merges++
	}
	return merges
}

func (f *FreeSpaceIndex) mergeOnce() bool {
	for i := range f.spaces {
		for j := i + 1; j < len(f.spaces); j++ {
			if merged, ok := mergeSpaces(f.spaces[i], f.spaces[j]); ok {
				f.spaces[i] = merged
				f.spaces = slices.Delete(f.spaces, j, j+1)
				return true
			}
		}
	}
	return false
}

// mergeSpaces returns the union of a and b when it is itself a box.
func mergeSpaces(a, b FreeSpace) (FreeSpace, bool) {
	eq := kernel.NearlyEqual

	// Along X: same Y/D and Z/H band, touching faces.
	if eq(a.Y, b.Y) && eq(a.D, b.D) && eq(a.Z, b.Z) && eq(a.H, b.H) &&
		(eq(a.X+a.W, b.X) || eq(b.X+b.W, a.X)) {
		return FreeSpace{X: math.Min(a.X, b.X), Y: a.Y, Z: a.Z, W: a.W + b.W, D: a.D, H: a.H}, true
	}
	// Along Y.
	if eq(a.X, b.X) && eq(a.W, b.W) && eq(a.Z, b.Z) && eq(a.H, b.H) &&
		(eq(a.Y+a.D, b.Y) || eq(b.Y+b.D, a.Y)) {
		return FreeSpace{X: a.X, Y: math.Min(a.Y, b.Y), Z: a.Z, W: a.W, D: a.D + b.D, H: a.H}, true
	}
	// Along Z.
	if eq(a.X, b.X) && eq(a.W, b.W) && eq(a.Y, b.Y) && eq(a.D, b.D) &&
		(eq(a.Z+a.H, b.Z) || eq(b.Z+b.H, a.Z)) {
		return FreeSpace{X: a.X, Y: a.Y, Z: math.Min(a.Z, b.Z), W: a.W, D: a.D, H: a.H + b.H}, true
	}
	return FreeSpace{}, false
}
