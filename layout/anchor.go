// SPDX-License-Identifier: MIT

package layout

// Anchor says on which side of a response-vector tip its label sits.
type Anchor uint8

const (
	// AnchorBelow places the label with its baseline at the tip (text extends up, away from the origin).
	AnchorBelow Anchor = iota
	// AnchorAbove places the label with its top at the tip (text extends down).
	AnchorAbove
)

// LabelAnchor returns AnchorBelow for y > 0 and AnchorAbove for y <= 0.
// Zero goes to AnchorAbove.
func LabelAnchor(y float64) Anchor {
	if y > 0 {
		return AnchorBelow
	}
	return AnchorAbove
}

// String returns "below" or "above".
func (a Anchor) String() string {
	if a == AnchorBelow {
		return "below"
	}
	return "above"
}

// Baseline returns the text baseline of the anchor: "bottom" or "top".
func (a Anchor) Baseline() string {
	if a == AnchorBelow {
		return "bottom"
	}
	return "top"
}
