package core

import "github.com/huangsam/dietradar/schema"

// InteractionState tracks which diets are drawn and which one is hovered.
// It is not safe for concurrent use; callers that share one must guard it.
type InteractionState struct {
	visible map[schema.Diet]bool
	hovered schema.Diet // empty when nothing is hovered
}

// NewInteractionState starts with every listed diet visible and nothing hovered.
func NewInteractionState(diets []schema.Diet) *InteractionState {
	s := &InteractionState{visible: make(map[schema.Diet]bool, len(diets))}
	for _, d := range diets {
		s.visible[d] = true
	}
	return s
}

// Toggle flips the visibility of one diet. A diet the state has never seen
// counts as hidden, so its first toggle shows it.
func (s *InteractionState) Toggle(d schema.Diet) {
	s.visible[d] = !s.visible[d]
}

// SetVisible forces the visibility of one diet.
func (s *InteractionState) SetVisible(d schema.Diet, visible bool) {
	s.visible[d] = visible
}

// IsVisible reports whether d is drawn.
func (s *InteractionState) IsVisible(d schema.Diet) bool {
	return s.visible[d]
}

// SetHovered marks d as the hovered diet, replacing any previous one.
// An empty diet clears the hover.
func (s *InteractionState) SetHovered(d schema.Diet) {
	s.hovered = d
}

// ClearHovered drops the hovered diet.
func (s *InteractionState) ClearHovered() {
	s.hovered = ""
}

// Hovered returns the hovered diet, if any.
func (s *InteractionState) Hovered() (schema.Diet, bool) {
	return s.hovered, s.hovered != ""
}

// FillOpacity derives the area opacity for d from the current state.
func (s *InteractionState) FillOpacity(d schema.Diet) float64 {
	switch {
	case !s.IsVisible(d):
		return schema.OpacityHidden
	case s.hovered == "":
		return schema.FillOpacityIdle
	case s.hovered == d:
		return schema.FillOpacityFocused
	default:
		return schema.FillOpacityDimmed
	}
}

// StrokeOpacity derives the outline opacity for d from the current state.
func (s *InteractionState) StrokeOpacity(d schema.Diet) float64 {
	switch {
	case !s.IsVisible(d):
		return schema.OpacityHidden
	case s.hovered == "":
		return schema.StrokeOpacityIdle
	case s.hovered == d:
		return schema.StrokeOpacityFocused
	default:
		return schema.StrokeOpacityDimmed
	}
}

// Label returns the plain state label for d: Hidden, Focused, Dimmed or Visible.
func (s *InteractionState) Label(d schema.Diet) string {
	return schema.GetStateLabel(s.IsVisible(d), s.hovered != "" && s.hovered == d, s.hovered != "")
}

// Clone returns an independent copy of the state.
func (s *InteractionState) Clone() *InteractionState {
	c := &InteractionState{
		visible: make(map[schema.Diet]bool, len(s.visible)),
		hovered: s.hovered,
	}
	for k, v := range s.visible {
		c.visible[k] = v
	}
	return c
}
