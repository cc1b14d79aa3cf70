package madlibs

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Controller moves a Page between the question form and the story.
type Controller struct {
	page     Page
	bindings []FieldBinding
	mode     ViewMode
	logger   *zap.Logger
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithLogger sets the logger used to record transitions.
func WithLogger(l *zap.Logger) ControllerOption {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController creates a Controller for page and shows the question form.
func NewController(page Page, opts ...ControllerOption) *Controller {
	c := &Controller{
		page:     page,
		bindings: Bindings(),
		mode:     Asking,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.show(RegionQuestions, RegionStory)
	return c
}

// Mode returns the current view mode.
func (c *Controller) Mode() ViewMode {
	return c.mode
}

// Submit copies every field into its slot, shows the story and clears the form.
// It is valid in either mode and always replaces slot content.
func (c *Controller) Submit() {
	from := c.mode
	for _, b := range c.bindings {
		c.page.SetSlot(b.Slot, c.page.FieldValue(b.Field))
	}
	c.show(RegionStory, RegionQuestions)
	for _, b := range c.bindings {
		c.page.SetFieldValue(b.Field, "")
	}
	c.mode = Displaying
	c.logger.Debug("submit",
		zap.Stringer("from", from),
		zap.Stringer("to", c.mode),
		zap.Int("slots", len(c.bindings)))
}

// Replay shows the question form again. Fields keep whatever they hold,
// which after a submit is nothing.
func (c *Controller) Replay() {
	from := c.mode
	c.show(RegionQuestions, RegionStory)
	c.mode = Asking
	c.logger.Debug("replay",
		zap.Stringer("from", from),
		zap.Stringer("to", c.mode))
}

func (c *Controller) show(visible, hidden Region) {
	c.page.SetVisible(visible, true)
	c.page.SetVisible(hidden, false)
}

// Verify reports whether page holds every bound field and slot.
// Pages that do not implement Inspector are assumed complete.
func Verify(page Page) error {
	in, ok := page.(Inspector)
	if !ok {
		return nil
	}
	fields, slots := in.Fields(), in.Slots()
	for _, b := range bindings {
		if !slices.Contains(fields, b.Field) {
			return fmt.Errorf("%w: %s", ErrMissingField, b.Field)
		}
		if !slices.Contains(slots, b.Slot) {
			return fmt.Errorf("%w: %s", ErrMissingSlot, b.Slot)
		}
	}
	return nil
}
