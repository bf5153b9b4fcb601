package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInput_DigitAdvancesFocus(t *testing.T) {
	c := NewChallenge("u@example.com", FlowLogin)

	c.Input(0, "1")
	assert.Equal(t, 1, c.Focus())

	c.Input(1, "2")
	assert.Equal(t, 2, c.Focus())

	slots := c.Slots()
	assert.Equal(t, "1", slots[0])
	assert.Equal(t, "2", slots[1])
}

func TestInput_LastSlotDoesNotAdvance(t *testing.T) {
	c := NewChallenge("u@example.com", FlowLogin)
	c.Input(5, "9")
	assert.Equal(t, 5, c.Focus())
	assert.Equal(t, "9", c.Slots()[5])
}

func TestInput_NonDigitRejected(t *testing.T) {
	c := NewChallenge("u@example.com", FlowLogin)
	c.Input(0, "a")
	assert.Equal(t, "", c.Slots()[0])
	assert.Equal(t, 0, c.Focus())
}

func TestInput_EmptyClearsWithoutMovingFocus(t *testing.T) {
	c := NewChallenge("u@example.com", FlowLogin)
	c.Input(0, "1")
	c.Input(1, "2")

	c.Input(1, "")
	assert.Equal(t, "", c.Slots()[1])
	assert.Equal(t, 1, c.Focus())
}

func TestBackspace_EmptySlotMovesBack(t *testing.T) {
	c := NewChallenge("u@example.com", FlowLogin)
	c.Input(0, "1") // focus now 1, slot 1 empty

	c.Backspace(1)
	assert.Equal(t, 0, c.Focus())
}

func TestBackspace_FirstSlotStays(t *testing.T) {
	c := NewChallenge("u@example.com", FlowLogin)
	c.Backspace(0)
	assert.Equal(t, 0, c.Focus())
}

func TestPaste_FullCode(t *testing.T) {
	c := NewChallenge("u@example.com", FlowLogin)
	c.Paste("123456")

	code, ok := c.Code()
	assert.True(t, ok)
	assert.Equal(t, "123456", code)
}

func TestPaste_NonDigitLeavesSlotUntouched(t *testing.T) {
	c := NewChallenge("u@example.com", FlowLogin)
	c.Paste("12a456")

	slots := c.Slots()
	assert.Equal(t, [SlotCount]string{"1", "2", "", "4", "5", "6"}, slots)

	_, ok := c.Code()
	assert.False(t, ok, "incomplete code must not submit")
}

func TestPaste_LongTextTruncatedToSixChars(t *testing.T) {
	c := NewChallenge("u@example.com", FlowLogin)
	c.Paste("9876543210")

	code, ok := c.Code()
	assert.True(t, ok)
	assert.Equal(t, "987654", code)
}

func TestPaste_ShortTextFillsPrefixOnly(t *testing.T) {
	c := NewChallenge("u@example.com", FlowLogin)
	c.Input(5, "7")
	c.Paste("12")

	slots := c.Slots()
	assert.Equal(t, "1", slots[0])
	assert.Equal(t, "2", slots[1])
	assert.Equal(t, "7", slots[5], "slots beyond the pasted prefix keep their value")
}

func TestCode_RequiresAllSixSlots(t *testing.T) {
	c := NewChallenge("u@example.com", FlowSignup)
	for i := 0; i < 5; i++ {
		c.Input(i, "1")
	}
	_, ok := c.Code()
	assert.False(t, ok)

	c.Input(5, "1")
	code, ok := c.Code()
	assert.True(t, ok)
	assert.Equal(t, "111111", code)
}

func TestClear_EmptiesSlotsAndResetsFocus(t *testing.T) {
	c := NewChallenge("u@example.com", FlowLogin)
	c.Paste("123456")
	c.Clear()

	assert.Equal(t, [SlotCount]string{}, c.Slots())
	assert.Equal(t, 0, c.Focus())

	_, ok := c.Code()
	assert.False(t, ok)
}
