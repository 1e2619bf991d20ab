package xr

import "fmt"

// Button identifies one of the queryable controls on a tracked controller.
type Button int

const (
	Primary2DAxisClick Button = iota
	TriggerButton
	GripButton
	PrimaryButton
)

var buttonNames = map[Button]string{
	Primary2DAxisClick: "primary2DAxisClick",
	TriggerButton:      "trigger",
	GripButton:         "grip",
	PrimaryButton:      "primaryButton",
}

func (b Button) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("button(%d)", int(b))
}

// ParseButton maps a configuration string onto a Button.
func ParseButton(name string) (Button, error) {
	for b, n := range buttonNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}
