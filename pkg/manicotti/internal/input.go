package internal

import (
	"github.com/BrandonKowalski/manicotti/pkg/manicotti/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// InputEvent is a hardware-independent input event: a virtual button and
// its pressed state.
type InputEvent struct {
	Button  constants.VirtualButton
	Pressed bool
}

var controllers []*sdl.GameController

// OpenControllers opens every attached game controller so their button
// events reach the event queue.
func OpenControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		c := sdl.GameControllerOpen(i)
		if c == nil {
			GetFrameworkLogger().Warn("Failed to open game controller", "index", i)
			continue
		}
		controllers = append(controllers, c)
	}
}

// CloseControllers closes every controller opened by OpenControllers.
func CloseControllers() {
	for _, c := range controllers {
		c.Close()
	}
	controllers = nil
}

// TranslateEvent maps an SDL event to an InputEvent, or nil if the event
// carries no virtual button. Keyboard mappings exist for development mode;
// on devices input arrives as controller buttons.
func TranslateEvent(event sdl.Event) *InputEvent {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return nil
		}
		button := keyToButton(e.Keysym.Sym)
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.Type == sdl.KEYDOWN}

	case *sdl.ControllerButtonEvent:
		button := controllerToButton(sdl.GameControllerButton(e.Button))
		if button == constants.VirtualButtonUnassigned {
			return nil
		}
		return &InputEvent{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN}
	}
	return nil
}

func keyToButton(sym sdl.Keycode) constants.VirtualButton {
	switch sym {
	case sdl.K_UP:
		return constants.VirtualButtonUp
	case sdl.K_DOWN:
		return constants.VirtualButtonDown
	case sdl.K_LEFT:
		return constants.VirtualButtonLeft
	case sdl.K_RIGHT:
		return constants.VirtualButtonRight
	case sdl.K_RETURN, sdl.K_z:
		return constants.VirtualButtonA
	case sdl.K_ESCAPE, sdl.K_x, sdl.K_BACKSPACE:
		return constants.VirtualButtonB
	case sdl.K_a:
		return constants.VirtualButtonX
	case sdl.K_s:
		return constants.VirtualButtonY
	case sdl.K_q:
		return constants.VirtualButtonL1
	case sdl.K_w:
		return constants.VirtualButtonR1
	case sdl.K_SPACE:
		return constants.VirtualButtonStart
	case sdl.K_TAB:
		return constants.VirtualButtonSelect
	case sdl.K_m:
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}

func controllerToButton(b sdl.GameControllerButton) constants.VirtualButton {
	switch b {
	case sdl.CONTROLLER_BUTTON_DPAD_UP:
		return constants.VirtualButtonUp
	case sdl.CONTROLLER_BUTTON_DPAD_DOWN:
		return constants.VirtualButtonDown
	case sdl.CONTROLLER_BUTTON_DPAD_LEFT:
		return constants.VirtualButtonLeft
	case sdl.CONTROLLER_BUTTON_DPAD_RIGHT:
		return constants.VirtualButtonRight
	case sdl.CONTROLLER_BUTTON_B:
		// Nintendo-style swap: the east button confirms on most target
		// devices.
		return constants.VirtualButtonA
	case sdl.CONTROLLER_BUTTON_A:
		return constants.VirtualButtonB
	case sdl.CONTROLLER_BUTTON_Y:
		return constants.VirtualButtonX
	case sdl.CONTROLLER_BUTTON_X:
		return constants.VirtualButtonY
	case sdl.CONTROLLER_BUTTON_LEFTSHOULDER:
		return constants.VirtualButtonL1
	case sdl.CONTROLLER_BUTTON_RIGHTSHOULDER:
		return constants.VirtualButtonR1
	case sdl.CONTROLLER_BUTTON_START:
		return constants.VirtualButtonStart
	case sdl.CONTROLLER_BUTTON_BACK:
		return constants.VirtualButtonSelect
	case sdl.CONTROLLER_BUTTON_GUIDE:
		return constants.VirtualButtonMenu
	}
	return constants.VirtualButtonUnassigned
}
