package lander

// MainMenu carries the two commands of the title screen.
type MainMenu struct {
	scenes SceneLoader
	quit   func()
}

// NewMainMenu creates a menu that starts play on scenes and calls quit to
// leave the program.
func NewMainMenu(scenes SceneLoader, quit func()) MainMenu {
	return MainMenu{scenes: scenes, quit: quit}
}

// Start loads the first scene of the build list.
func (m MainMenu) Start() {
	m.scenes.LoadScene(0)
}

// Quit asks the host to terminate.
func (m MainMenu) Quit() {
	if m.quit != nil {
		m.quit()
	}
}
