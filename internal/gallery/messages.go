package gallery

import (
	"github.com/alexisbeaulieu97/loom/internal/config"
)

// ConfigReloadedMsg carries the outcome of a settings file reload. It is
// sent from the config watcher through tea.Program.Send.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// Reloaded adapts a config.Watch callback result into a message.
func Reloaded(cfg *config.Config, err error) ConfigReloadedMsg {
	return ConfigReloadedMsg{Config: cfg, Err: err}
}
