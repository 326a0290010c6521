package config

import (
	"errors"

	"github.com/bnema/webdeck/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}

	m.viper.OnConfigChange(m.handleConfigEvent)
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) handleConfigEvent(e fsnotify.Event) {
	log := logging.NewFromEnv()
	log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("fsnotify config change detected")

	// notifyCallbacksLocked releases the lock on the success paths.
	m.mu.Lock()

	if m.skipNextReload {
		log.Debug().Msg("skipping reload (triggered by own Save)")
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			log.Warn().Err(err).Msg("failed to sync viper config after Save")
		}
		m.notifyCallbacksLocked()
		return
	}

	log.Debug().Msg("reloading config from external change")
	if err := m.reload(); err != nil {
		log.Warn().Err(err).Msg("failed to reload config")
		m.mu.Unlock()
		return
	}
	m.notifyCallbacksLocked()
}

// notifyCallbacksLocked copies callbacks and config, releases lock, then notifies.
// Must be called with m.mu held for write. Releases the lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		configCopy := *config
		callback(&configCopy)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file. Must be called with the write lock held.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return err
	}
	if err := finalizeConfig(config); err != nil {
		return err
	}

	m.config = config
	return nil
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return errors.New("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}
