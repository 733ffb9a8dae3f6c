package directory

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"docvault/internal/domain/models/catalog"
	catalogSvc "docvault/internal/domain/services/catalog"
)

// FileDirectory serves users from a YAML file and reloads it when the
// file changes, so permission listings pick up directory edits without
// a restart. The catalog tolerates the user set changing between calls.
type FileDirectory struct {
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	users []catalog.User
	byID  map[string]catalog.User

	watcher *fsnotify.Watcher
}

// usersFile is the YAML document layout:
//
//	users:
//	  - id: alice
//	    name: Alice
type usersFile struct {
	Users []catalog.User `yaml:"users"`
}

// NewFile loads a YAML user directory and starts watching the file for
// changes. Close releases the watcher.
func NewFile(path string, logger *slog.Logger) (*FileDirectory, error) {
	d := &FileDirectory{
		path:   path,
		logger: logger,
	}

	if err := d.reload(); err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch users file: %w", err)
	}
	if err := w.Add(path); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch users file: %w", err)
	}
	d.watcher = w

	go d.watch()
	return d, nil
}

// Close stops watching the users file
func (d *FileDirectory) Close() error {
	if d.watcher == nil {
		return nil
	}
	return d.watcher.Close()
}

// Lookup resolves a user id against the most recently loaded file
func (d *FileDirectory) Lookup(userID string) (catalog.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	u, ok := d.byID[userID]
	return u, ok
}

// Users returns all known users
func (d *FileDirectory) Users() []catalog.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]catalog.User, len(d.users))
	copy(out, d.users)
	return out
}

// reload parses the file and swaps in the new user set
func (d *FileDirectory) reload() error {
	raw, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("read users file: %w", err)
	}

	var parsed usersFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse users file: %w", err)
	}

	byID := make(map[string]catalog.User, len(parsed.Users))
	for _, u := range parsed.Users {
		byID[u.ID] = u
	}

	d.mu.Lock()
	d.users = parsed.Users
	d.byID = byID
	d.mu.Unlock()

	d.logger.Info("user directory loaded", "path", d.path, "users", len(parsed.Users))
	return nil
}

// watch reloads on write events until the watcher closes. A bad edit
// keeps the previous user set.
func (d *FileDirectory) watch() {
	for {
		select {
		case event, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := d.reload(); err != nil {
					d.logger.Warn("user directory reload failed", "error", err)
				}
			}
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			d.logger.Warn("user directory watch error", "error", err)
		}
	}
}

var _ catalogSvc.UserDirectory = (*FileDirectory)(nil)
