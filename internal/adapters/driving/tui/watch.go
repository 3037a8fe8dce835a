package tui

import (
	"github.com/fsnotify/fsnotify"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/docsift/docsift-cli/internal/adapters/driving/tui/messages"
)

// watcher wraps fsnotify to feed file change events into the bubbletea
// event loop. It watches the files named on the command line so the
// corpus can be reloaded when they change on disk.
type watcher struct {
	fs *fsnotify.Watcher
}

// newWatcher starts watching the given paths.
func newWatcher(paths []string) (*watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, path := range paths {
		if err := fs.Add(path); err != nil {
			fs.Close()
			return nil, err
		}
	}

	return &watcher{fs: fs}, nil
}

// waitCmd blocks until the next relevant event and converts it to a
// message. The command must be re-issued after each delivery.
func (w *watcher) waitCmd() tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case event, ok := <-w.fs.Events:
				if !ok {
					return messages.WatchClosed{}
				}
				if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
					return messages.FileChanged{Path: event.Name}
				}
			case err, ok := <-w.fs.Errors:
				if !ok {
					return messages.WatchClosed{}
				}
				return messages.WatchClosed{Err: err}
			}
		}
	}
}

// Close stops the watcher.
func (w *watcher) Close() error {
	return w.fs.Close()
}
