package ui

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// fileWatcher reports filesystem changes to the open document. It watches
// the document's parent directory rather than the file itself so that
// editors which replace the file on save (write temp, rename over) keep
// triggering events.
type fileWatcher struct {
	fsw     *fsnotify.Watcher
	changes chan string
	done    chan struct{}
}

func newFileWatcher() (*fileWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &fileWatcher{
		fsw:     fsw,
		changes: make(chan string, 8),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *fileWatcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			select {
			case w.changes <- filepath.Clean(ev.Name):
			default:
				// A slow consumer drops events; the next save triggers again.
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Changes is the stream of absolute paths that changed on disk.
func (w *fileWatcher) Changes() <-chan string {
	return w.changes
}

// Watch retargets the watcher at the given file, dropping previous targets.
func (w *fileWatcher) Watch(path string) error {
	for _, p := range w.fsw.WatchList() {
		_ = w.fsw.Remove(p)
	}
	return w.fsw.Add(filepath.Dir(path))
}

func (w *fileWatcher) Close() {
	close(w.done)
	_ = w.fsw.Close()
}
