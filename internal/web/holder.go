package web

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kubelouislu/sre-portfolio/internal/content"
)

// Holder owns the live content store. Requests read it once and keep that
// snapshot; reloads replace it whole.
type Holder struct {
	p atomic.Pointer[content.Store]
}

func NewHolder(s *content.Store) *Holder {
	h := &Holder{}
	h.p.Store(s)
	return h
}

func (h *Holder) Store() *content.Store { return h.p.Load() }

func (h *Holder) Swap(s *content.Store) { h.p.Store(s) }

// ReloadDebounce is how long Watch waits after the last change before reloading.
const ReloadDebounce = 300 * time.Millisecond

// Watch reloads the content directory into h whenever one of its data files
// changes, until ctx is cancelled. A reload that fails to parse or validate
// is logged and the previous store stays live.
func Watch(ctx context.Context, dir string, h *Holder) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !content.IsDataFile(event.Name) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				log.Printf("Content change detected: %s (%s)", event.Name, event.Op)
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(ReloadDebounce, func() {
					reload(dir, h)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Watcher error: %v", err)
			}
		}
	}()

	log.Printf("Watching %s for content changes", dir)
	return nil
}

func reload(dir string, h *Holder) {
	s, err := content.LoadDir(dir)
	if err != nil {
		log.Printf("Content reload failed, keeping previous content: %v", err)
		return
	}
	h.Swap(s)
	log.Println("Content reloaded")
}
