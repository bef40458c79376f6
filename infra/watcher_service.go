package infra

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/cloudcopper/cardlist/lib"
	"github.com/cloudcopper/cardlist/ports"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

const ErrMustBeAbsPath = lib.Error("must be absolute path")

// TopicFileModified returns topic of watcher id, where
// watcher publishes names of created or modified files
func TopicFileModified(id string) ports.Topic {
	return fmt.Sprintf("%v-file-modified", id)
}

// TopicFileRemoved returns topic of watcher id, where
// watcher publishes names of removed or renamed files
func TopicFileRemoved(id string) ports.Topic {
	return fmt.Sprintf("%v-file-removed", id)
}

// WatcherService watches files given over ports.TopicConfigWatch.
// The fsnotify watches directories, so the service watches
// the parent directory and filters events of other files out.
type WatcherService struct {
	id           string
	log          ports.Logger
	bus          ports.EventBus
	chTopicWatch chan ports.Event
	watcher      *fsnotify.Watcher
	mutex        sync.Mutex
	files        map[string]bool
	closeWg      sync.WaitGroup
}

func NewWatcherService(id string, log ports.Logger, bus ports.EventBus) (*WatcherService, error) {
	log = log.With(slog.String("entity", "WatcherService"), slog.String("id", id))
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	s := &WatcherService{
		id:           id,
		log:          log,
		bus:          bus,
		chTopicWatch: bus.Sub(ports.TopicConfigWatch),
		watcher:      watcher,
		files:        map[string]bool{},
	}
	log.Info("created")

	s.closeWg.Add(1)
	go func() {
		defer s.closeWg.Done()
		log.Info("process started")
		defer log.Warn("process complete")
		s.background()
	}()

	return s, nil
}

func (s *WatcherService) Close() {
	if s == nil {
		return
	}
	if s.watcher == nil {
		return
	}

	s.log.Info("closing")
	s.bus.Unsub(s.chTopicWatch)
	s.watcher.Close()
	s.closeWg.Wait()
	s.watcher = nil
}

// WARN Removing and creating the file again (as editors do on save)
// WARN keeps the directory watch, so such file is still tracked
func (s *WatcherService) addFile(path string) error {
	log := s.log.With(slog.String("path", path))
	if !lib.IsAbs(path) {
		log.Error("add file failed!!! not abs path")
		return ErrMustBeAbsPath
	}

	s.mutex.Lock()
	s.files[path] = true
	s.mutex.Unlock()

	dir := filepath.Dir(path)
	log.Info("add file", slog.String("dir", dir))
	err := s.watcher.Add(dir)
	if err != nil {
		log.Error("add file failed!!!", slog.Any("err", err))
	}
	return err
}

func (s *WatcherService) isWatched(path string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.files[path]
}

func (s *WatcherService) background() {
	log, bus, fs := s.log, s.bus, afero.NewOsFs()
	topicFileModified := TopicFileModified(s.id)
	topicFileRemoved := TopicFileRemoved(s.id)
	for {
		select {
		case event, ok := <-s.chTopicWatch:
			if !ok {
				return
			}
			for _, path := range event {
				s.addFile(path)
			}
		case err, ok := <-s.watcher.Errors:
			if err != nil {
				log.Error("watcher error", slog.Any("err", err))
			}
			if !ok {
				return
			}
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}

			file := event.Name
			if !s.isWatched(file) {
				continue
			}
			log.Debug("watcher event", slog.Any("event", event))
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				size := lib.FileSize(fs, file)
				log.Debug("file modified", slog.String("file", file), slog.Int64("size", size))
				bus.Pub(topicFileModified, ports.Event{file})
			}
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				log.Debug("file removed", slog.String("file", file))
				bus.Pub(topicFileRemoved, ports.Event{file})
			}
		}
	}
}
