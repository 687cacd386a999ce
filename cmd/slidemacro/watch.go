package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// watchFiles calls run for every write or create event on files until ctx
// is done. Parent directories are watched so editors that replace files on
// save are still seen.
func watchFiles(ctx context.Context, logger zerolog.Logger, files []string, run func(file string) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	targets := make(map[string]string, len(files))
	dirs := make(map[string]struct{})
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return err
		}
		targets[abs] = file
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}
	logger.Info().Strs("files", files).Msg("watching")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			file, ok := targets[filepath.Clean(event.Name)]
			if !ok {
				continue
			}
			if err := run(file); err != nil {
				logger.Error().Err(err).Str("file", file).Msg("expand failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher")
		}
	}
}
