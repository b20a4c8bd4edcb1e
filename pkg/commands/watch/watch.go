package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/kn327/NetworkLocationInfo/pkg/commands/internal"
	"github.com/kn327/NetworkLocationInfo/pkg/errors"
	"github.com/kn327/NetworkLocationInfo/pkg/logging"
	"github.com/kn327/NetworkLocationInfo/pkg/types"
	"github.com/kn327/NetworkLocationInfo/pkg/unc"
)

// Op classifies a settled change to the shortcuts container.
type Op string

const (
	// OpAdded means an entry appeared in the container.
	OpAdded Op = "added"
	// OpChanged means an existing entry was rewritten or renamed onto.
	OpChanged Op = "changed"
	// OpRemoved means an entry disappeared from the container.
	OpRemoved Op = "removed"
)

// Event is one settled change to the network-shortcuts container.
type Event struct {
	// Op says what happened to the entry.
	Op Op `json:"Op" yaml:"Op"`

	// Entry is the container entry name the event is about.
	Entry string `json:"Entry" yaml:"Entry"`

	// Location is the snapshot of the location the entry resolves to.
	// Nil when the entry is gone or does not point at a network path.
	Location *types.LocationInfo `json:"Location,omitempty" yaml:"Location,omitempty"`
}

// Handler receives settled container events.
type Handler func(Event)

// Options defines the options for the Watch command.
type Options struct {
	// ShortcutsDir overrides the network-shortcuts container directory.
	// Empty means the configured or platform default.
	ShortcutsDir string
	// FileSystem is the filesystem entries are resolved against. Nil
	// means the OS. The change notifications themselves always come
	// from the OS.
	FileSystem types.FS
	// Links resolves shell link targets. Nil means the platform default.
	Links types.LinkResolver
	// Debounce is how long an entry must stay quiet before its event
	// fires. Bursts of writes within the window coalesce into one
	// notification. Zero means 500ms.
	Debounce time.Duration
}

// tickInterval is how often pending events are checked against the
// debounce window.
const tickInterval = 100 * time.Millisecond

// Watch blocks watching the network-shortcuts container until ctx is
// done, invoking handler for every settled change. It returns nil
// after cancellation; only a failure to start watching is an error.
func Watch(ctx context.Context, opts Options, handler Handler) error {
	log := logging.GetLogger("commands.watch")

	session, err := internal.NewSession(opts.FileSystem, opts.Links, opts.ShortcutsDir)
	if err != nil {
		return err
	}

	debounce := opts.Debounce
	if debounce == 0 {
		debounce = 500 * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrIOFailure, "cannot create filesystem watcher")
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("Error closing watcher")
		}
	}()

	if err := watcher.Add(session.Dir); err != nil {
		return errors.Wrap(err, errors.ErrIOFailure, "cannot watch shortcuts container").
			WithDetail("dir", session.Dir)
	}

	known := knownEntries(session)
	log.Info().
		Str("dir", session.Dir).
		Dur("debounce", debounce).
		Int("entries", len(known)).
		Msg("Watching shortcuts container")

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("Watch cancelled")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event.Op) {
				continue
			}
			name := filepath.Base(event.Name)
			if name == "." || name == string(filepath.Separator) {
				continue
			}
			log.Trace().Str("entry", name).Str("op", event.Op.String()).Msg("Raw event")
			pending[name] = time.Now()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("Watcher error")

		case <-ticker.C:
			now := time.Now()
			for name, last := range pending {
				if now.Sub(last) < debounce {
					continue
				}
				delete(pending, name)
				emit(session, known, name, handler, log)
			}
		}
	}
}

func relevant(op fsnotify.Op) bool {
	return op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

// knownEntries lists the container's current entry names so later
// events can be classified as additions or changes.
func knownEntries(session *internal.Session) map[string]bool {
	known := make(map[string]bool)
	entries, err := session.FS.ReadDir(session.Dir)
	if err != nil {
		return known
	}
	for _, entry := range entries {
		known[entry.Name()] = true
	}
	return known
}

// emit classifies one settled entry and hands the event to the
// handler. The known set is updated so the next event on the same
// entry classifies correctly.
func emit(session *internal.Session, known map[string]bool, name string, handler Handler, log zerolog.Logger) {
	fi, err := session.FS.Stat(filepath.Join(session.Dir, name))
	if err != nil {
		if known[name] {
			delete(known, name)
			log.Debug().Str("entry", name).Msg("Entry removed")
			handler(Event{Op: OpRemoved, Entry: name})
		}
		return
	}

	op := OpChanged
	if !known[name] {
		op = OpAdded
	}
	known[name] = true

	event := Event{Op: op, Entry: name}
	event.Location = snapshot(session, name, fi.IsDir())

	log.Debug().Str("entry", name).Str("op", string(op)).Msg("Entry settled")
	handler(event)
}

// snapshot resolves one entry to a location snapshot, nil when it does
// not point at a network path.
func snapshot(session *internal.Session, name string, isDir bool) *types.LocationInfo {
	target, err := session.Links.ResolveTarget(session.Dir, name)
	if err != nil || target == "" {
		return nil
	}

	server, share, err := unc.Parse(target)
	if err != nil {
		return nil
	}
	loc, err := types.NewLocation(server, share)
	if err != nil {
		return nil
	}
	loc.SetEntry(&types.ShortcutEntry{Dir: session.Dir, Name: name, IsDir: isDir})

	info := session.Resolver.Info(loc)
	return &info
}
