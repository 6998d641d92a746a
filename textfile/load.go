package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/sstring"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// prefetch is the number of fragments read ahead of the appending goroutine.
const prefetch = 4

// ErrNotRegular is returned for paths which do not denote a regular file.
var ErrNotRegular = errors.New("textfile: file is not a regular file")

// Progress is broadcast to subscribers after every fragment appended.
type Progress struct {
	Loaded int64 // bytes appended so far
	Total  int64 // file size at the time of opening
}

// Loader loads a single file into a buffer.
type Loader struct {
	path     string         // file name
	info     os.FileInfo    // result from Stat(path)
	file     *os.File       // file handle
	fragSize int64          // bytes per read
	cfg      sstring.Config // configuration for the resulting buffer
	cast     *caster.Caster // broadcaster for progress events
}

type fragment struct {
	data []byte
	err  error
}

// Load reads a file into a new buffer. Clients may indicate a recommended
// fragment length; 0 lets Load choose a default depending on the file size.
func Load(name string, fragSize int64) (*sstring.Str, error) {
	l, err := Open(name, fragSize, sstring.Config{})
	if err != nil {
		return nil, err
	}
	return l.Load(context.Background())
}

// Open opens a file for loading and collects some useful information on it,
// checking for error conditions. The buffer will be created with cfg.
func Open(name string, fragSize int64, cfg sstring.Config) (*Loader, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegular, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &Loader{
		path:     name,
		info:     fi,
		file:     file,
		fragSize: fragmentSize(fi.Size(), fragSize),
		cfg:      cfg,
		cast:     caster.New(context.Background()),
	}, nil
}

func fragmentSize(size int64, hint int64) int64 {
	if hint > 0 && hint <= tenKb {
		return hint
	}
	switch {
	case size < 64:
		return 64
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// Size returns the size of the file at the time it was opened.
func (l *Loader) Size() int64 {
	return l.info.Size()
}

// Subscribe returns a channel of progress events. The channel is closed when
// loading has finished or ctx is done. Subscribers must drain the channel,
// otherwise loading stalls.
func (l *Loader) Subscribe(ctx context.Context) (<-chan Progress, bool) {
	sub, ok := l.cast.Sub(ctx, prefetch)
	if !ok {
		return nil, false
	}
	out := make(chan Progress, prefetch)
	go func() {
		defer close(out)
		for m := range sub {
			p, ok := m.(Progress)
			if !ok {
				continue
			}
			select {
			case out <- p:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, true
}

// Load reads the file into a new buffer and closes the file. A Loader can be
// used for one load only.
func (l *Loader) Load(ctx context.Context) (*sstring.Str, error) {
	defer l.cast.Close()
	defer l.file.Close()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel() // stops the reading goroutine on early return
	//
	size := l.info.Size()
	s, err := sstring.NewWithConfig(int(size), l.cfg)
	if err != nil {
		return nil, err
	}
	frags := make(chan fragment, prefetch)
	go l.readFragments(ctx, frags)
	var loaded int64
	for frag := range frags {
		if frag.err == nil {
			frag.err = s.Concat(frag.data)
		}
		if frag.err != nil {
			s.Free()
			return nil, frag.err
		}
		loaded += int64(len(frag.data))
		tracer().Debugf("loaded %d new bytes of %s", len(frag.data), l.path)
		l.cast.Pub(Progress{Loaded: loaded, Total: size})
	}
	if err = ctx.Err(); err != nil {
		s.Free()
		return nil, err
	}
	return s, nil
}

// readFragments reads the file in fragments of l.fragSize bytes and sends
// them down ch, in order. Read errors are sent as a final fragment.
func (l *Loader) readFragments(ctx context.Context, ch chan<- fragment) {
	defer close(ch)
	var pos int64
	for {
		buf := make([]byte, l.fragSize)
		cnt, err := l.file.ReadAt(buf, pos)
		pos += int64(cnt)
		frag := fragment{data: buf[:cnt]}
		if err != nil && err != io.EOF {
			frag.err = fmt.Errorf("textfile: error loading fragment at %d: %w", pos, err)
		}
		if cnt > 0 || frag.err != nil {
			select {
			case ch <- frag:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			return
		}
	}
}
