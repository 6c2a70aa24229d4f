package fs

import (
	"os"
	"strings"
	"sync"
)

// Op identifies a FileSystem operation for fault matching.
type Op string

// Operations a Fault can target.
const (
	OpOpenFile Op = "openfile"
	OpRemove   Op = "remove"
	OpRename   Op = "rename"
	OpStat     Op = "stat"
	OpMkdir    Op = "mkdir"
	OpReadDir  Op = "readdir"
)

// Fault makes one FileSystem operation fail with a chosen error.
type Fault struct {
	Op      Op
	Pattern string // path substring; empty matches every path
	Err     error
	Once    bool // consume the rule after its first hit
}

// Faulty is a FileSystem wrapper that injects errors per rule. Rules
// are checked in insertion order; the first match wins.
type Faulty struct {
	FS FileSystem

	mu    sync.Mutex
	rules []Fault
}

// NewFaulty creates a Faulty wrapping the provided FileSystem
// (or Default if nil).
func NewFaulty(inner FileSystem) *Faulty {
	if inner == nil {
		inner = Default
	}
	return &Faulty{FS: inner}
}

// AddRule registers a fault injection rule.
func (f *Faulty) AddRule(fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules = append(f.rules, fault)
}

func (f *Faulty) hit(op Op, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, r := range f.rules {
		if r.Op != op {
			continue
		}
		if r.Pattern != "" && !strings.Contains(name, r.Pattern) {
			continue
		}
		if r.Once {
			f.rules = append(f.rules[:i], f.rules[i+1:]...)
		}
		return r.Err
	}
	return nil
}

func (f *Faulty) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	if err := f.hit(OpOpenFile, name); err != nil {
		return nil, err
	}
	return f.FS.OpenFile(name, flag, perm)
}

func (f *Faulty) Remove(name string) error {
	if err := f.hit(OpRemove, name); err != nil {
		return err
	}
	return f.FS.Remove(name)
}

func (f *Faulty) Rename(oldpath, newpath string) error {
	if err := f.hit(OpRename, oldpath); err != nil {
		return err
	}
	return f.FS.Rename(oldpath, newpath)
}

func (f *Faulty) Stat(name string) (os.FileInfo, error) {
	if err := f.hit(OpStat, name); err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *Faulty) Mkdir(name string, perm os.FileMode) error {
	if err := f.hit(OpMkdir, name); err != nil {
		return err
	}
	return f.FS.Mkdir(name, perm)
}

func (f *Faulty) ReadDir(name string) ([]os.DirEntry, error) {
	if err := f.hit(OpReadDir, name); err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}
