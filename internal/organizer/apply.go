package organizer

import (
	"errors"
	"iter"
	"os"
	"syscall"

	"tonearm/internal/fileutil"
	"tonearm/internal/services"
)

// FileOp selects the semantics used for every file operation in one apply
// pass.
type FileOp int

const (
	OpMove FileOp = iota
	OpCopy
)

func (op FileOp) String() string {
	if op == OpCopy {
		return "copy"
	}
	return "move"
}

// Execute creates the scheduled directory.
func (d DirCreation) Execute() error {
	if err := os.Mkdir(d.Path, 0o755); err != nil {
		return services.Wrap(services.ErrFilesystem, "organize", "create directory", d.Path, err)
	}
	return nil
}

// Execute performs the scheduled operation with the given semantics. Moves
// that cross a filesystem boundary fall back to copy plus remove.
func (f FileOperation) Execute(op FileOp) error {
	if err := f.execute(op); err != nil {
		return services.Wrap(services.ErrFilesystem, "organize", op.String()+" file", f.Old, err)
	}
	return nil
}

func (f FileOperation) execute(op FileOp) error {
	if op == OpCopy {
		return fileutil.CopyFile(f.Old, f.New)
	}
	err := os.Rename(f.Old, f.New)
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		if copyErr := fileutil.CopyFile(f.Old, f.New); copyErr != nil {
			return copyErr
		}
		return os.Remove(f.Old)
	}
	return err
}

// Apply executes every directory creation then every file operation in plan
// order. Each failure is collected and execution continues with the remaining
// operations; there is no rollback of already applied ones.
func (c *Changes) Apply(op FileOp) []error {
	var errs []error
	for _, err := range c.DirCreationSteps() {
		if err != nil {
			errs = append(errs, err)
		}
	}
	for _, err := range c.FileOperationSteps(op) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// DirCreationSteps executes directory creations lazily, yielding each
// operation with its result so callers can report progress.
func (c *Changes) DirCreationSteps() iter.Seq2[DirCreation, error] {
	return func(yield func(DirCreation, error) bool) {
		for _, d := range c.DirCreations {
			if !yield(d, d.Execute()) {
				return
			}
		}
	}
}

// FileOperationSteps executes file operations lazily with uniform semantics,
// yielding each operation with its result.
func (c *Changes) FileOperationSteps(op FileOp) iter.Seq2[FileOperation, error] {
	return func(yield func(FileOperation, error) bool) {
		for _, f := range c.FileOperations {
			if !yield(f, f.Execute(op)) {
				return
			}
		}
	}
}
