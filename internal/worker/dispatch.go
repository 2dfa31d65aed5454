package worker

import (
	"fmt"
	"os"

	"github.com/zoro11031/fileman/internal/fsops"
)

// Dispatch performs the named operation in the current process. The hidden
// worker subcommand calls this inside the spawned worker; the InProcess
// runner calls it directly. Listing output is written to stdout so the parent
// sees it through the inherited handle.
func Dispatch(op string, args ...string) error {
	switch op {
	case OpAppend:
		if len(args) != 2 {
			return fmt.Errorf("append expects <file> <content>, got %d arguments", len(args))
		}
		return fsops.AppendFile(args[0], []byte(args[1]))

	case OpDeleteFile:
		if len(args) != 1 {
			return fmt.Errorf("delete-file expects <file>, got %d arguments", len(args))
		}
		return fsops.DeleteFile(args[0])

	case OpDeleteDir:
		if len(args) != 1 {
			return fmt.Errorf("delete-dir expects <directory>, got %d arguments", len(args))
		}
		return fsops.DeleteDirectory(args[0])

	case OpListDir:
		if len(args) != 1 {
			return fmt.Errorf("list-dir expects <directory>, got %d arguments", len(args))
		}
		entries, err := fsops.ListDirectory(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Contents of directory %q:\n", args[0])
		printEntries(entries, "  (empty directory)")
		return nil

	case OpListExt:
		if len(args) != 2 {
			return fmt.Errorf("list-ext expects <directory> <extension>, got %d arguments", len(args))
		}
		entries, err := fsops.ListByExtension(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Files with extension %q in directory %q:\n", args[1], args[0])
		printEntries(entries, "  (no matching files)")
		return nil

	default:
		return fmt.Errorf("unknown worker operation: %s", op)
	}
}

func printEntries(entries []fsops.Entry, emptyMsg string) {
	if len(entries) == 0 {
		fmt.Fprintln(os.Stdout, emptyMsg)
		return
	}
	for _, e := range entries {
		if e.IsDir {
			fmt.Fprintf(os.Stdout, "  [DIR] %s\n", e.Name)
		} else {
			fmt.Fprintf(os.Stdout, "  %s\n", e.Name)
		}
	}
}
