package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/zoro11031/fileman/internal/fsops"
	"github.com/zoro11031/fileman/internal/oplog"
	"github.com/zoro11031/fileman/internal/worker"
)

// CreateDir creates a new directory.
func (c *Context) CreateDir(name string) error {
	if err := fsops.CreateDirectory(name, c.dirPerms); err != nil {
		return err
	}
	c.record(fmt.Sprintf("Directory %q created successfully.", name))
	c.UI.Successf("Directory %q created successfully.", name)
	return nil
}

// CreateFile creates a new file seeded with the creation timestamp.
func (c *Context) CreateFile(name string) error {
	if err := fsops.CreateFile(name, []byte(oplog.Timestamp()), c.filePerms); err != nil {
		return err
	}
	c.record(fmt.Sprintf("File %q created successfully.", name))
	c.UI.Successf("File %q created successfully.", name)
	return nil
}

// ListDir lists the contents of a directory in an isolated worker. The
// worker writes the listing to the shared stdout; the parent logs the
// operation once the worker reports success.
func (c *Context) ListDir(name string) error {
	exists, err := fsops.DirectoryExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: directory %q", fsops.ErrNotFound, name)
	}

	if err := c.Workers.Run(worker.OpListDir, name); err != nil {
		return err
	}
	c.record(fmt.Sprintf("Listed contents of directory %q.", name))
	return nil
}

// ListFilesByExtension lists the files in a directory whose names end with
// the given extension, in an isolated worker.
func (c *Context) ListFilesByExtension(name, extension string) error {
	exists, err := fsops.DirectoryExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: directory %q", fsops.ErrNotFound, name)
	}

	if err := c.Workers.Run(worker.OpListExt, name, extension); err != nil {
		return err
	}
	c.record(fmt.Sprintf("Listed files with extension %q in directory %q.", extension, name))
	return nil
}

// ReadFile prints the contents of a file to stdout.
func (c *Context) ReadFile(name string) error {
	data, err := fsops.ReadFile(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Contents of %q:\n", name)
	os.Stdout.Write(data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		fmt.Fprintln(os.Stdout)
	}

	c.record(fmt.Sprintf("File %q read successfully.", name))
	return nil
}

// AppendToFile appends content to an existing file. The locked append runs
// in an isolated worker; the parent observes only the worker's exit status,
// then logs and reports the outcome.
func (c *Context) AppendToFile(name, content string) error {
	exists, err := fsops.FileExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: file %q", fsops.ErrNotFound, name)
	}

	if err := c.Workers.Run(worker.OpAppend, name, content); err != nil {
		return err
	}
	c.record(fmt.Sprintf("Content appended to file %q.", name))
	c.UI.Successf("Content appended to file %q successfully.", name)
	return nil
}

// DeleteFile removes a file in an isolated worker.
func (c *Context) DeleteFile(name string) error {
	exists, err := fsops.FileExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: file %q", fsops.ErrNotFound, name)
	}

	if err := c.Workers.Run(worker.OpDeleteFile, name); err != nil {
		return err
	}
	c.record(fmt.Sprintf("File %q deleted successfully.", name))
	c.UI.Successf("File %q deleted successfully.", name)
	return nil
}

// DeleteDir removes an empty directory in an isolated worker. The emptiness
// check happens inside the worker so it observes the directory state at
// deletion time.
func (c *Context) DeleteDir(name string) error {
	exists, err := fsops.DirectoryExists(name)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: directory %q", fsops.ErrNotFound, name)
	}

	if err := c.Workers.Run(worker.OpDeleteDir, name); err != nil {
		return err
	}
	c.record(fmt.Sprintf("Directory %q deleted successfully.", name))
	c.UI.Successf("Directory %q deleted successfully.", name)
	return nil
}

// ShowLogs prints the operation log. A missing log file means no operations
// were ever recorded, which is distinct from a log that exists but is empty.
func (c *Context) ShowLogs() error {
	content, exists, err := c.Log.ReadAll()
	if err != nil {
		return err
	}

	switch {
	case !exists:
		fmt.Fprintln(os.Stdout, "No logs available.")
	case content == "":
		fmt.Fprintln(os.Stdout, "Log file is empty.")
	default:
		fmt.Fprintln(os.Stdout, "Operation Logs:")
		os.Stdout.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			fmt.Fprintln(os.Stdout)
		}
	}
	return nil
}
