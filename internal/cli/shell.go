package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrExit is returned when the user chooses to leave the shell
var ErrExit = errors.New("exit")

// Shell provides the interactive command loop
type Shell struct {
	ctx *Context
}

// NewShell creates a new Shell instance
func NewShell(ctx *Context) *Shell {
	return &Shell{ctx: ctx}
}

// Run reads commands until the user exits. Command errors are reported and
// the loop continues; only exit/quit (or a closed input) ends the session.
func (s *Shell) Run() error {
	s.ctx.UI.Header("fileman - filesystem manager")
	s.ctx.UI.Info("Type 'help' for the command list, 'exit' to leave.")

	for {
		line, err := s.ctx.UI.PromptInput("fileman", "")
		if err != nil {
			return err
		}

		args, err := Tokenize(line)
		if err != nil {
			s.ctx.UI.Errorf("%v", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		if err := s.dispatch(args[0], args[1:]); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			s.ctx.UI.Errorf("%v", err)
		}
	}
}

func (s *Shell) dispatch(command string, args []string) error {
	switch command {
	case "exit", "quit":
		return ErrExit
	case "help":
		s.printHelp()
		return nil
	case "createDir":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		return s.ctx.CreateDir(args[0])
	case "createFile":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		return s.ctx.CreateFile(args[0])
	case "listDir":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		return s.ctx.ListDir(args[0])
	case "listFilesByExtension":
		if err := requireArgs(command, args, 2); err != nil {
			return err
		}
		return s.ctx.ListFilesByExtension(args[0], args[1])
	case "readFile":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		return s.ctx.ReadFile(args[0])
	case "appendToFile":
		if err := requireArgs(command, args, 2); err != nil {
			return err
		}
		return s.ctx.AppendToFile(args[0], args[1])
	case "deleteFile":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		if ok := s.confirm(fmt.Sprintf("Delete file %q?", args[0])); !ok {
			return nil
		}
		return s.ctx.DeleteFile(args[0])
	case "deleteDir":
		if err := requireArgs(command, args, 1); err != nil {
			return err
		}
		if ok := s.confirm(fmt.Sprintf("Delete directory %q?", args[0])); !ok {
			return nil
		}
		return s.ctx.DeleteDir(args[0])
	case "showLogs":
		return s.ctx.ShowLogs()
	default:
		return fmt.Errorf("unknown command: %s (type 'help' for the command list)", command)
	}
}

func (s *Shell) confirm(prompt string) bool {
	ok, err := s.ctx.UI.PromptYesNo(prompt, false)
	if err != nil {
		return false
	}
	return ok
}

func (s *Shell) printHelp() {
	s.ctx.UI.Print(`Commands:
  createDir "folderName"                    - Create a new directory
  createFile "fileName"                     - Create a new file
  listDir "folderName"                      - List all files in a directory
  listFilesByExtension "folderName" ".txt"  - List files with specific extension
  readFile "fileName"                       - Read a file's content
  appendToFile "fileName" "new content"     - Append content to a file
  deleteFile "fileName"                     - Delete a file
  deleteDir "folderName"                    - Delete an empty directory
  showLogs                                  - Display operation logs
  help                                      - Show this help
  exit / quit                               - Leave the shell`)
}

func requireArgs(command string, args []string, want int) error {
	if len(args) != want {
		return fmt.Errorf("%s expects %d argument(s), got %d", command, want, len(args))
	}
	return nil
}

// Tokenize splits a command line into arguments. Double quotes group words
// into a single argument; quotes do not nest and there is no escape syntax.
func Tokenize(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	inQuotes := false
	started := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			started = true
		case unicode.IsSpace(r) && !inQuotes:
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}

	if inQuotes {
		return nil, errors.New("unterminated quote in command")
	}
	if started {
		args = append(args, current.String())
	}
	return args, nil
}
