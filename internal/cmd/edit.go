package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/Alia5/dactylkeys/keymap"
	"github.com/Alia5/dactylkeys/layout"
)

type Edit struct {
	Output string `help:"Directory used by the export command" type:"path" default:"."`
	Format string `help:"Format used by the export command" enum:"json,yaml,toml" default:"json"`
}

const editHelp = `commands:
  show                  draw the current layout
  get ROW COL           print one key
  set ROW COL LABEL     assign a label (quote labels with spaces: "L Ctrl")
  status                report unsaved changes
  save                  write the current layout
  load                  replace the layout with the saved one
  reset                 discard unsaved changes
  factory-reset         delete the saved layout and restore the default
  export [DIR] [FMT]    write the export document
  keys [CATEGORY]       list the key library
  help                  show this text
  quit                  leave (twice to discard unsaved changes)`

// errQuit ends the session loop.
var errQuit = errors.New("quit")

func (c *Edit) Run(s *Session) error {
	e, err := s.Engine()
	if err != nil {
		return err
	}
	ed := &editor{
		s:      s,
		e:      e,
		out:    s.out(),
		dir:    c.Output,
		format: c.Format,
	}
	return ed.loop(s.in())
}

type editor struct {
	s      *Session
	e      *keymap.Engine
	out    io.Writer
	dir    string
	format string

	warnedQuit bool
}

func (ed *editor) loop(in io.Reader) error {
	interactive := isTerminal(in)
	if interactive {
		ed.printf("%s\n\ntype \"help\" for commands\n", RenderKeymap(ed.e.Current(), ed.e.Saved()))
	}
	sc := bufio.NewScanner(in)
	for {
		if interactive {
			ed.printf("%s> ", ed.promptMarker())
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := ed.exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			ed.printf("error: %v\n", err)
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if ed.e.HasUnsavedChanges() {
		ed.s.logger().Warn("input closed with unsaved changes")
	}
	return nil
}

func (ed *editor) promptMarker() string {
	if ed.e.HasUnsavedChanges() {
		return "*"
	}
	return ""
}

func (ed *editor) exec(line string) error {
	cmd, rest, _ := strings.Cut(line, " ")
	cmd = strings.ToLower(cmd)
	rest = strings.TrimSpace(rest)
	if cmd != "quit" && cmd != "exit" && cmd != "q" {
		ed.warnedQuit = false
	}

	switch cmd {
	case "help", "?":
		ed.printf("%s\n", editHelp)
	case "show":
		writeLayout(ed.out, ed.e, false)
	case "get":
		p, _, err := parsePosition(rest, false)
		if err != nil {
			return err
		}
		ed.printf("%s\n", describeAssignment(p, ed.e.Current().Get(p)))
	case "set":
		p, label, err := parsePosition(rest, true)
		if err != nil {
			return err
		}
		if !layout.Contains(p) {
			ed.printf("warning: %s is not a physical key\n", p)
		}
		code, err := ed.e.UpdateKey(p, label)
		if err != nil {
			return err
		}
		ed.printf("%s\n", describeAssignment(p, code))
	case "status":
		if ed.e.HasUnsavedChanges() {
			ed.printf("unsaved changes\n")
		} else {
			ed.printf("no unsaved changes\n")
		}
	case "save":
		if err := ed.e.Save(); err != nil {
			return err
		}
		ed.printf("saved\n")
	case "load":
		if err := ed.e.Load(); err != nil {
			return err
		}
		ed.printf("loaded\n")
	case "reset":
		if err := ed.e.Reset(); err != nil {
			return err
		}
		ed.printf("unsaved changes discarded\n")
	case "factory-reset":
		if err := ed.e.FactoryReset(); err != nil {
			return err
		}
		ed.printf("factory default restored\n")
	case "export":
		dir, format := ed.dir, ed.format
		args := strings.Fields(rest)
		if len(args) > 0 {
			dir = args[0]
		}
		if len(args) > 1 {
			format = args[1]
		}
		return exportTo(ed.s, ed.e.Export(), dir, format)
	case "keys":
		return listKeys(ed.out, rest)
	case "quit", "exit", "q":
		if ed.e.HasUnsavedChanges() && !ed.warnedQuit {
			ed.warnedQuit = true
			ed.printf("unsaved changes; save first or quit again to discard\n")
			return nil
		}
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, type \"help\"", cmd)
	}
	return nil
}

func (ed *editor) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(ed.out, format, args...)
}

// parsePosition reads "ROW COL" and, when withLabel is set, the remainder of
// the line as a label. A label wrapped in double quotes is unquoted, so an
// empty label is written as "".
func parsePosition(s string, withLabel bool) (layout.Position, string, error) {
	usage := "want ROW COL"
	if withLabel {
		usage = "want ROW COL LABEL"
	}
	rowStr, rest, _ := strings.Cut(strings.TrimSpace(s), " ")
	colStr, label, _ := strings.Cut(strings.TrimSpace(rest), " ")
	row, err := strconv.Atoi(rowStr)
	if err != nil || row < 0 {
		return layout.Position{}, "", fmt.Errorf("invalid row %q: %s", rowStr, usage)
	}
	col, err := strconv.Atoi(colStr)
	if err != nil || col < 0 {
		return layout.Position{}, "", fmt.Errorf("invalid column %q: %s", colStr, usage)
	}
	p := layout.Position{Row: row, Col: col}
	if !withLabel {
		return p, "", nil
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return layout.Position{}, "", errors.New(usage)
	}
	if strings.HasPrefix(label, `"`) {
		unq, err := strconv.Unquote(label)
		if err != nil {
			return layout.Position{}, "", fmt.Errorf("invalid quoted label %s", label)
		}
		label = unq
	}
	return p, label, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
