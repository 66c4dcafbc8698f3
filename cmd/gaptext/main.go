// Package main is a small terminal editor built on the gaptext engine.
// It exists to exercise the public buffer API end to end: every keystroke
// maps onto one engine call and every frame is drawn from a fresh line
// traversal.
package main

import (
	"flag"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/gaptext/gapbuffer"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var readOnly, showVersion bool
	flag.BoolVar(&readOnly, "readonly", false, "Open the file in read-only mode")
	flag.BoolVar(&readOnly, "R", false, "Open the file in read-only mode (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "gaptext - gap buffer demo editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: gaptext [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("gaptext %s\n", version)
		return 0
	}

	ed := &editor{readOnly: readOnly}
	if flag.NArg() > 0 {
		ed.path = flag.Arg(0)
		if err := ed.load(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	} else {
		ed.buf = gapbuffer.New(128)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	ed.screen = screen
	ed.loop()
	return 0
}

type editor struct {
	buf      *gapbuffer.Buffer
	screen   tcell.Screen
	path     string
	readOnly bool
	top      int
	status   string
}

func (e *editor) load() error {
	data, err := os.ReadFile(e.path)
	if err != nil {
		return err
	}
	buf, err := gapbuffer.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", e.path, err)
	}
	buf.MoveAbsolute(0)
	e.buf = buf
	return nil
}

func (e *editor) save() {
	if e.path == "" {
		e.status = "no file name"
		return
	}
	if err := os.WriteFile(e.path, []byte(e.buf.String()), 0o644); err != nil {
		e.status = err.Error()
		return
	}
	e.status = fmt.Sprintf("wrote %d bytes", e.buf.Len())
}

func (e *editor) loop() {
	for {
		e.draw()
		switch ev := e.screen.PollEvent().(type) {
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventKey:
			if e.handleKey(ev) {
				return
			}
		}
	}
}

// lines drains one traversal of the buffer.
func (e *editor) lines() []string {
	it := e.buf.Lines()
	defer it.Close()

	var out []string
	for it.Next() {
		out = append(out, it.Text())
	}
	return out
}

// cursorPos locates the edit point as a line index and a byte column.
func cursorPos(lines []string, offset int) (row, col int) {
	for row = 0; row < len(lines); row++ {
		if offset <= len(lines[row]) {
			return row, offset
		}
		offset -= len(lines[row]) + 1
	}
	return row, 0
}

// symbolIndex converts a line index and byte column back into a symbol count
// from the start of the text, for MoveAbsolute.
func symbolIndex(lines []string, row, col int) int {
	n := 0
	for i := 0; i < row && i < len(lines); i++ {
		n += utf8.RuneCountInString(lines[i]) + 1
	}
	if row < len(lines) {
		n += utf8.RuneCountInString(lines[row][:col])
	}
	return n
}

// clampColumn finds the byte column in line closest to the wanted symbol
// column.
func clampColumn(line string, symbols int) int {
	col := 0
	for i := 0; i < symbols; i++ {
		_, size := utf8.DecodeRuneInString(line[col:])
		if size == 0 {
			break
		}
		col += size
	}
	return col
}

func (e *editor) draw() {
	e.screen.Clear()
	width, height := e.screen.Size()
	if height < 2 {
		e.screen.Show()
		return
	}
	textRows := height - 1

	lines := e.lines()
	row, col := cursorPos(lines, e.buf.Offset())

	// Keep the cursor row on screen.
	if row < e.top {
		e.top = row
	}
	if row >= e.top+textRows {
		e.top = row - textRows + 1
	}

	style := tcell.StyleDefault
	for y := 0; y < textRows && e.top+y < len(lines); y++ {
		drawLine(e.screen, y, lines[e.top+y], style)
	}

	name := e.path
	if name == "" {
		name = "[scratch]"
	}
	mode := ""
	if e.readOnly {
		mode = " [ro]"
	}
	status := fmt.Sprintf(" %s%s  %dB  %d:%d  %s", name, mode, e.buf.Len(), row+1, col, e.status)
	drawLine(e.screen, height-1, pad(status, width), style.Reverse(true))

	if row < len(lines) {
		e.screen.ShowCursor(uniseg.StringWidth(lines[row][:col]), row-e.top)
	} else {
		e.screen.ShowCursor(0, row-e.top)
	}
	e.screen.Show()
}

func drawLine(s tcell.Screen, y int, line string, style tcell.Style) {
	x := 0
	g := uniseg.NewGraphemes(line)
	for g.Next() {
		runes := g.Runes()
		w := uniseg.StringWidth(g.Str())
		if w == 0 || len(runes) == 0 {
			continue
		}
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}

func pad(s string, width int) string {
	for uniseg.StringWidth(s) < width {
		s += " "
	}
	return s
}

// handleKey maps one keystroke onto one engine operation. It returns true
// when the editor should exit.
func (e *editor) handleKey(ev *tcell.EventKey) bool {
	e.status = ""

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlQ:
		return true
	case tcell.KeyCtrlS:
		if !e.readOnly {
			e.save()
		}
	case tcell.KeyLeft:
		e.report(e.buf.MoveRelative(-1))
	case tcell.KeyRight:
		e.report(e.buf.MoveRelative(1))
	case tcell.KeyUp:
		e.moveVertical(-1)
	case tcell.KeyDown:
		e.moveVertical(1)
	case tcell.KeyHome:
		e.moveLine(0)
	case tcell.KeyEnd:
		e.moveLine(-1)
	case tcell.KeyEnter:
		e.insert("\n")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if !e.readOnly {
			e.report(e.buf.RemoveBackwards(1))
		}
	case tcell.KeyDelete:
		if !e.readOnly {
			e.buf.RemoveForwards(1)
		}
	case tcell.KeyRune:
		e.insert(string(ev.Rune()))
	}
	return false
}

func (e *editor) insert(s string) {
	if e.readOnly {
		e.status = "read-only"
		return
	}
	e.report(e.buf.InsertString(s))
}

func (e *editor) report(err error) {
	if err != nil {
		e.status = err.Error()
	}
}

// moveVertical moves the edit point one line up or down, preserving the
// symbol column where the target line is long enough.
func (e *editor) moveVertical(delta int) {
	lines := e.lines()
	row, col := cursorPos(lines, e.buf.Offset())

	target := row + delta
	if target < 0 || target >= len(lines) {
		return
	}

	symCol := 0
	if row < len(lines) {
		symCol = utf8.RuneCountInString(lines[row][:col])
	}
	targetCol := clampColumn(lines[target], symCol)
	e.buf.MoveAbsolute(symbolIndex(lines, target, targetCol))
}

// moveLine moves to the start (col 0) or end (col -1) of the current line.
func (e *editor) moveLine(col int) {
	lines := e.lines()
	row, _ := cursorPos(lines, e.buf.Offset())
	if row >= len(lines) {
		return
	}
	if col < 0 {
		col = len(lines[row])
	}
	e.buf.MoveAbsolute(symbolIndex(lines, row, col))
}
