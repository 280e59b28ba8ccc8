// Package logging prints leveled, colored console output and mirrors it
// to a log file once SetupLogging has run.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"audiozip/internal/domain/consts"
)

var (
	Level    int = 0
	loggable bool
	logger   *log.Logger
	mu       sync.Mutex
)

// ansiEscape matches ANSI escape codes, stripped before file writes.
var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetupLogging creates and/or opens the log file inside targetDir.
func SetupLogging(targetDir string) error {
	mu.Lock()
	defer mu.Unlock()

	fpath := filepath.Join(targetDir, consts.LogFilename)
	f, err := os.OpenFile(fpath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", fpath, err)
	}

	logger = log.New(f, "", log.LstdFlags)
	loggable = true

	logger.Printf(":\n=========== %v ===========\n\n", time.Now().Format(time.RFC1123Z))
	return nil
}

// E prints and logs an error message with caller information.
func E(format string, args ...interface{}) string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.RedError)
	writeMsg(&b, format, args)
	writeCallerTag(&b)

	msg := b.String()
	fmt.Print(msg)
	writeLog(msg)
	return msg
}

// W prints and logs a warning message.
func W(format string, args ...interface{}) string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.YellowWarning)
	writeMsg(&b, format, args)
	b.WriteString("\n")

	msg := b.String()
	fmt.Print(msg)
	writeLog(msg)
	return msg
}

// S prints and logs a success message.
func S(format string, args ...interface{}) string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.GreenSuccess)
	writeMsg(&b, format, args)
	b.WriteString("\n")

	msg := b.String()
	fmt.Print(msg)
	writeLog(msg)
	return msg
}

// D prints and logs a debug message when the configured level is at or
// above l.
func D(l int, format string, args ...interface{}) string {
	if l > Level {
		return ""
	}

	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.YellowDebug)
	writeMsg(&b, format, args)
	writeCallerTag(&b)

	msg := b.String()
	fmt.Print(msg)
	writeLog(msg)
	return msg
}

// I prints and logs an info message.
func I(format string, args ...interface{}) string {
	mu.Lock()
	defer mu.Unlock()

	var b strings.Builder
	b.WriteString(consts.BlueInfo)
	writeMsg(&b, format, args)
	b.WriteString("\n")

	msg := b.String()
	fmt.Print(msg)
	writeLog(msg)
	return msg
}

// writeMsg writes the formatted message into the builder.
func writeMsg(b *strings.Builder, format string, args []interface{}) {
	if len(args) != 0 {
		fmt.Fprintf(b, format, args...)
	} else {
		b.WriteString(format)
	}
}

// writeCallerTag appends "[Function: x - File: y : Line: z]" to the builder.
func writeCallerTag(b *strings.Builder) {
	pc, file, line, _ := runtime.Caller(2)
	file = filepath.Base(file)
	funcName := filepath.Base(runtime.FuncForPC(pc).Name())

	b.WriteString(" [")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Function: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(funcName)
	b.WriteString(" - ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("File: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(file)
	b.WriteString(" : ")
	b.WriteString(consts.ColorBlue)
	b.WriteString("Line: ")
	b.WriteString(consts.ColorReset)
	b.WriteString(strconv.Itoa(line))
	b.WriteString("]\n")
}

// writeLog writes a message to the log file, ANSI codes stripped.
func writeLog(msg string) {
	if loggable && logger != nil {
		logger.Print(ansiEscape.ReplaceAllString(msg, ""))
	}
}
