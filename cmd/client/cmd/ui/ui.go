// Package ui holds terminal helpers shared by client commands.
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var (
	Success = color.New(color.FgGreen)
	Error   = color.New(color.FgRed)
	Warn    = color.New(color.FgYellow)
	Muted   = color.New(color.FgHiBlack)
	Bold    = color.New(color.Bold)
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StartSpinner запускает спиннер, если stdout - терминал. stop печатает
// итоговое сообщение.
func StartSpinner(message string) (stop func(ok bool, final string)) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message
	s.Writer = os.Stderr
	_ = s.Color("cyan")

	interactive := term.IsTerminal(int(os.Stderr.Fd()))
	if interactive {
		s.Start()
	}

	return func(ok bool, final string) {
		mark := Success.Sprint("✓")
		if !ok {
			mark = Error.Sprint("✗")
		}
		if final != "" {
			s.FinalMSG = mark + " " + EnsureNewline(final)
		}
		if interactive {
			s.Stop()
			return
		}
		if s.FinalMSG != "" {
			fmt.Fprint(os.Stderr, s.FinalMSG)
		}
	}
}

func EnsureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// Render печатает v как JSON или YAML; для текстового формата вызывает text
func Render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return text(w)
	default:
		return fmt.Errorf("неизвестный формат вывода %q (text, json, yaml)", format)
	}
}

// ReadSecret читает строку без эха, если stdin - терминал
func ReadSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		var line string
		if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
			return "", fmt.Errorf("ошибка чтения: %w", err)
		}
		return strings.TrimSpace(line), nil
	}

	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("ошибка чтения: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// Deref возвращает значение указателя или прочерк
func Deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
