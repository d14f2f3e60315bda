package autostart

import (
	"path/filepath"
	"strings"
)

func renderDesktopEntry(name string, program []string) []byte {
	quoted := make([]string, 0, len(program))
	for _, arg := range program {
		quoted = append(quoted, quoteExecArg(arg))
	}

	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Version=1.0\n")
	b.WriteString("Name=" + escapeValue(name) + "\n")
	b.WriteString("Comment=" + escapeValue(name) + " startup script\n")
	b.WriteString("Exec=" + strings.Join(quoted, " ") + "\n")
	b.WriteString("StartupNotify=false\n")
	b.WriteString("Terminal=false\n")
	b.WriteString("X-GNOME-Autostart-enabled=true\n")
	return []byte(b.String())
}

// quoteExecArg renders arg as it must appear in an Exec key. Arguments with
// reserved characters are double quoted with the Exec escapes applied, and
// the result then gets the string escapes every desktop entry value gets, so
// a literal backslash ends up as four.
func quoteExecArg(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\n\r\"'\\><~|&;$*?#()`=%") {
		return arg
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range arg {
		switch r {
		case '"', '`', '$', '\\':
			b.WriteByte('\\')
		case '%':
			b.WriteByte('%')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return escapeValue(b.String())
}

var valueEscaper = strings.NewReplacer(
	"\\", "\\\\",
	"\n", "\\n",
	"\t", "\\t",
	"\r", "\\r",
)

// escapeValue applies the escape sequences of desktop entry string values.
func escapeValue(value string) string {
	return valueEscaper.Replace(value)
}

func newXDGManager(opts Options) (*fileManager, error) {
	dir, err := opts.configDir()
	if err != nil {
		return nil, err
	}

	program := append([]string{opts.ExecPath}, opts.Args...)
	return &fileManager{
		path:    filepath.Join(dir, "autostart", desktopFileName(opts.Name)),
		content: renderDesktopEntry(opts.Name, program),
	}, nil
}

func desktopFileName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ':
			return '-'
		}
		return r
	}, strings.TrimSpace(name))
	return strings.ToLower(cleaned) + ".desktop"
}
