package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/tuikit/internal/cli/styles"
	"github.com/bnema/tuikit/internal/config"
	"github.com/bnema/tuikit/internal/logging"
)

var (
	logsFollow bool
	logsLines  int
)

const defaultLogsLines = 50

var logsCmd = &cobra.Command{
	Use:   "logs [session]",
	Short: "View application logs",
	Long: `View tuikit logs by session.

Every run tags its log lines with a short session ID. Without arguments,
lists the sessions found in the log file and its rotated backups. With a
session ID, shows the logs of that session.

Examples:
  tuikit logs                 # List all sessions
  tuikit logs a7b3            # View logs for session 'a7b3'
  tuikit logs -f a7b3         # Follow logs in real-time
  tuikit logs -n 100 a7b3     # Show last 100 lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show, 0 for all")
}

// SessionInfo summarizes the log lines of one run.
type SessionInfo struct {
	ShortID string
	First   time.Time
	Last    time.Time
	Lines   int
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level   string `json:"level"`
	Time    string `json:"time"`
	Message string `json:"message"`
	Session string `json:"session"`
}

// logLine is one line of a log file, parsed when it is JSON.
type logLine struct {
	raw    string
	entry  logEntry
	parsed bool
}

func runLogs(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir, err := config.GetLogDir()
	if err != nil {
		return fmt.Errorf("resolve log dir: %w", err)
	}
	current := logFilename(app.Config)
	files, err := logFiles(logDir, current)
	if err != nil {
		return err
	}
	lines, err := readLogLines(files)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		listSessions(out, collectSessions(lines), app.Theme)
		return nil
	}

	session, err := findSession(collectSessions(lines), args[0])
	if err != nil {
		return err
	}

	showSession(out, filterSession(lines, session.ShortID), logsLines, app.Theme)
	if !logsFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return tailSession(ctx, out, filepath.Join(logDir, current), session.ShortID, app.Theme)
}

func logFilename(cfg *config.Config) string {
	if cfg != nil && cfg.Logging.File != "" {
		return cfg.Logging.File
	}
	return logging.DefaultLogFilename
}

// logFiles returns the rotated backups of name, oldest first, followed by name itself.
func logFiles(logDir, name string) ([]string, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	ext := filepath.Ext(name)
	prefix := strings.TrimSuffix(name, ext) + "-"

	var backups []string
	hasCurrent := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch n := entry.Name(); {
		case n == name:
			hasCurrent = true
		case strings.HasPrefix(n, prefix) && strings.HasSuffix(n, ext):
			backups = append(backups, filepath.Join(logDir, n))
		}
	}

	// Backup names embed their rotation time, so lexical order is chronological.
	sort.Strings(backups)
	if hasCurrent {
		backups = append(backups, filepath.Join(logDir, name))
	}
	return backups, nil
}

func readLogLines(files []string) ([]logLine, error) {
	var lines []logLine
	for _, path := range files {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			lines = append(lines, parseLogLine(scanner.Text()))
		}
		scanErr := scanner.Err()
		_ = file.Close()
		if scanErr != nil {
			return nil, fmt.Errorf("read log file %s: %w", path, scanErr)
		}
	}
	return lines, nil
}

func parseLogLine(raw string) logLine {
	var entry logEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return logLine{raw: raw}
	}
	return logLine{raw: raw, entry: entry, parsed: true}
}

// collectSessions groups lines by session, newest first. Lines without a session are skipped.
func collectSessions(lines []logLine) []SessionInfo {
	byID := make(map[string]*SessionInfo)
	var order []string
	for _, line := range lines {
		id := line.entry.Session
		if !line.parsed || id == "" {
			continue
		}
		s, ok := byID[id]
		if !ok {
			s = &SessionInfo{ShortID: id}
			byID[id] = s
			order = append(order, id)
		}
		s.Lines++
		if t, err := time.Parse(time.RFC3339, line.entry.Time); err == nil {
			if s.First.IsZero() || t.Before(s.First) {
				s.First = t
			}
			if t.After(s.Last) {
				s.Last = t
			}
		}
	}

	sessions := make([]SessionInfo, 0, len(order))
	for _, id := range order {
		sessions = append(sessions, *byID[id])
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Last.After(sessions[j].Last)
	})
	return sessions
}

func filterSession(lines []logLine, shortID string) []logLine {
	var out []logLine
	for _, line := range lines {
		if line.parsed && line.entry.Session == shortID {
			out = append(out, line)
		}
	}
	return out
}

// listSessions displays all available log sessions.
func listSessions(w io.Writer, sessions []SessionInfo, theme *styles.Theme) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, theme.Subtle.Render("No sessions found. Run 'tuikit demo' to create logs."))
		return
	}

	fmt.Fprintln(w, theme.Title.Render("Sessions (newest first):"))
	fmt.Fprintln(w)

	for _, s := range sessions {
		timeStr := "?"
		if !s.First.IsZero() {
			timeStr = s.First.Local().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "  %s  %s  %s\n",
			theme.Highlight.Render(s.ShortID),
			theme.Subtle.Render(timeStr),
			theme.Subtle.Render(fmt.Sprintf("(%d lines)", s.Lines)),
		)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, theme.Subtle.Render("Use 'tuikit logs <id>' to view a session"))
}

// findSession finds a session by case-insensitive prefix of its short ID.
func findSession(sessions []SessionInfo, query string) (*SessionInfo, error) {
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no sessions found")
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var matches []SessionInfo
	for _, s := range sessions {
		id := strings.ToLower(s.ShortID)
		if id == q {
			return &s, nil
		}
		if strings.HasPrefix(id, q) {
			matches = append(matches, s)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no session matching '%s' found", query)
	case 1:
		return &matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for _, m := range matches {
			ids = append(ids, m.ShortID)
		}
		return nil, fmt.Errorf("multiple sessions match '%s': %s", query, strings.Join(ids, ", "))
	}
}

// showSession displays the last n lines, or all of them when n <= 0.
func showSession(w io.Writer, lines []logLine, n int, theme *styles.Theme) {
	start := 0
	if n > 0 {
		start = max(0, len(lines)-n)
	}
	for _, line := range lines[start:] {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
}

// tailSession follows the current log file and prints new lines of one session until ctx is done.
func tailSession(ctx context.Context, w io.Writer, logPath, shortID string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	fmt.Fprintln(w, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Fprintln(w)

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return fmt.Errorf("read log file: %w", err)
			}
			// No full line yet; keep partial data.
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(100 * time.Millisecond):
			}
			continue
		}

		line := parseLogLine(strings.TrimSuffix(pending, "\n"))
		pending = ""
		if line.parsed && line.entry.Session == shortID {
			fmt.Fprintln(w, colorizeLogLine(line, theme))
		}
	}
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line logLine, theme *styles.Theme) string {
	if line.parsed {
		return formatJSONLogLine(line.entry, theme)
	}

	switch {
	case containsAny(line.raw, "ERR", "ERROR"):
		return theme.ErrorStyle.Render(line.raw)
	case containsAny(line.raw, "WRN", "WARN"):
		return theme.WarningStyle.Render(line.raw)
	case containsAny(line.raw, "DBG", "DEBUG"):
		return theme.Subtle.Render(line.raw)
	default:
		return line.raw
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Local().Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, entry.Message)
}

// containsAny checks if s contains any of the substrings, ignoring case.
func containsAny(s string, substrs ...string) bool {
	sLower := strings.ToLower(s)
	for _, substr := range substrs {
		if strings.Contains(sLower, strings.ToLower(substr)) {
			return true
		}
	}
	return false
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove rotated log files",
	Long: `Remove rotated backups of the log file.

Use --all to also truncate the current log file.`,
	RunE: runLogsClear,
}

var logsClearAll bool

func init() {
	logsCmd.AddCommand(logsClearCmd)
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "also truncate the current log file")
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logDir, err := config.GetLogDir()
	if err != nil {
		return fmt.Errorf("resolve log dir: %w", err)
	}
	current := filepath.Join(logDir, logFilename(app.Config))
	files, err := logFiles(logDir, logFilename(app.Config))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	removed := 0
	for _, path := range files {
		if path == current {
			if !logsClearAll {
				continue
			}
			err = os.Truncate(path, 0)
		} else {
			err = os.Remove(path)
		}
		if err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", app.Theme.ErrorStyle.Render("✗"), filepath.Base(path), err)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", app.Theme.SuccessStyle.Render("✓"), filepath.Base(path))
		removed++
	}

	if removed == 0 {
		fmt.Fprintln(out, app.Theme.Subtle.Render("No logs to clear"))
	}
	return nil
}
