package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"

	"github.com/Amr-9/VanityHunter/pkg/generator"
)

const ruleWidth = 60

// SearchInfo is what the startup banner reports about a run.
type SearchInfo struct {
	Network  string
	Terms    []string
	Workers  int
	Batch    int
	MaxSpeed bool
	Limit    int
	Output   string
}

// Console renders the run on a terminal. It is safe for concurrent use:
// matches are printed from the search loop while progress comes from the
// render goroutine.
type Console struct {
	mu    sync.Mutex
	w     io.Writer
	frame int
}

// NewConsole returns a console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// PrintBanner shows the welcome screen.
func (c *Console) PrintBanner(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	border := color.Cyan.Sprint("  ╔" + strings.Repeat("═", ruleWidth) + "╗")
	bottom := color.Cyan.Sprint("  ╚" + strings.Repeat("═", ruleWidth) + "╝")
	title := fmt.Sprintf("VANITY HUNTER  v%s", version)
	pad := ruleWidth - len(title)
	left := pad / 2

	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, border)
	fmt.Fprintf(c.w, "  %s%s%s%s%s\n",
		color.Cyan.Sprint("║"),
		strings.Repeat(" ", left),
		color.Bold.Sprint(color.Yellow.Sprint(title)),
		strings.Repeat(" ", pad-left),
		color.Cyan.Sprint("║"))
	fmt.Fprintln(c.w, bottom)
	fmt.Fprintln(c.w)
}

// PrintSearchInfo displays the search configuration.
func (c *Console) PrintSearchInfo(info SearchInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.w, "🚀 Searching %s for: %s\n",
		color.Cyan.Sprint(info.Network),
		color.Bold.Sprint(strings.Join(info.Terms, ", ")))
	fmt.Fprintf(c.w, "⚡ Workers: %s | Batch: %s\n",
		color.Green.Sprint(info.Workers),
		color.Green.Sprint(FormatNumber(uint64(info.Batch))))

	speed := color.Gray.Sprint("OFF")
	if info.MaxSpeed {
		speed = color.Red.Sprint("ON")
	}
	fmt.Fprintf(c.w, "🔥 Max speed mode: %s\n", speed)

	limit := "unlimited"
	if info.Limit > 0 {
		limit = FormatNumber(uint64(info.Limit))
	}
	fmt.Fprintf(c.w, "🎯 Results: %s | Output: %s\n", limit, color.Yellow.Sprint(info.Output))
	fmt.Fprintln(c.w, strings.Repeat("━", ruleWidth))
}

// PrintProgress redraws the single status line.
func (c *Console) PrintProgress(p generator.Progress) {
	c.mu.Lock()
	defer c.mu.Unlock()

	spinners := []string{"◐", "◓", "◑", "◒"}
	spinner := spinners[c.frame%len(spinners)]
	c.frame++

	rate := uint64(math.Round(p.RollingRate))
	fmt.Fprintf(c.w, "\r%s %s attempts | %s/s | Found: %s | %s     ",
		color.Cyan.Sprint(spinner),
		color.Yellow.Sprint(FormatNumber(p.Attempts)),
		color.Green.Sprint(FormatNumber(rate)),
		color.Bold.Sprint(p.Found),
		FormatElapsed(p.Elapsed))
}

// PrintMatch shows an accepted result.
func (c *Console) PrintMatch(rec generator.ResultRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.w, "\n🎉 FOUND #%d: %s\n", rec.ID, color.Green.Sprint(rec.Address))
	fmt.Fprintf(c.w, "🔑 Private: %s\n", color.Magenta.Sprint(rec.PrivateKey))
	fmt.Fprintf(c.w, "🎯 Term: %q | Quality: %d\n", rec.Term, rec.Quality)
}

// PrintFinalStats shows the summary of a finished run.
func (c *Console) PrintFinalStats(s *generator.Summary, outputPath string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.w, "\n\n%s (%s)\n", color.Bold.Sprint("🏁 FINAL STATS"), s.Reason)
	fmt.Fprintf(c.w, "📊 Found: %s | Attempts: %s\n",
		color.Green.Sprint(s.Found()),
		color.Yellow.Sprint(FormatNumber(s.Attempts)))
	fmt.Fprintf(c.w, "⚡ Average rate: %s (%s/s) | Time: %s\n",
		FormatHashRate(s.AverageRate),
		FormatNumber(uint64(math.Round(s.AverageRate))),
		FormatDuration(s.Elapsed))
	if s.Found() > 0 {
		fmt.Fprintf(c.w, "💾 Saved to: %s\n", color.Yellow.Sprint(outputPath))
		fmt.Fprintln(c.w, color.Red.Sprint("⚠  KEEP YOUR PRIVATE KEYS SECRET!"))
	}
	for _, f := range s.Failures {
		fmt.Fprintf(c.w, "%s worker %d: %v\n", color.Red.Sprint("✗"), f.WorkerID, f.Err)
	}
}

// PrintError reports a fatal problem.
func (c *Console) PrintError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.w, "\n%s %v\n", color.Red.Sprint("✗ Error:"), err)
}

// FormatHashRate formats hash rate nicely
func FormatHashRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	out := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return string(out)
}

// FormatElapsed is the compact clock of the progress line: 1h5m, 2m30s, 42s.
func FormatElapsed(d time.Duration) string {
	secs := int64(d / time.Second)
	switch {
	case secs > 3600:
		return fmt.Sprintf("%dh%dm", secs/3600, (secs%3600)/60)
	case secs > 60:
		return fmt.Sprintf("%dm%ds", secs/60, secs%60)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
