package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstviz/playback"
	"github.com/katalvlaran/mstviz/prim_kruskal"
	"github.com/katalvlaran/mstviz/render"
)

// =============================================================================
// PlayModel - Interactive step-through of one trace
// =============================================================================

// tickMsg advances auto-play. gen identifies the play run that scheduled it,
// so ticks left over from a paused run are dropped.
type tickMsg struct{ gen int }

// PlayModel is the bubbletea model for stepping through a trace.
type PlayModel struct {
	Session  *playback.Session
	Interval time.Duration
	Playing  bool

	gen int
}

// NewPlayModel creates a play model positioned at the first step.
func NewPlayModel(tr prim_kruskal.Trace, interval time.Duration) PlayModel {
	return PlayModel{
		Session:  playback.New(tr),
		Interval: playback.ClampInterval(interval),
	}
}

func (m PlayModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.Interval, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

func (m PlayModel) Init() tea.Cmd {
	if m.Playing {
		return m.tick()
	}
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n":
			m.Playing = false
			m.Session.Advance()
		case "left", "h", "p":
			m.Playing = false
			m.Session.Retreat()
		case "home", "g", "r":
			m.Playing = false
			m.Session.Reset()
		case "end", "G":
			m.Playing = false
			if m.Session.Len() > 0 {
				_, _ = m.Session.Seek(m.Session.Len() - 1)
			}
		case " ":
			if m.Playing {
				m.Playing = false
				return m, nil
			}
			if m.Session.AtEnd() {
				return m, nil
			}
			m.Playing = true
			m.gen++
			return m, m.tick()
		case "+", "=":
			m.Interval = playback.ClampInterval(m.Interval / 2)
		case "-", "_":
			m.Interval = playback.ClampInterval(m.Interval * 2)
		}
	case tickMsg:
		if !m.Playing || msg.gen != m.gen {
			return m, nil
		}
		m.Session.Advance()
		if m.Session.AtEnd() {
			m.Playing = false
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

func (m PlayModel) View() string {
	var b strings.Builder

	tr := m.Session.Trace()
	b.WriteString(styleTitle.Render(methodTitle(tr.Method) + " MST"))
	b.WriteString("\n")

	step, ok := m.Session.Current()
	if !ok {
		b.WriteString(styleDim.Render("graph has no edges; nothing to play"))
		b.WriteString("\n\n")
		b.WriteString(styleDim.Render("q quit"))
		b.WriteString("\n")
		return b.String()
	}

	pos := m.Session.Position()
	state := "paused"
	if m.Playing {
		state = "playing"
	}
	b.WriteString(styleDim.Render(fmt.Sprintf("step %d/%d  %s  %s", pos+1, m.Session.Len(), state, m.Interval)))
	b.WriteString("\n\n")
	b.WriteString(statusStyle(step.Status).Render(string(step.Status)) + " " + step.Log)
	b.WriteString("\n\n")
	b.WriteString(render.EdgeTable(tr, pos))
	b.WriteString("\n")
	if t := render.StateTable(step); t != "" {
		b.WriteString(t)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styleDim.Render("←/→ step  space play/pause  g/G first/last  +/- speed  q quit"))
	b.WriteString("\n")

	return b.String()
}

// methodTitle capitalizes a method name for display.
func methodTitle(method string) string {
	if method == "" {
		return "Unknown"
	}
	return strings.ToUpper(method[:1]) + method[1:]
}

// =============================================================================
// play command
// =============================================================================

// playOpts holds the options for the play command.
type playOpts struct {
	replayOpts
	speed    time.Duration
	autoplay bool
	plain    bool
}

// playCommand creates the play command.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play [graph-file]",
		Short: "Step through a run interactively",
		Long: `Opens an interactive player over the step trace. Use the arrow keys to move
one step, space to auto-play at the configured speed, and q to quit.

With --plain the trace is printed one step per interval without a terminal UI.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd, args, opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().DurationVar(&opts.speed, "speed", 0, "auto-play interval (default from config)")
	cmd.Flags().BoolVar(&opts.autoplay, "autoplay", false, "start playing immediately")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print steps at the play interval instead of opening the UI")

	return cmd
}

func (c *CLI) runPlay(cmd *cobra.Command, args []string, opts playOpts) error {
	tr, err := c.loadTrace(cmd, args, opts.replayOpts)
	if err != nil {
		return err
	}

	interval := opts.speed
	if interval == 0 {
		interval = c.cfg.Speed
	}

	if opts.plain {
		return playPlain(cmd, tr, interval)
	}

	m := NewPlayModel(tr, interval)
	m.Playing = opts.autoplay && tr.Len() > 1
	p := tea.NewProgram(m,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err = p.Run()
	return err
}

// playPlain prints one step per interval through a playback.Player.
func playPlain(cmd *cobra.Command, tr prim_kruskal.Trace, interval time.Duration) error {
	w := cmd.OutOrStdout()
	if tr.Empty() {
		printWarning(w, "graph has no edges; nothing to play")
		return nil
	}

	s := playback.New(tr)
	i := 0
	if step, ok := s.Current(); ok {
		printStep(w, i, step)
	}
	player := playback.NewPlayer(s, interval)
	return player.Run(cmd.Context(), func(step prim_kruskal.Step) {
		i++
		printStep(w, i, step)
	})
}
