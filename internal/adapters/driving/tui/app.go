// Package tui implements the interactive connection screen following the Elm
// architecture.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/m-kupiec/music-app/internal/adapters/driving/tui/keymap"
	"github.com/m-kupiec/music-app/internal/adapters/driving/tui/messages"
	"github.com/m-kupiec/music-app/internal/adapters/driving/tui/styles"
	"github.com/m-kupiec/music-app/internal/core/domain"
)

// App is the connection-flow TUI. It renders the screen matching the current
// connection status while the flow itself runs outside the program and feeds
// it messages.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// spinner animates the in-progress screens.
	spinner spinner.Model

	// status is the connection status driving screen selection.
	status domain.Status

	// authURL is the authorization page URL shown on the auth screen.
	authURL string

	// profile is the connected account's profile, set after a successful
	// fetch.
	profile *domain.UserProfile

	// details holds formatted failure details for terminal screens.
	details string

	// err holds a non-flow error, such as a callback server failure.
	err error

	// finished marks the flow as terminal; the next confirm key quits.
	finished bool

	// width and height are terminal dimensions.
	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the connection TUI over the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = s.Title

	return &App{
		ports:   ports,
		styles:  s,
		keys:    keymap.DefaultKeyMap(),
		spinner: sp,
		status:  ports.Connection.Status(),
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.spinner.Tick,
		tea.SetWindowTitle("music-app"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if keymap.Matches(msg.String(), a.keys.Quit) {
			return a, tea.Quit
		}
		if a.finished && keymap.Matches(msg.String(), a.keys.Confirm) {
			return a, tea.Quit
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case messages.StatusChanged:
		a.status = msg.Status
		return a, nil

	case messages.AuthPageOpened:
		a.authURL = msg.URL
		return a, nil

	case messages.ProfileLoaded:
		a.profile = msg.Profile
		return a, nil

	case messages.FlowFinished:
		a.status = msg.Status
		a.details = msg.Details
		a.finished = true
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.finished = true
		return a, nil
	}

	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("music-app"))
	b.WriteString("\n\n")

	if a.err != nil {
		b.WriteString(a.styles.Error.Render(fmt.Sprintf("Error: %v", a.err)))
		b.WriteString("\n\n")
		b.WriteString(a.styles.Help.Render("enter/q: quit"))
		return b.String()
	}

	switch domain.ScreenFromStatus(a.status) {
	case domain.ScreenAuth:
		b.WriteString(a.spinner.View())
		b.WriteString(a.styles.Normal.Render(" Waiting for authorization in your browser..."))
		if a.authURL != "" {
			b.WriteString("\n\n")
			b.WriteString(a.styles.Muted.Render("If the page did not open, visit:"))
			b.WriteString("\n")
			b.WriteString(a.styles.Muted.Render(a.authURL))
		}

	case domain.ScreenConnection:
		b.WriteString(a.spinner.View())
		b.WriteString(a.styles.Normal.Render(" Connecting your account..."))

	case domain.ScreenMain:
		b.WriteString(a.styles.Success.Render(domain.Message(a.status)))
		if a.profile != nil {
			b.WriteString("\n\n")
			b.WriteString(a.styles.Normal.Render(fmt.Sprintf("Signed in as %s (%s)", a.profile.DisplayName, a.profile.ID)))
		}

	default:
		if message := domain.Message(a.status); message != "" {
			b.WriteString(a.styles.Error.Render(message))
			if a.details != "" {
				b.WriteString("\n")
				b.WriteString(a.styles.Muted.Render(a.details))
			}
		} else {
			b.WriteString(a.styles.Normal.Render("Not connected."))
		}
	}

	b.WriteString("\n\n")
	if a.finished {
		b.WriteString(a.styles.Help.Render("enter/q: quit"))
	} else {
		b.WriteString(a.styles.Help.Render("q: quit"))
	}

	return b.String()
}

// Status returns the status currently displayed.
func (a *App) Status() domain.Status {
	return a.status
}

// Profile returns the displayed profile, or nil.
func (a *App) Profile() *domain.UserProfile {
	return a.profile
}
