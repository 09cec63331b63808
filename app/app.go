package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"golang.org/x/sync/errgroup"

	"github.com/maiconbre/barbershop/client"
	"github.com/maiconbre/barbershop/config"
	"github.com/maiconbre/barbershop/msg"
	"github.com/maiconbre/barbershop/style"
	"github.com/maiconbre/barbershop/ui/clipboard"
	"github.com/maiconbre/barbershop/ui/common"
	"github.com/maiconbre/barbershop/ui/detail"
	"github.com/maiconbre/barbershop/ui/header"
	"github.com/maiconbre/barbershop/ui/list"
	"github.com/maiconbre/barbershop/ui/logo"
	"github.com/maiconbre/barbershop/ui/status"
	"github.com/maiconbre/barbershop/ui/toast"
)

const (
	loadTimeout   = 30 * time.Second
	retryInterval = 5 * time.Second
)

// -- Internal message types ---------------------------------------------------

type retryHealth struct{}

// -- Model --------------------------------------------------------------------

// Model is the root Bubble Tea model. It owns every sub-model and all
// wiring between the backend client and the UI.
type Model struct {
	header  header.Model
	status  status.Model
	toasts  toast.Model
	detail  *detail.Model
	spinner spinner.Model
	filter  textinput.Model

	appointments *list.FilterableList[client.Appointment]
	comments     *list.FilterableList[client.Comment]

	state  State
	tab    Tab
	layout Layout
	keys   KeyMap

	client     *client.CachedClient
	cfg        config.Config
	profileDir string

	width   int
	height  int
	loaded  bool
	loading bool
	lastErr error
	preview string // key of the item shown in the detail pane
}

// New constructs the root Model. Row height and overscan come from cfg and
// are rejected if invalid.
func New(c *client.CachedClient, cfg config.Config, profileDir string) (Model, error) {
	opts := []list.Option{
		list.WithRowHeight(cfg.RowHeight),
		list.WithOverscan(cfg.Overscan),
	}
	// Renderers read the live filter so matches stay marked as it changes.
	var (
		appts    *list.FilterableList[client.Appointment]
		comments *list.FilterableList[client.Comment]
	)
	al, err := list.New(appointmentRenderer(func() string { return appts.Filter() }), opts...)
	if err != nil {
		return Model{}, fmt.Errorf("appointments list: %w", err)
	}
	cl, err := list.New(commentRenderer(func() string { return comments.Filter() }), opts...)
	if err != nil {
		al.Close()
		return Model{}, fmt.Errorf("comments list: %w", err)
	}
	appts = list.NewFilterable(al, appointmentLabel)
	comments = list.NewFilterable(cl, commentLabel)

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "client, service, barber or status"
	s := ti.Styles()
	s.Focused.Prompt = style.FilterPrompt
	ti.SetStyles(s)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(style.SpinnerStyle))

	m := Model{
		header:       header.New(TabAppointments.String(), TabComments.String()),
		status:       status.New(),
		toasts:       toast.New(),
		detail:       detail.New(),
		spinner:      sp,
		filter:       ti,
		appointments: appts,
		comments:     comments,
		state:        StateConnecting,
		keys:         DefaultKeyMap(),
		client:       c,
		cfg:          cfg,
		profileDir:   profileDir,
	}
	m.header.SetShop(nil, c.BarbershopID)
	return m, nil
}

// Close releases the lists' scroll listeners.
func (m Model) Close() {
	m.appointments.List().Close()
	m.comments.List().Close()
}

// State returns the current application state.
func (m Model) State() State { return m.state }

// Tab returns the active list.
func (m Model) Tab() Tab { return m.tab }

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.checkHealth(), m.spinner.Tick, func() tea.Msg { return tea.RequestWindowSize() })
}

// -- Update -------------------------------------------------------------------

func (m Model) Update(rawMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := rawMsg.(type) {

	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.header.SetWidth(v.Width)
		m.status.SetWidth(v.Width)
		m.filter.SetWidth(max(10, v.Width-4))
		m.recomputeLayout()
		return m, nil

	case tea.MouseWheelMsg:
		switch {
		case m.state == StateDetail, m.layout.SideBySide && v.X >= m.layout.ListWidth:
			m.detail.Update(v)
		case m.state == StateBrowsing || m.state == StateFiltering:
			m.activeList().Update(v)
			m.syncPreview()
		}
		m.syncStatus()
		return m, nil

	case tea.MouseClickMsg:
		return m.handleClick(v)

	case tea.KeyPressMsg:
		return m.handleKey(v)

	case spinner.TickMsg:
		if m.state != StateConnecting && m.state != StateLoading && !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(v)
		return m, cmd

	case msg.ToastTick:
		return m, m.toasts.Tick()

	case msg.Copied:
		if v.Err != nil {
			return m, m.toasts.Add(v.Err.Error(), toast.Warning)
		}
		return m, m.toasts.Add("copied "+v.What, toast.Info)

	// -- Connection --

	case msg.HealthResult:
		return m.handleHealth(v)

	case retryHealth:
		return m, m.checkHealth()

	case msg.LoginResult:
		return m.handleLogin(v)

	// -- Data --

	case msg.DataLoaded:
		return m.handleData(v)
	}
	return m, nil
}

// -- Key handling -------------------------------------------------------------

func (m Model) handleKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if k.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case StateFiltering:
		return m.handleFilterKey(k)
	case StateDetail:
		return m.handleDetailKey(k)
	case StateBrowsing:
		return m.handleBrowseKey(k)
	case StateError:
		switch {
		case key.Matches[tea.KeyPressMsg](k, m.keys.Quit):
			return m, tea.Quit
		case key.Matches[tea.KeyPressMsg](k, m.keys.Refresh):
			m.state = StateConnecting
			m.lastErr = nil
			m.status.SetError(nil)
			return m, tea.Batch(m.checkHealth(), m.spinner.Tick)
		}
	default:
		if key.Matches[tea.KeyPressMsg](k, m.keys.Quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleBrowseKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	l := m.activeList()
	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Quit):
		return m, tea.Quit

	case key.Matches[tea.KeyPressMsg](k, m.keys.Down):
		l.CursorDown()
	case key.Matches[tea.KeyPressMsg](k, m.keys.Up):
		l.CursorUp()
	case key.Matches[tea.KeyPressMsg](k, m.keys.PageDown):
		l.PageDown()
	case key.Matches[tea.KeyPressMsg](k, m.keys.PageUp):
		l.PageUp()
	case key.Matches[tea.KeyPressMsg](k, m.keys.HalfPageDown):
		l.HalfPageDown()
	case key.Matches[tea.KeyPressMsg](k, m.keys.HalfPageUp):
		l.HalfPageUp()
	case key.Matches[tea.KeyPressMsg](k, m.keys.Top):
		l.CursorTop()
	case key.Matches[tea.KeyPressMsg](k, m.keys.Bottom):
		l.CursorBottom()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Open):
		if l.Selected() < 0 {
			return m, nil
		}
		m.syncPreview()
		m.state = StateDetail
		m.status.SetHints(common.KeyHelp(m.keys.DetailHelp()...))
		return m, nil

	case key.Matches[tea.KeyPressMsg](k, m.keys.Filter):
		m.state = StateFiltering
		m.filter.SetValue(m.activeFilter())
		m.filter.CursorEnd()
		m.recomputeLayout()
		m.status.SetHints(common.KeyHelp(m.keys.FilterHelp()...))
		return m, m.filter.Focus()

	case key.Matches[tea.KeyPressMsg](k, m.keys.SwitchTab):
		m.tab = m.tab.Next()
		m.header.SetActive(int(m.tab))

	case key.Matches[tea.KeyPressMsg](k, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.loadData(true), m.spinner.Tick)

	case key.Matches[tea.KeyPressMsg](k, m.keys.Theme):
		m.cycleTheme()

	case key.Matches[tea.KeyPressMsg](k, m.keys.Copy):
		return m, m.copySelected()
	}
	m.syncPreview()
	m.syncStatus()
	return m, nil
}

func (m Model) handleFilterKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch k.String() {
	case "enter":
		m.endFilter()
		return m, nil
	case "esc":
		m.setActiveFilter("")
		m.endFilter()
		return m, nil
	case "up", "down", "pgup", "pgdown":
		// Navigation keeps working while typing.
		l := m.activeList()
		switch k.String() {
		case "up":
			l.CursorUp()
		case "down":
			l.CursorDown()
		case "pgup":
			l.PageUp()
		case "pgdown":
			l.PageDown()
		}
		m.syncPreview()
		m.syncStatus()
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(k)
	if v := m.filter.Value(); v != m.activeFilter() {
		m.setActiveFilter(v)
		m.syncPreview()
		m.syncStatus()
	}
	return m, cmd
}

func (m *Model) endFilter() {
	m.filter.Blur()
	m.state = StateBrowsing
	m.recomputeLayout()
	m.status.SetHints(common.KeyHelp(m.keys.BrowseHelp()...))
	m.syncStatus()
}

func (m Model) handleDetailKey(k tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	s := m.detail.Surface()
	switch {
	case key.Matches[tea.KeyPressMsg](k, m.keys.Quit):
		return m, tea.Quit
	case key.Matches[tea.KeyPressMsg](k, m.keys.Escape), key.Matches[tea.KeyPressMsg](k, m.keys.Open):
		m.state = StateBrowsing
		m.status.SetHints(common.KeyHelp(m.keys.BrowseHelp()...))
	case key.Matches[tea.KeyPressMsg](k, m.keys.Copy):
		return m, m.copySelected()
	case key.Matches[tea.KeyPressMsg](k, m.keys.Down):
		s.ScrollBy(1)
	case key.Matches[tea.KeyPressMsg](k, m.keys.Up):
		s.ScrollBy(-1)
	case key.Matches[tea.KeyPressMsg](k, m.keys.PageDown):
		s.PageDown()
	case key.Matches[tea.KeyPressMsg](k, m.keys.PageUp):
		s.PageUp()
	case key.Matches[tea.KeyPressMsg](k, m.keys.HalfPageDown):
		s.HalfPageDown()
	case key.Matches[tea.KeyPressMsg](k, m.keys.HalfPageUp):
		s.HalfPageUp()
	case key.Matches[tea.KeyPressMsg](k, m.keys.Top):
		s.ScrollToTop()
	case key.Matches[tea.KeyPressMsg](k, m.keys.Bottom):
		s.ScrollToBottom()
	}
	return m, nil
}

func (m Model) handleClick(v tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.state != StateBrowsing || v.Button != tea.MouseLeft || v.X >= m.layout.ListWidth {
		return m, nil
	}
	l := m.activeList()
	i := l.IndexAt(v.Y - m.layout.ListTop)
	if i < 0 {
		return m, nil
	}
	if i == l.Selected() && !m.layout.SideBySide {
		m.syncPreview()
		m.state = StateDetail
		m.status.SetHints(common.KeyHelp(m.keys.DetailHelp()...))
		return m, nil
	}
	l.Select(i)
	m.syncPreview()
	m.syncStatus()
	return m, nil
}

// -- Connection ---------------------------------------------------------------

func (m Model) handleHealth(h msg.HealthResult) (Model, tea.Cmd) {
	m.header.SetHealth(h)
	if h.Err != nil {
		log.Printf("app: health: %v", h.Err)
		m.state = StateConnecting
		m.status.SetError(fmt.Errorf("backend unreachable: %w (retrying in %s)", h.Err, retryInterval))
		return m, tea.Tick(retryInterval, func(time.Time) tea.Msg { return retryHealth{} })
	}
	m.status.SetError(nil)

	if m.client.Token == "" && m.cfg.Email != "" && m.cfg.Password != "" {
		return m, m.doLogin()
	}
	m.state = StateLoading
	m.loading = true
	return m, m.loadData(false)
}

func (m Model) handleLogin(r msg.LoginResult) (Model, tea.Cmd) {
	if r.Err != nil {
		return m.fail(fmt.Errorf("login: %w", r.Err))
	}
	m.header.SetShop(nil, r.BarbershopID)
	m.state = StateLoading
	m.loading = true
	return m, m.loadData(false)
}

func (m Model) handleData(d msg.DataLoaded) (Model, tea.Cmd) {
	m.loading = false
	if d.Err != nil {
		log.Printf("app: load (refresh=%t): %v", d.Refresh, d.Err)
		if m.loaded && !errors.Is(d.Err, client.ErrUnauthorized) {
			return m, m.toasts.Add("refresh failed: "+d.Err.Error(), toast.Error)
		}
		return m.fail(d.Err)
	}

	log.Printf("app: loaded %d appointments, %d comments in %s", len(d.Appointments), len(d.Comments), d.Elapsed)
	m.loaded = true
	m.lastErr = nil
	m.status.SetError(nil)
	m.status.SetLoadTime(d.Elapsed)
	m.header.SetShop(d.Shop, m.client.BarbershopID)
	m.header.SetCatalog(len(d.Barbers), len(d.Services))
	m.header.SetCount(int(TabAppointments), len(d.Appointments))
	m.header.SetCount(int(TabComments), len(d.Comments))

	m.appointments.SetItems(d.Appointments)
	m.comments.SetItems(d.Comments)
	m.preview = ""

	if m.state == StateConnecting || m.state == StateLoading || m.state == StateError {
		m.state = StateBrowsing
		m.status.SetHints(common.KeyHelp(m.keys.BrowseHelp()...))
	}
	m.recomputeLayout()

	var cmd tea.Cmd
	if d.Refresh {
		cmd = m.toasts.Add(fmt.Sprintf("refreshed %d appointments", len(d.Appointments)), toast.Info)
	}
	return m, cmd
}

func (m Model) fail(err error) (Model, tea.Cmd) {
	if errors.Is(err, client.ErrUnauthorized) {
		err = fmt.Errorf("%w: set %s, or %s and %s", err, config.EnvToken, config.EnvEmail, config.EnvPassword)
	}
	m.state = StateError
	m.lastErr = err
	m.status.SetError(err)
	m.status.SetHints(common.KeyHelp(m.keys.Refresh, m.keys.Quit))
	return m, nil
}

// -- Commands -----------------------------------------------------------------

func (m Model) checkHealth() tea.Cmd {
	c := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), client.DefaultTimeout)
		defer cancel()
		health, err := c.Health(ctx)
		if err != nil {
			return msg.HealthResult{Err: err}
		}
		return msg.HealthResult{Status: health.Status, Version: health.Version}
	}
}

func (m Model) doLogin() tea.Cmd {
	c := m.client
	email, password, dir := m.cfg.Email, m.cfg.Password, m.profileDir
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), client.DefaultTimeout)
		defer cancel()
		resp, err := c.Login(ctx, email, password)
		if err != nil {
			return msg.LoginResult{Err: err}
		}
		if dir != "" {
			// The session is valid without a cached token.
			if err := config.SaveToken(dir, resp.Token); err != nil {
				log.Printf("app: save token: %v", err)
			}
		}
		return msg.LoginResult{Token: resp.Token, BarbershopID: c.BarbershopID}
	}
}

// loadData fetches the shop, its lists and its catalog concurrently. A
// refresh drops cached responses first.
func (m Model) loadData(refresh bool) tea.Cmd {
	c := m.client
	return func() tea.Msg {
		start := time.Now()
		if refresh {
			c.Invalidate()
		}
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		out := msg.DataLoaded{Refresh: refresh}
		g, ctx := errgroup.WithContext(ctx)
		if id := c.BarbershopID; id != "" {
			g.Go(func() error {
				shop, err := c.GetBarbershop(ctx, id)
				out.Shop = shop
				return err
			})
		}
		g.Go(func() (err error) {
			out.Appointments, err = c.ListAppointments(ctx)
			return err
		})
		g.Go(func() (err error) {
			out.Comments, err = c.ListComments(ctx)
			return err
		})
		g.Go(func() (err error) {
			out.Barbers, err = c.ListBarbers(ctx)
			return err
		})
		g.Go(func() (err error) {
			out.Services, err = c.ListServices(ctx)
			return err
		})
		out.Err = g.Wait()
		out.Elapsed = time.Since(start)
		return out
	}
}

// -- Helpers ------------------------------------------------------------------

// listView is the subset of *list.Model both tabs share.
type listView interface {
	Update(tea.Msg) tea.Cmd
	View() string
	Selected() int
	Select(int)
	IndexAt(int) int
	CursorUp()
	CursorDown()
	CursorTop()
	CursorBottom()
	PageUp()
	PageDown()
	HalfPageUp()
	HalfPageDown()
}

func (m Model) activeList() listView {
	if m.tab == TabComments {
		return m.comments.List()
	}
	return m.appointments.List()
}

func (m Model) activeFilter() string {
	if m.tab == TabComments {
		return m.comments.Filter()
	}
	return m.appointments.Filter()
}

func (m *Model) setActiveFilter(v string) {
	if m.tab == TabComments {
		m.comments.SetFilter(v)
	} else {
		m.appointments.SetFilter(v)
	}
}

// copySelected copies the selected appointment's WhatsApp number, or the
// selected comment's text.
func (m Model) copySelected() tea.Cmd {
	if m.tab == TabComments {
		if c, ok := m.comments.List().SelectedItem(); ok {
			return clipboard.Copy("comment", c.Comment)
		}
		return nil
	}
	if a, ok := m.appointments.List().SelectedItem(); ok {
		return clipboard.Copy("WhatsApp", a.WhatsApp)
	}
	return nil
}

// syncPreview points the detail pane at the selected item. The pane keeps its
// scroll position while the selection is unchanged.
func (m *Model) syncPreview() {
	var id string
	if m.tab == TabComments {
		c, ok := m.comments.List().SelectedItem()
		if !ok {
			return
		}
		if id = "c/" + c.ID + "/" + c.Name; id != m.preview {
			m.detail.SetComment(c)
		}
	} else {
		a, ok := m.appointments.List().SelectedItem()
		if !ok {
			return
		}
		if id = "a/" + a.ID + "/" + a.ClientName; id != m.preview {
			m.detail.SetAppointment(a)
		}
	}
	m.preview = id
}

// syncStatus copies the active list's window into the status bar.
func (m *Model) syncStatus() {
	var (
		first, last, total, all int
		percent                 float64
	)
	if m.tab == TabComments {
		l := m.comments.List()
		first, last, total, percent = l.FirstVisible(), l.LastVisible(), l.Len(), l.Surface().Percent()
		all = m.comments.Total()
		m.status.SetWindow(l.Range(), l.Stats(), l.Renders())
	} else {
		l := m.appointments.List()
		first, last, total, percent = l.FirstVisible(), l.LastVisible(), l.Len(), l.Surface().Percent()
		all = m.appointments.Total()
		m.status.SetWindow(l.Range(), l.Stats(), l.Renders())
	}
	m.status.SetViewport(first, last, total, percent)
	m.status.SetUnfiltered(all)
}

func (m *Model) recomputeLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.layout = ComputeLayout(m.width, m.height, m.state == StateFiltering)
	for _, err := range []error{
		m.appointments.List().SetSize(m.layout.ListWidth, m.layout.ListHeight),
		m.comments.List().SetSize(m.layout.ListWidth, m.layout.ListHeight),
	} {
		if err != nil {
			m.status.SetError(err)
		}
	}
	m.detail.SetSize(m.layout.DetailWidth, m.layout.DetailHeight)
	m.syncPreview()
	m.syncStatus()
}

func (m *Model) cycleTheme() {
	names := style.ThemeNames
	next := names[0]
	for i, n := range names {
		if n == style.CurrentThemeName {
			next = names[(i+1)%len(names)]
			break
		}
	}
	style.SetTheme(next)
	m.appointments.List().Invalidate()
	m.comments.List().Invalidate()
	m.detail.Invalidate()
	m.status.SetHints(common.KeyHelp(m.keys.BrowseHelp()...))

	// Only the theme is persisted; m.cfg also carries flag and env overrides.
	m.cfg.Theme = next
	if m.profileDir != "" {
		saved := config.Load(m.profileDir)
		saved.Theme = next
		if err := config.Save(m.profileDir, saved); err != nil {
			log.Printf("app: save config: %v", err)
		}
	}
}

// -- View ---------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderView())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderView composes the full terminal frame as a string.
func (m Model) renderView() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var sections []string
	switch m.state {
	case StateConnecting, StateLoading:
		sections = append(sections, m.header.View(), m.renderWaiting(), m.status.View())

	case StateError:
		sections = append(sections, m.header.View(), m.renderError(), m.status.View())

	default:
		sections = append(sections, m.header.View())
		if m.state == StateFiltering {
			sections = append(sections, m.filter.View())
		}
		sections = append(sections, m.renderMain(), m.status.View())
	}
	frame := strings.Join(sections, "\n")

	if m.toasts.Len() > 0 {
		lines := strings.Split(frame, "\n")
		toasts := strings.Split(m.toasts.View(m.width), "\n")
		// Overlay toasts on the lines just above the status bar.
		at := max(0, len(lines)-status.Height-len(toasts))
		for i, t := range toasts {
			if at+i < len(lines) {
				lines[at+i] = t
			}
		}
		frame = strings.Join(lines, "\n")
	}
	return frame
}

func (m Model) renderMain() string {
	if m.state == StateDetail && !m.layout.SideBySide {
		return m.detail.View()
	}
	body := m.activeList().View()
	if m.layout.SideBySide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.detail.View())
	}
	return body
}

func (m Model) bodyHeight() int {
	return max(1, m.height-header.Height-status.Height)
}

func (m Model) renderWaiting() string {
	label := "Connecting"
	if m.state == StateLoading {
		label = "Loading appointments"
	}
	splash := lipgloss.JoinVertical(lipgloss.Center,
		logo.Render(m.width),
		"",
		m.spinner.View()+" "+style.Faint.Render(label+"…"),
		logo.RenderTagline(m.client.BaseURL),
	)
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, splash)
}

func (m Model) renderError() string {
	text := "Something went wrong."
	if m.lastErr != nil {
		text = m.lastErr.Error()
	}
	box := style.DetailBorder.BorderForeground(style.Error).Width(min(72, max(20, m.width-4))).Render(
		style.ErrorText.Render("✘ ") + text + "\n\n" + style.Faint.Render("press r to retry, q to quit"),
	)
	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}
