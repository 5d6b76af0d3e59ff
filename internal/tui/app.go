// Package tui implements the interactive catalog browser.
//
// The browser is a single Bubble Tea program with three stacked states:
// folder list, sticker list (filterable), and sticker detail. All data is
// read through the same internal/db queries the CLI uses.
package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/emotebox/stickerdex/internal/config"
	"github.com/emotebox/stickerdex/internal/db"
	"github.com/emotebox/stickerdex/internal/models"
	"github.com/emotebox/stickerdex/internal/telemetry"
)

type state int

const (
	stateFolders state = iota
	stateStickers
	stateDetail
)

func (s state) String() string {
	switch s {
	case stateFolders:
		return "folders"
	case stateStickers:
		return "stickers"
	case stateDetail:
		return "detail"
	}
	return "unknown"
}

// folderItem is one row in the folder list.
type folderItem struct {
	Name  string
	Owner string
	Count int64
}

// foldersLoadedMsg carries the folder list after the initial load.
type foldersLoadedMsg struct {
	folders []folderItem
	err     error
}

// stickersLoadedMsg carries a folder's stickers after selection.
type stickersLoadedMsg struct {
	folder   string
	stickers []models.Sticker
	err      error
}

// Model is the browser's Bubble Tea model.
type Model struct {
	db        *db.DB
	cfg       *config.Config
	telemetry telemetry.Client
	styles    Styles

	state state

	folders   []folderItem
	folderIdx int

	folder     string
	stickers   []models.Sticker
	filtered   []models.Sticker
	stickerIdx int

	filter    textinput.Model
	filtering bool

	status string
	err    error

	width  int
	height int
}

// NewModel creates the browser model.
func NewModel(database *db.DB, cfg *config.Config, tc telemetry.Client) Model {
	filter := textinput.New()
	filter.Placeholder = "filter by name or tag"
	filter.CharLimit = 64
	filter.Width = 32

	return Model{
		db:        database,
		cfg:       cfg,
		telemetry: tc,
		styles:    NewStyles(DefaultTheme),
		state:     stateFolders,
		filter:    filter,
	}
}

// Run starts the browser and blocks until the user quits.
func Run(database *db.DB, cfg *config.Config, tc telemetry.Client) error {
	p := tea.NewProgram(NewModel(database, cfg, tc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init kicks off the initial folder load.
func (m Model) Init() tea.Cmd {
	return m.loadFolders()
}

// loadFolders merges registered users and sticker folders into one list, so
// empty user folders and orphan sticker folders both show up.
func (m Model) loadFolders() tea.Cmd {
	return func() tea.Msg {
		users, err := m.db.ListUsers()
		if err != nil {
			return foldersLoadedMsg{err: err}
		}

		byName := make(map[string]*folderItem)
		order := make([]string, 0, len(users))
		for _, u := range users {
			byName[u.FolderName] = &folderItem{Name: u.FolderName, Owner: u.DisplayName}
			order = append(order, u.FolderName)
		}

		stickerFolders, err := m.db.ListStickerFolders()
		if err != nil {
			return foldersLoadedMsg{err: err}
		}
		for _, name := range stickerFolders {
			if _, ok := byName[name]; !ok {
				byName[name] = &folderItem{Name: name}
				order = append(order, name)
			}
		}
		sort.Strings(order)

		folders := make([]folderItem, 0, len(order))
		for _, name := range order {
			item := byName[name]
			item.Count, _ = m.db.CountStickersByFolder(name)
			folders = append(folders, *item)
		}

		return foldersLoadedMsg{folders: folders}
	}
}

// loadStickers loads a folder's stickers in insertion order.
func (m Model) loadStickers(folder string) tea.Cmd {
	return func() tea.Msg {
		stickers, err := m.db.ListStickersByFolder(folder)
		return stickersLoadedMsg{folder: folder, stickers: stickers, err: err}
	}
}

// Update handles messages and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case foldersLoadedMsg:
		m.err = msg.err
		m.folders = msg.folders
		if m.folderIdx >= len(m.folders) {
			m.folderIdx = 0
		}
		return m, nil

	case stickersLoadedMsg:
		m.err = msg.err
		m.folder = msg.folder
		m.stickers = msg.stickers
		m.stickerIdx = 0
		m.applyFilter()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Filter input swallows everything except its own control keys
	if m.filtering {
		switch msg.String() {
		case "enter", "esc":
			m.filtering = false
			m.filter.Blur()
			if msg.String() == "esc" {
				m.filter.SetValue("")
			}
			m.applyFilter()
			if m.telemetry != nil && m.filter.Value() != "" {
				m.telemetry.TrackSearchPerformed(m.filter.Value(), len(m.filtered), false)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.moveCursor(-1)
		return m, nil

	case "down", "j":
		m.moveCursor(1)
		return m, nil

	case "enter":
		return m.enter()

	case "esc":
		return m.back()

	case "/":
		if m.state == stateStickers {
			m.filtering = true
			m.filter.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case "c":
		m.copySelection()
		return m, nil
	}

	return m, nil
}

// moveCursor shifts the selection in the active list.
func (m *Model) moveCursor(delta int) {
	switch m.state {
	case stateFolders:
		m.folderIdx = clamp(m.folderIdx+delta, len(m.folders))
	case stateStickers:
		m.stickerIdx = clamp(m.stickerIdx+delta, len(m.filtered))
	}
}

func clamp(idx, length int) int {
	if length == 0 {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx >= length {
		return length - 1
	}
	return idx
}

// enter descends one level: folder list -> sticker list -> detail.
func (m Model) enter() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateFolders:
		if len(m.folders) == 0 {
			return m, nil
		}
		previous := m.state
		m.state = stateStickers
		m.status = ""
		m.trackNavigation(previous)
		return m, m.loadStickers(m.folders[m.folderIdx].Name)

	case stateStickers:
		if len(m.filtered) == 0 {
			return m, nil
		}
		previous := m.state
		m.state = stateDetail
		m.status = ""
		m.trackNavigation(previous)
		if m.telemetry != nil {
			s := m.filtered[m.stickerIdx]
			m.telemetry.TrackStickerPreviewed(s.FolderName, s.Animated)
		}
	}
	return m, nil
}

// back ascends one level; from the folder list it quits.
func (m Model) back() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateDetail:
		m.state = stateStickers
	case stateStickers:
		m.state = stateFolders
		m.filter.SetValue("")
		m.filtering = false
	case stateFolders:
		return m, tea.Quit
	}
	m.status = ""
	return m, nil
}

func (m *Model) trackNavigation(previous state) {
	if m.telemetry != nil {
		m.telemetry.TrackViewNavigated(m.state.String(), previous.String())
	}
}

// copySelection puts the selected sticker's URL on the clipboard.
func (m *Model) copySelection() {
	if m.state == stateFolders || len(m.filtered) == 0 {
		return
	}
	s := m.filtered[m.stickerIdx]
	if err := clipboard.WriteAll(s.URL); err != nil {
		m.status = "clipboard unavailable"
		return
	}
	m.status = fmt.Sprintf("copied %s", s.URL)
	if m.telemetry != nil {
		m.telemetry.TrackStickerCopied(s.FolderName, s.EmoteName, "url")
	}
}

// applyFilter narrows the sticker list by emote name or tag substring.
func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		m.filtered = m.stickers
	} else {
		m.filtered = nil
		for _, s := range m.stickers {
			if stickerMatches(&s, query) {
				m.filtered = append(m.filtered, s)
			}
		}
	}
	m.stickerIdx = clamp(m.stickerIdx, len(m.filtered))
}

// stickerMatches reports whether a sticker's name or any tag contains the
// lowercase query.
func stickerMatches(s *models.Sticker, query string) bool {
	if strings.Contains(strings.ToLower(s.EmoteName), query) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// View renders the active state.
func (m Model) View() string {
	var b strings.Builder

	switch m.state {
	case stateFolders:
		b.WriteString(m.viewFolders())
	case stateStickers:
		b.WriteString(m.viewStickers())
	case stateDetail:
		b.WriteString(m.viewDetail())
	}

	if m.err != nil {
		b.WriteString("\n" + m.styles.Error.Render(m.err.Error()))
	}
	if m.status != "" {
		b.WriteString("\n" + m.styles.Muted.Render(m.status))
	}
	b.WriteString("\n" + m.styles.Footer.Render(m.footer()))

	return b.String()
}

func (m Model) viewFolders() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("stickerdex — folders"))
	b.WriteString("\n\n")

	if len(m.folders) == 0 {
		b.WriteString(m.styles.Muted.Render("  The catalog is empty. Add stickers with the CLI."))
		return b.String()
	}

	for i, f := range m.folders {
		label := f.Name
		if f.Owner != "" {
			label = fmt.Sprintf("%s (%s)", f.Name, f.Owner)
		}
		line := fmt.Sprintf("%s — %d stickers", label, f.Count)
		if i == m.folderIdx {
			b.WriteString(m.styles.ItemSelected.Render(line))
		} else {
			b.WriteString(m.styles.Item.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewStickers() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("stickerdex — " + m.folder))
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString("  " + m.filter.View() + "\n")
	}
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString(m.styles.Muted.Render("  No stickers here."))
		return b.String()
	}

	for i, s := range m.filtered {
		line := s.EmoteName
		if s.Animated {
			line += " ▶"
		}
		if len(s.Tags) > 0 {
			line += "  " + m.styles.Tag.Render(strings.Join(s.TagList(), ", "))
		}
		if i == m.stickerIdx {
			b.WriteString(m.styles.ItemSelected.Render(line))
		} else {
			b.WriteString(m.styles.Item.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewDetail() string {
	if len(m.filtered) == 0 {
		return m.styles.Muted.Render("Nothing selected.")
	}
	s := m.filtered[m.stickerIdx]

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("stickerdex — " + s.FolderName + "/" + s.EmoteName))
	b.WriteString("\n")

	var body strings.Builder
	bodyRow := func(label, value string) {
		if value == "" {
			return
		}
		body.WriteString(m.styles.DetailLabel.Render(label) + value + "\n")
	}

	bodyRow("emote", s.EmoteName)
	bodyRow("7tv id", s.SevenTVID)
	bodyRow("file", s.FileName)
	bodyRow("url", s.URL)
	bodyRow("owner", s.OwnerName)
	bodyRow("tags", strings.Join(s.TagList(), ", "))
	bodyRow("animated", fmt.Sprintf("%v", s.Animated))
	bodyRow("added", s.CreatedAt.Format("2006-01-02 15:04"))

	b.WriteString(m.styles.Detail.Render(body.String()))
	return b.String()
}

// footer lists the key bindings for the active state.
func (m Model) footer() string {
	switch m.state {
	case stateFolders:
		return "↑/↓ move · enter open · q quit"
	case stateStickers:
		return "↑/↓ move · enter detail · / filter · c copy url · esc back"
	case stateDetail:
		return "c copy url · esc back · q quit"
	}
	return ""
}
