package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/basketeer/basketeer/internal/api"
	"github.com/basketeer/basketeer/internal/cart"
	"github.com/basketeer/basketeer/internal/debounce"
	"github.com/basketeer/basketeer/internal/errors"
	"github.com/basketeer/basketeer/internal/ux"
)

const searchDelay = 300 * time.Millisecond

// productItem adapts a product to the bubbles list
type productItem struct {
	product api.Product
}

func (i productItem) Title() string { return i.product.Name }

func (i productItem) Description() string {
	return fmt.Sprintf("%s · stock %d", ux.Price(i.product.Price), i.product.Stock)
}

func (i productItem) FilterValue() string { return i.product.Name }

type resultsMsg struct {
	products []api.Product
	err      error
}

type statusMsg string

// browseModel is the interactive catalog browser. Keystrokes in the
// search box are coalesced through a debouncer; a superseded in-flight
// fetch is allowed to land and is simply overwritten by the next one.
type browseModel struct {
	client    *api.Client
	cartStore *cart.Store

	search    textinput.Model
	results   list.Model
	debouncer *debounce.Debouncer
	msgs      chan tea.Msg

	status   string
	width    int
	height   int
	quitting bool
}

func newBrowseModel(client *api.Client, cartStore *cart.Store) browseModel {
	search := textinput.New()
	search.Placeholder = "Search products..."
	search.Focus()
	search.CharLimit = 64

	delegate := list.NewDefaultDelegate()
	results := list.New(nil, delegate, 0, 0)
	results.Title = "Products"
	results.SetShowHelp(false)
	results.SetFilteringEnabled(false)

	return browseModel{
		client:    client,
		cartStore: cartStore,
		search:    search,
		results:   results,
		debouncer: debounce.New(searchDelay),
		msgs:      make(chan tea.Msg, 8),
	}
}

// waitForMsg forwards one message from the async channel into the program
func (m browseModel) waitForMsg() tea.Cmd {
	return func() tea.Msg {
		return <-m.msgs
	}
}

// fetch queries the catalog off the UI loop and delivers a resultsMsg
func (m browseModel) fetch(search string) {
	go func() {
		products, err := m.client.Products(context.Background(), api.ProductQuery{
			Search:   search,
			PageSize: 50,
		})
		m.msgs <- resultsMsg{products: products, err: err}
	}()
}

func (m browseModel) Init() tea.Cmd {
	m.fetch("")
	return tea.Batch(textinput.Blink, m.waitForMsg())
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case resultsMsg:
		if msg.err != nil {
			m.status = ux.Error(errors.UserMessage(msg.err))
		} else {
			items := make([]list.Item, len(msg.products))
			for i, p := range msg.products {
				items[i] = productItem{product: p}
			}
			m.results.SetItems(items)
			m.status = ux.Muted(fmt.Sprintf("%d products", len(items)))
		}
		return m, m.waitForMsg()

	case statusMsg:
		m.status = string(msg)
		return m, m.waitForMsg()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.debouncer.Cancel()
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.addSelected()
		case "up", "down":
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}

		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)

		if m.search.Value() != before {
			query := m.search.Value()
			m.debouncer.Do(func() { m.fetch(query) })
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

// addSelected dispatches an add-to-cart for the highlighted product.
// The result lands asynchronously as a status line.
func (m browseModel) addSelected() (tea.Model, tea.Cmd) {
	item, ok := m.results.SelectedItem().(productItem)
	if !ok {
		return m, nil
	}

	go func() {
		if err := m.cartStore.AddItem(context.Background(), item.product.ID, 1); err != nil {
			m.msgs <- statusMsg(ux.Error(errors.UserMessage(err)))
			return
		}
		m.msgs <- statusMsg(ux.Success(fmt.Sprintf(
			"Added %s · cart total %s", item.product.Name, ux.Price(m.cartStore.Total()))))
	}()
	return m, nil
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}

	help := ux.Muted("type to search · ↑/↓ select · enter add to cart · esc quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.search.View(),
		"",
		m.results.View(),
		m.status,
		help,
	)
}

// RunBrowse starts the interactive catalog browser
func RunBrowse(client *api.Client, cartStore *cart.Store) error {
	model := newBrowseModel(client, cartStore)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
