// Package header renders the two-line top bar: shop identity on the first
// line, list tabs on the second.
package header

import (
	"fmt"
	"strings"

	"github.com/maiconbre/barbershop/client"
	"github.com/maiconbre/barbershop/msg"
	"github.com/maiconbre/barbershop/style"
	"github.com/maiconbre/barbershop/ui/common"
)

// Height is the number of lines View returns.
const Height = 2

// Model holds the state for the header.
type Model struct {
	shopName string
	tenant   string
	version  string
	checked  bool
	healthy  bool

	barbers  int
	services int

	tabs   []string
	counts []int
	active int

	width int
}

// New returns a Model for the given tab labels.
func New(tabs ...string) Model {
	return Model{
		tabs:   tabs,
		counts: make([]int, len(tabs)),
	}
}

// SetHealth applies a health-check result: the backend version and whether
// it reported itself healthy.
func (m *Model) SetHealth(h msg.HealthResult) {
	m.checked = true
	m.healthy = h.Err == nil && (h.Status == "ok" || h.Status == "healthy")
	if h.Version != "" {
		m.version = h.Version
	}
}

// SetShop updates the displayed barbershop.
func (m *Model) SetShop(shop *client.Barbershop, tenant string) {
	m.tenant = tenant
	if shop != nil {
		m.shopName = shop.Name
		if shop.ID != "" {
			m.tenant = shop.ID
		}
	}
}

// SetCatalog updates the barber and service counts.
func (m *Model) SetCatalog(barbers, services int) {
	m.barbers = barbers
	m.services = services
}

// SetCount updates the item count shown next to tab i.
func (m *Model) SetCount(i, n int) {
	if i >= 0 && i < len(m.counts) {
		m.counts[i] = n
	}
}

// SetActive marks tab i as selected.
func (m *Model) SetActive(i int) {
	if i >= 0 && i < len(m.tabs) {
		m.active = i
	}
}

// SetWidth updates the terminal width.
func (m *Model) SetWidth(w int) { m.width = w }

// ShopName returns the displayed shop name.
func (m Model) ShopName() string { return m.shopName }

// View returns exactly Height lines.
func (m Model) View() string {
	name := m.shopName
	if name == "" {
		name = "barbershop"
	}
	sep := style.HeaderSeparator.Render(" · ")

	parts := []string{style.Brand("✂ " + name)}
	if m.tenant != "" {
		parts = append(parts, style.HeaderTenant.Render(m.tenant))
	}
	if m.barbers > 0 || m.services > 0 {
		parts = append(parts, style.HeaderCount.Render(
			fmt.Sprintf("%d barbers, %d services", m.barbers, m.services)))
	}
	if m.checked {
		label := "api"
		if m.version != "" {
			label += " " + m.version
		}
		parts = append(parts, common.StatusBadge(label, m.healthy))
	}
	title := common.Truncate(strings.Join(parts, sep), m.width)

	tabs := make([]string, len(m.tabs))
	for i, label := range m.tabs {
		text := fmt.Sprintf("%s (%d)", label, m.counts[i])
		if i == m.active {
			tabs[i] = style.TabActive.Render(text)
		} else {
			tabs[i] = style.TabInactive.Render(text)
		}
	}
	tabLine := common.PadRight(strings.Join(tabs, "   "), m.width)

	return title + "\n" + common.Truncate(tabLine, m.width)
}
