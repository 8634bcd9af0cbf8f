package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/viewkit/internal/breakpoint"
)

// Customer is the account holder shown by Account.
type Customer struct {
	ID         string `yaml:"id"`
	Email      string `yaml:"email"`
	Locale     string `yaml:"locale"`
	Country    string `yaml:"country"`
	Currency   string `yaml:"currency"`
	LastUserIP string `yaml:"last_user_ip"`
}

// EmailValues is submitted when the email form is confirmed.
type EmailValues struct {
	Email string
}

// InfoValues is submitted when the info form is confirmed.
type InfoValues struct {
	Locale   string
	Country  string
	Currency string
}

// AccountCallbacks are invoked on user actions. Nil callbacks are skipped.
type AccountCallbacks struct {
	OnUpdateEmailSubmit  func(EmailValues)
	OnUpdateInfoSubmit   func(InfoValues)
	OnDeleteAccountClick func()
}

type accountMode int

const (
	modeView accountMode = iota
	modeEditEmail
	modeEditInfo
	modeConfirmDelete
)

// AccountKeyMap holds the Account key bindings.
type AccountKeyMap struct {
	EditEmail key.Binding
	EditInfo  key.Binding
	Delete    key.Binding
	Confirm   key.Binding
	Deny      key.Binding
	Submit    key.Binding
	Next      key.Binding
	Cancel    key.Binding
}

// DefaultAccountKeyMap returns the stock Account bindings.
func DefaultAccountKeyMap() AccountKeyMap {
	return AccountKeyMap{
		EditEmail: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit email")),
		EditInfo:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "edit info")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete account")),
		Confirm:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Deny:      key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "keep account")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Next:      key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

var emailValidator = validator.New(validator.WithRequiredStructEnabled())

// Account renders a customer's details and handles the email, info and
// delete flows.
type Account struct {
	customer   Customer
	overrideIP string
	callbacks  AccountCallbacks
	theme      Theme
	keys       AccountKeyMap

	bp    breakpoint.Breakpoint
	width int
	mode  accountMode
	err   string

	email textinput.Model
	info  []textinput.Model
	focus int
}

// NewAccount creates an Account for customer.
func NewAccount(customer Customer, callbacks AccountCallbacks, theme Theme) *Account {
	a := &Account{
		customer:  customer,
		callbacks: callbacks,
		theme:     theme,
		keys:      DefaultAccountKeyMap(),
		bp:        breakpoint.XS,
	}

	a.email = newInput("name@example.com")
	a.info = []textinput.Model{
		newInput("locale"),
		newInput("country"),
		newInput("currency"),
	}
	return a
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	in.CharLimit = 254
	return in
}

// Customer returns the displayed customer.
func (a *Account) Customer() Customer {
	return a.customer
}

// SetCustomer replaces the displayed customer.
func (a *Account) SetCustomer(c Customer) {
	a.customer = c
}

// SetOverrideIP shows ip as the session's override address. Empty hides it.
func (a *Account) SetOverrideIP(ip string) {
	a.overrideIP = ip
}

// SetBreakpoint selects the layout: stacked for xs and sm, two columns above.
func (a *Account) SetBreakpoint(bp breakpoint.Breakpoint) {
	a.bp = bp
}

// SetWidth sets the outer width the component renders into.
func (a *Account) SetWidth(width int) {
	a.width = width
}

// Editing reports whether a form or confirmation prompt has the keyboard.
func (a *Account) Editing() bool {
	return a.mode != modeView
}

// Columns returns the number of detail columns for the current breakpoint.
func (a *Account) Columns() int {
	if a.bp >= breakpoint.MD {
		return 2
	}
	return 1
}

// ShortHelp returns the bindings active in the current mode.
func (a *Account) ShortHelp() []key.Binding {
	switch a.mode {
	case modeEditEmail:
		return []key.Binding{a.keys.Submit, a.keys.Cancel}
	case modeEditInfo:
		return []key.Binding{a.keys.Next, a.keys.Submit, a.keys.Cancel}
	case modeConfirmDelete:
		return []key.Binding{a.keys.Confirm, a.keys.Deny}
	default:
		return []key.Binding{a.keys.EditEmail, a.keys.EditInfo, a.keys.Delete}
	}
}

// Update handles key input for the current mode.
func (a *Account) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a.updateInputs(msg)
	}

	switch a.mode {
	case modeView:
		return a.handleViewKey(keyMsg)
	case modeEditEmail:
		return a.handleEmailKey(keyMsg)
	case modeEditInfo:
		return a.handleInfoKey(keyMsg)
	case modeConfirmDelete:
		a.handleConfirmKey(keyMsg)
	}
	return nil
}

func (a *Account) handleViewKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.EditEmail):
		a.mode = modeEditEmail
		a.err = ""
		a.email.SetValue(a.customer.Email)
		return a.email.Focus()
	case key.Matches(msg, a.keys.EditInfo):
		a.mode = modeEditInfo
		a.err = ""
		a.info[0].SetValue(a.customer.Locale)
		a.info[1].SetValue(a.customer.Country)
		a.info[2].SetValue(a.customer.Currency)
		return a.focusInfo(0)
	case key.Matches(msg, a.keys.Delete):
		a.mode = modeConfirmDelete
	}
	return nil
}

func (a *Account) handleEmailKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.reset()
		return nil
	case key.Matches(msg, a.keys.Submit):
		value := strings.TrimSpace(a.email.Value())
		if err := emailValidator.Var(value, "required,email"); err != nil {
			a.err = "enter a valid email address"
			return nil
		}
		a.customer.Email = value
		a.reset()
		if a.callbacks.OnUpdateEmailSubmit != nil {
			a.callbacks.OnUpdateEmailSubmit(EmailValues{Email: value})
		}
		return nil
	}

	var cmd tea.Cmd
	a.email, cmd = a.email.Update(msg)
	return cmd
}

func (a *Account) handleInfoKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.reset()
		return nil
	case key.Matches(msg, a.keys.Next):
		step := 1
		if msg.String() == "shift+tab" {
			step = len(a.info) - 1
		}
		return a.focusInfo((a.focus + step) % len(a.info))
	case key.Matches(msg, a.keys.Submit):
		values := InfoValues{
			Locale:   strings.TrimSpace(a.info[0].Value()),
			Country:  strings.TrimSpace(a.info[1].Value()),
			Currency: strings.TrimSpace(a.info[2].Value()),
		}
		a.customer.Locale = values.Locale
		a.customer.Country = values.Country
		a.customer.Currency = values.Currency
		a.reset()
		if a.callbacks.OnUpdateInfoSubmit != nil {
			a.callbacks.OnUpdateInfoSubmit(values)
		}
		return nil
	}

	var cmd tea.Cmd
	a.info[a.focus], cmd = a.info[a.focus].Update(msg)
	return cmd
}

func (a *Account) handleConfirmKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, a.keys.Confirm):
		a.reset()
		if a.callbacks.OnDeleteAccountClick != nil {
			a.callbacks.OnDeleteAccountClick()
		}
	case key.Matches(msg, a.keys.Deny):
		a.reset()
	}
}

func (a *Account) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.mode {
	case modeEditEmail:
		a.email, cmd = a.email.Update(msg)
	case modeEditInfo:
		a.info[a.focus], cmd = a.info[a.focus].Update(msg)
	}
	return cmd
}

func (a *Account) focusInfo(i int) tea.Cmd {
	a.focus = i
	var cmd tea.Cmd
	for idx := range a.info {
		if idx == i {
			cmd = a.info[idx].Focus()
			continue
		}
		a.info[idx].Blur()
	}
	return cmd
}

func (a *Account) reset() {
	a.mode = modeView
	a.err = ""
	a.focus = 0
	a.email.Blur()
	for i := range a.info {
		a.info[i].Blur()
	}
}

// View renders the component for the current mode.
func (a *Account) View() string {
	switch a.mode {
	case modeEditEmail:
		return a.renderForm("Update email", []string{"Email"}, []textinput.Model{a.email})
	case modeEditInfo:
		return a.renderForm("Update info", []string{"Locale", "Country", "Currency"}, a.info)
	case modeConfirmDelete:
		return a.renderConfirm()
	}

	data := CardData{
		Title: "Account",
		Icon:  "👤",
		Rows: []Row{
			{Label: "ID", Value: a.customer.ID},
			{Label: "Email", Value: a.customer.Email},
			{Label: "Last user IP", Value: a.customer.LastUserIP},
			{Label: "Locale", Value: a.customer.Locale},
			{Label: "Country", Value: a.customer.Country},
			{Label: "Currency", Value: a.customer.Currency},
		},
	}
	if a.overrideIP != "" {
		data.Footer = "Override IP: " + a.overrideIP
	}
	return NewCard(data, a.theme).WithWidth(a.width).WithColumns(a.Columns()).View()
}

func (a *Account) renderForm(title string, labels []string, inputs []textinput.Model) string {
	labelStyle := lipgloss.NewStyle().Foreground(a.theme.Muted)
	focused := lipgloss.NewStyle().Foreground(a.theme.Accent)

	rows := make([]string, 0, len(inputs)+2)
	for i, in := range inputs {
		style := labelStyle
		if in.Focused() {
			style = focused
		}
		rows = append(rows, style.Render(labels[i]+":")+" "+in.View())
	}
	if a.err != "" {
		rows = append(rows, "", lipgloss.NewStyle().Foreground(a.theme.Danger).Render(a.err))
	}

	return a.box(title, strings.Join(rows, "\n"))
}

func (a *Account) renderConfirm() string {
	body := lipgloss.NewStyle().Foreground(a.theme.Danger).Render(
		"Delete account " + a.customer.ID + "? (y/n)")
	return a.box("Delete account", body)
}

func (a *Account) box(title, body string) string {
	style := DefaultCardStyle(a.theme)
	content := style.TitleStyle.Render(title) + "\n\n" + body
	border := style.BorderStyle.Padding(0, style.Padding)
	if a.width > 0 {
		border = border.Width(a.width - horizontalBorderWidth(border))
	}
	return border.Render(content)
}
