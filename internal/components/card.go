package components

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// CardStyle defines the visual appearance of a Card.
type CardStyle struct {
	// BorderStyle applies to the card's outer border
	BorderStyle lipgloss.Style
	// TitleStyle applies to the title line
	TitleStyle lipgloss.Style
	// LabelStyle applies to row labels
	LabelStyle lipgloss.Style
	// ValueStyle applies to row values
	ValueStyle lipgloss.Style
	// FooterStyle applies to the footer line
	FooterStyle lipgloss.Style
	// Width is the outer width of the card; 0 sizes to content
	Width int
	// Padding is the horizontal space inside the border
	Padding int
}

// DefaultCardStyle returns the card style derived from theme.
func DefaultCardStyle(theme Theme) CardStyle {
	return CardStyle{
		BorderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
		TitleStyle:  lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		LabelStyle:  lipgloss.NewStyle().Foreground(theme.Muted),
		ValueStyle:  lipgloss.NewStyle(),
		FooterStyle: lipgloss.NewStyle().Foreground(theme.Muted).Italic(true),
		Padding:     1,
	}
}

// Row is a labelled value inside a card.
type Row struct {
	Label string
	Value string
}

// CardData is the content of a card.
type CardData struct {
	Title  string
	Icon   string
	Rows   []Row
	Footer string
}

// Card renders CardData inside a bordered box, in one or two columns.
type Card struct {
	data    CardData
	style   CardStyle
	columns int
}

// NewCard creates a single-column card with the default style.
func NewCard(data CardData, theme Theme) *Card {
	return &Card{data: data, style: DefaultCardStyle(theme), columns: 1}
}

// WithStyle replaces the card style.
func (c *Card) WithStyle(style CardStyle) *Card {
	c.style = style
	return c
}

// WithWidth sets the outer card width.
func (c *Card) WithWidth(width int) *Card {
	c.style.Width = width
	return c
}

// WithColumns lays rows out in n columns (1 or 2).
func (c *Card) WithColumns(n int) *Card {
	if n < 1 {
		n = 1
	}
	if n > 2 {
		n = 2
	}
	c.columns = n
	return c
}

// Columns returns the number of row columns.
func (c *Card) Columns() int {
	return c.columns
}

// View renders the card.
func (c *Card) View() string {
	var sections []string

	if c.data.Title != "" {
		title := c.data.Title
		if c.data.Icon != "" {
			title = c.data.Icon + " " + title
		}
		sections = append(sections, c.style.TitleStyle.Render(title), "")
	}

	if len(c.data.Rows) > 0 {
		sections = append(sections, c.renderRows())
	}

	if c.data.Footer != "" {
		sections = append(sections, "", c.style.FooterStyle.Render(c.wrapText(c.data.Footer, c.innerWidth())))
	}

	border := c.style.BorderStyle.Padding(0, c.style.Padding)
	if c.style.Width > 0 {
		border = border.Width(c.style.Width - horizontalBorderWidth(border))
	}
	return border.Render(strings.Join(sections, "\n"))
}

func (c *Card) renderRows() string {
	if c.columns == 1 || len(c.data.Rows) < 2 {
		return c.renderColumn(c.data.Rows, c.innerWidth())
	}

	split := (len(c.data.Rows) + 1) / 2
	inner := c.innerWidth()
	colWidth := 0
	if inner > 0 {
		colWidth = (inner - 2) / 2
	}
	left := c.renderColumn(c.data.Rows[:split], colWidth)
	right := c.renderColumn(c.data.Rows[split:], colWidth)
	gap := lipgloss.NewStyle().Width(2).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}

func (c *Card) renderColumn(rows []Row, width int) string {
	labelWidth := 0
	for _, row := range rows {
		if w := utf8.RuneCountInString(row.Label); w > labelWidth {
			labelWidth = w
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		label := c.style.LabelStyle.Render(fmt.Sprintf("%-*s", labelWidth+1, row.Label+":"))
		valueWidth := 0
		if width > 0 {
			valueWidth = width - labelWidth - 2
		}
		value := c.style.ValueStyle.Render(c.wrapText(row.Value, valueWidth))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, label, " ", value))
	}

	col := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if width > 0 {
		col = lipgloss.NewStyle().Width(width).Render(col)
	}
	return col
}

func (c *Card) innerWidth() int {
	if c.style.Width <= 0 {
		return 0
	}
	inner := c.style.Width - c.style.Padding*2 - horizontalBorderWidth(c.style.BorderStyle)
	if inner < 0 {
		return 0
	}
	return inner
}

// wrapText wraps text to maxWidth runes, breaking words longer than a line.
func (c *Card) wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	current := ""
	for _, word := range words {
		if utf8.RuneCountInString(word) > maxWidth {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			runes := []rune(word)
			for len(runes) > maxWidth {
				lines = append(lines, string(runes[:maxWidth]))
				runes = runes[maxWidth:]
			}
			current = string(runes)
			continue
		}

		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if utf8.RuneCountInString(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return strings.Join(lines, "\n")
}

func horizontalBorderWidth(style lipgloss.Style) int {
	width := style.GetBorderLeftSize() + style.GetBorderRightSize()
	if width < 0 {
		return 0
	}
	return width
}
