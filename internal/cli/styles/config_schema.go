package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/webdeck/internal/domain/entity"
)

const envPrefix = "WEBDECK_"

// ConfigSchemaRenderer prints the config keys grouped by section, in the
// order the schema lists them.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

type schemaSection struct {
	name string
	keys []entity.ConfigKeyInfo
}

// sectionsInOrder groups keys by section, keeping first-seen order.
func sectionsInOrder(keys []entity.ConfigKeyInfo) []schemaSection {
	var out []schemaSection
	index := make(map[string]int)
	for _, k := range keys {
		i, ok := index[k.Section]
		if !ok {
			i = len(out)
			index[k.Section] = i
			out = append(out, schemaSection{name: k.Section})
		}
		out[i].keys = append(out[i].keys, k)
	}
	return out
}

// EnvName returns the environment variable that overrides a dotted key.
func EnvName(key string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Render renders keys as one block per section.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	t := r.theme
	if len(keys) == 0 {
		return t.Subtle.Render("No configuration keys found")
	}

	sections := sectionsInOrder(keys)
	width := 0
	for _, k := range keys {
		width = max(width, lipgloss.Width(k.Key))
	}

	accent := lipgloss.NewStyle().Foreground(t.Accent)
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n",
		accent.Render(IconConfig),
		t.Title.Render("webdeck configuration"),
		t.MutedBadge(fmt.Sprintf("%d keys in %d sections", len(keys), len(sections))),
	)

	for _, s := range sections {
		b.WriteString("\n" + t.Highlight.Render(s.name) + "\n")
		for _, k := range s.keys {
			b.WriteString(r.renderKey(k, width))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *ConfigSchemaRenderer) renderKey(k entity.ConfigKeyInfo, width int) string {
	t := r.theme
	name := t.Normal.Bold(true).Render(k.Key + strings.Repeat(" ", width-lipgloss.Width(k.Key)))
	def := lipgloss.NewStyle().Foreground(t.Accent).Render("= " + k.Default)
	indent := strings.Repeat(" ", width+4)

	line := fmt.Sprintf("  %s  %s %s\n", name, t.Subtle.Render(k.Type), def)
	line += indent + t.Subtle.Render(k.Description) + "\n"
	switch {
	case len(k.Values) > 0:
		line += indent + t.Normal.Render("one of: "+strings.Join(k.Values, " | ")) + "\n"
	case k.Range != "":
		line += indent + t.Normal.Render("range: "+k.Range) + "\n"
	}
	line += indent + t.Subtle.Render("env: "+EnvName(k.Key)) + "\n"
	return line
}

// RenderJSON renders keys as indented JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}
	return string(data), nil
}
