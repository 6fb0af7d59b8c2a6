package reports

import (
	"time"

	"wgdesk/internal/imports"

	"github.com/aymerick/raymond"
)

func init() {
	raymond.RegisterHelper("timestamp", func(t time.Time) string {
		return t.Format("2006-01-02 15:04:05")
	})
}

const statusTemplate = `{{#if connected}}Status: connected to {{active}}{{else}}Status: disconnected{{/if}}
`

const tunnelListTemplate = `Configured tunnels:
{{#each tunnels}}  {{#if active}}*{{else}} {{/if}} {{name}}
{{/each}}`

const selectionMenuTemplate = `{{#each tunnels}}  {{index}}) {{name}}
{{/each}}`

const historyTemplate = `Recent imports:
{{#each records}}  {{timestamp CreatedAt}}  {{TunnelName}}  [{{SourceType}}] {{Outcome}}{{#if Detail}} ({{Detail}}){{/if}}
{{/each}}`

// RenderStatus reports the single active tunnel, if any.
func RenderStatus(active string) (string, error) {
	return raymond.Render(statusTemplate, map[string]interface{}{
		"connected": active != "",
		"active":    active,
	})
}

// RenderTunnelList renders the configured tunnel names, flagging the active
// one.
func RenderTunnelList(tunnels []string, active string) (string, error) {
	entries := make([]map[string]interface{}, 0, len(tunnels))

	for _, name := range tunnels {
		entries = append(entries, map[string]interface{}{
			"name":   name,
			"active": name == active && name != "",
		})
	}

	return raymond.Render(tunnelListTemplate, map[string]interface{}{
		"tunnels": entries,
	})
}

// RenderSelectionMenu renders a numbered tunnel menu for interactive
// selection.
func RenderSelectionMenu(tunnels []string) (string, error) {
	entries := make([]map[string]interface{}, 0, len(tunnels))

	for i, name := range tunnels {
		entries = append(entries, map[string]interface{}{
			"index": i + 1,
			"name":  name,
		})
	}

	return raymond.Render(selectionMenuTemplate, map[string]interface{}{
		"tunnels": entries,
	})
}

// RenderHistory renders recent import audit records.
func RenderHistory(records []imports.ImportRecord) (string, error) {
	return raymond.Render(historyTemplate, map[string]interface{}{
		"records": records,
	})
}
