// Package dashboard projects the service graph into the homepage
// dashboard's configuration files. Like the manifest projection it is
// pure: the same graph and host address always produce byte-identical
// documents.
package dashboard

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/UpstateNate/AstroMediaServer/internal/catalog"
	"github.com/UpstateNate/AstroMediaServer/internal/model"
)

// File names emitted under the homepage config directory.
const (
	ServicesFile  = "services.yaml"
	SettingsFile  = "settings.yaml"
	WidgetsFile   = "widgets.yaml"
	BookmarksFile = "bookmarks.yaml"
	DockerFile    = "docker.yaml"
)

// categoryOrder fixes the on-page grouping order.
var categoryOrder = []catalog.Category{
	catalog.CategoryMedia,
	catalog.CategoryManagement,
	catalog.CategoryDownloads,
	catalog.CategoryRequests,
	catalog.CategorySystem,
}

type link struct {
	Icon        string `yaml:"icon"`
	Href        string `yaml:"href"`
	Description string `yaml:"description"`
	Container   string `yaml:"container"`
	Server      string `yaml:"server"`
}

// Render produces every homepage config document for the graph, keyed
// by file name.
func Render(g *model.Graph, host string) (map[string][]byte, error) {
	files := map[string]any{
		ServicesFile:  buildServices(g, host),
		SettingsFile:  buildSettings(),
		WidgetsFile:   buildWidgets(),
		BookmarksFile: []any{},
		DockerFile:    map[string]any{"my-docker": map[string]string{"socket": "/var/run/docker.sock"}},
	}

	out := make(map[string][]byte, len(files))
	for name, doc := range files {
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}
		out[name] = data
	}
	return out, nil
}

// buildServices groups every linkable service into its category.
// Services without a web UI and the dashboard itself are left out, and
// a category with no members is omitted entirely.
func buildServices(g *model.Graph, host string) []map[string][]map[string]link {
	byCategory := make(map[catalog.Category][]map[string]link)

	for _, spec := range g.Services() {
		entry, ok := catalog.Get(spec.Name)
		if !ok || entry.WebPort() == 0 {
			continue
		}
		if spec.Name == model.Homepage || spec.Name == model.Heimdall {
			continue
		}

		byCategory[entry.Category] = append(byCategory[entry.Category], map[string]link{
			entry.Title: {
				Icon:        entry.Icon,
				Href:        fmt.Sprintf("http://%s:%d", host, entry.WebPort()),
				Description: entry.Description,
				Container:   string(spec.Name),
				Server:      "my-docker",
			},
		})
	}

	var services []map[string][]map[string]link
	for _, cat := range categoryOrder {
		if links := byCategory[cat]; len(links) > 0 {
			services = append(services, map[string][]map[string]link{string(cat): links})
		}
	}
	return services
}

func buildSettings() map[string]any {
	layout := make(map[string]any)
	columns := map[catalog.Category]int{
		catalog.CategoryMedia:      3,
		catalog.CategoryManagement: 4,
		catalog.CategoryDownloads:  2,
		catalog.CategoryRequests:   2,
		catalog.CategorySystem:     2,
	}
	for cat, cols := range columns {
		layout[string(cat)] = map[string]any{"style": "row", "columns": cols}
	}

	return map[string]any{
		"title":       "AstroMediaServer",
		"theme":       "dark",
		"color":       "slate",
		"headerStyle": "boxed",
		"layout":      layout,
	}
}

func buildWidgets() []map[string]any {
	return []map[string]any{
		{"resources": map[string]any{"cpu": true, "memory": true, "disk": "/"}},
		{"datetime": map[string]any{
			"text_size": "xl",
			"format":    map[string]string{"dateStyle": "long", "timeStyle": "short"},
		}},
	}
}
