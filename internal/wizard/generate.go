package wizard

import (
	"bytes"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

const configTemplate = `# AstroMediaServer configuration
# Generated by 'astro init'. Edit and re-run 'astro generate' to apply.

media_server: {{ .MediaServer }}
request_manager: {{ .RequestManager }}
gateway: {{ .Gateway }}
dashboard: {{ .Dashboard }}

downloads:
  torrents: {{ if .Torrents }}true{{ else }}false{{ end }}
  usenet: {{ if .Usenet }}true{{ else }}false{{ end }}
{{- if .Usenet }}
  usenet_client: {{ .UsenetClient }}
{{- end }}

{{- if .VPNEnabled }}

vpn:
  enabled: true
  provider: {{ quote .VPNProvider }}
  username: {{ quote .VPNUsername }}
  password: {{ quote .VPNPassword }}
{{- end }}

transcoding: {{ .Transcoding }}
{{- if .Extras }}

extras:
{{- range .Extras }}
  - {{ . }}
{{- end }}
{{- end }}

timezone: {{ quote .Timezone }}
puid: {{ .PUID }}
pgid: {{ .PGID }}

base_dir: /opt/astro
host_address: localhost
`

// GenerateConfig renders the astro.yml content from wizard answers.
func GenerateConfig(answers Answers) (string, error) {
	// Backfill defaults for programmatic callers that skip the wizard.
	defaults := DefaultAnswers()
	if answers.MediaServer == "" {
		answers.MediaServer = defaults.MediaServer
	}
	if answers.RequestManager == "" {
		answers.RequestManager = defaults.RequestManager
	}
	if answers.Gateway == "" {
		answers.Gateway = defaults.Gateway
	}
	if answers.Dashboard == "" {
		answers.Dashboard = defaults.Dashboard
	}
	if answers.UsenetClient == "" {
		answers.UsenetClient = defaults.UsenetClient
	}
	if answers.Transcoding == "" {
		answers.Transcoding = defaults.Transcoding
	}
	if answers.Timezone == "" {
		answers.Timezone = defaults.Timezone
	}
	if answers.PUID == "" {
		answers.PUID = defaults.PUID
	}
	if answers.PGID == "" {
		answers.PGID = defaults.PGID
	}

	tmpl, err := template.New("config").
		Funcs(template.FuncMap{"quote": quoteScalar}).
		Parse(configTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, answers); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// quoteScalar renders a free-form value as a single YAML scalar, so
// characters like ':' or '#' in credentials survive the round trip
// back through the config loader.
func quoteScalar(v string) (string, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
