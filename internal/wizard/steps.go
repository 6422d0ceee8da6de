package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/UpstateNate/AstroMediaServer/internal/model"
	"github.com/UpstateNate/AstroMediaServer/internal/ui"
)

func stepWelcome(s *Session) error {
	proceed := true
	err := s.form(huh.NewGroup(
		huh.NewConfirm().
			Title("Welcome to AstroMediaServer").
			Description("This wizard configures your home media server stack:\n" +
				"a media server, the *arr management suite, download\n" +
				"clients, a reverse proxy, and a dashboard.").
			Affirmative("Continue").
			Negative("Exit").
			Value(&proceed),
	))
	if err != nil {
		return err
	}
	if !proceed {
		return ErrCancelled
	}
	return nil
}

func stepMediaServer(s *Session) error {
	return s.form(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Media server").
			Options(
				huh.NewOption("Jellyfin - free & open source", string(model.Jellyfin)),
				huh.NewOption("Plex - popular, requires account", string(model.Plex)),
				huh.NewOption("Emby - media server with plugins", string(model.Emby)),
			).
			Value(&s.Answers.MediaServer),
	))
}

func stepRequestManager(s *Session) error {
	return s.form(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Request manager").
			Description("Lets users request movies and shows.").
			Options(
				huh.NewOption("None", "none"),
				huh.NewOption("Overseerr - pairs with Plex", string(model.Overseerr)),
				huh.NewOption("Jellyseerr - pairs with Jellyfin/Emby", string(model.Jellyseerr)),
			).
			Value(&s.Answers.RequestManager),
	))
}

func stepDownloadMethod(s *Session) error {
	var methods []string
	err := s.form(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Download methods").
			Options(
				huh.NewOption("BitTorrent", "torrents").Selected(true),
				huh.NewOption("Usenet (requires a provider)", "usenet"),
			).
			Value(&methods),
	))
	if err != nil {
		return err
	}
	s.Answers.Torrents = contains(methods, "torrents")
	s.Answers.Usenet = contains(methods, "usenet")
	return nil
}

// stepDownloader only has a real choice to offer when usenet is
// enabled; otherwise it pre-seeds the usenet-family default without
// prompting, but still counts as a completed step.
func stepDownloader(s *Session) error {
	if !s.Answers.Usenet {
		s.Answers.UsenetClient = string(model.SABnzbd)
		return nil
	}
	return s.form(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Usenet downloader").
			Options(
				huh.NewOption("SABnzbd - web-based usenet downloader", string(model.SABnzbd)),
				huh.NewOption("NZBGet - lightweight usenet downloader", string(model.NZBGet)),
			).
			Value(&s.Answers.UsenetClient),
	))
}

func stepGateway(s *Session) error {
	return s.form(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Reverse proxy / gateway").
			Options(
				huh.NewOption("Traefik - auto-discovery via Docker labels", string(model.Traefik)),
				huh.NewOption("Nginx Proxy Manager - GUI-based", string(model.NginxProxyManager)),
			).
			Value(&s.Answers.Gateway),
	))
}

func stepDashboard(s *Session) error {
	return s.form(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Dashboard").
			Options(
				huh.NewOption("Homepage - modern, with service widgets", string(model.Homepage)),
				huh.NewOption("Heimdall - simple application launcher", string(model.Heimdall)),
			).
			Value(&s.Answers.Dashboard),
	))
}

func stepExtras(s *Session) error {
	return s.form(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Additional services").
			Options(
				huh.NewOption("Bazarr - automatic subtitles", string(model.Bazarr)).Selected(true),
				huh.NewOption("Tautulli - media statistics", string(model.Tautulli)),
				huh.NewOption("Portainer - container management", string(model.Portainer)).Selected(true),
			).
			Value(&s.Answers.Extras),
	))
}

// vpnProviders is the gluetun provider menu.
var vpnProviders = []huh.Option[string]{
	huh.NewOption("NordVPN", "nordvpn"),
	huh.NewOption("ExpressVPN", "expressvpn"),
	huh.NewOption("Private Internet Access", "private internet access"),
	huh.NewOption("Surfshark", "surfshark"),
	huh.NewOption("Mullvad", "mullvad"),
	huh.NewOption("ProtonVPN", "protonvpn"),
	huh.NewOption("Windscribe", "windscribe"),
	huh.NewOption("Other OpenVPN provider", "custom"),
}

// stepVPN asks whether to tunnel torrent traffic. Declining, or
// leaving the provider or credentials blank, falls back to no VPN and
// is still a completed step.
func stepVPN(s *Session) error {
	if !s.Answers.Torrents {
		return nil
	}

	var wantVPN bool
	err := s.form(huh.NewGroup(
		huh.NewConfirm().
			Title("Route download traffic through a VPN?").
			Description("Requires a VPN subscription supported by gluetun.").
			Value(&wantVPN),
	))
	if err != nil {
		return err
	}
	if !wantVPN {
		s.Answers.VPNEnabled = false
		return nil
	}

	err = s.form(huh.NewGroup(
		huh.NewSelect[string]().
			Title("VPN provider").
			Options(vpnProviders...).
			Value(&s.Answers.VPNProvider),
		huh.NewInput().
			Title("VPN username").
			Value(&s.Answers.VPNUsername),
		huh.NewInput().
			Title("VPN password").
			EchoMode(huh.EchoModePassword).
			Value(&s.Answers.VPNPassword),
	))
	if err != nil {
		return err
	}

	if s.Answers.VPNProvider == "" || s.Answers.VPNUsername == "" || s.Answers.VPNPassword == "" {
		s.Answers.VPNEnabled = false
		return nil
	}
	s.Answers.VPNEnabled = true
	return nil
}

// transcodingOptions builds the acceleration menu for the hardware
// found on the machine. Empty means no menu is needed.
func transcodingOptions(d DetectionResult) []huh.Option[string] {
	var opts []huh.Option[string]
	if d.NvidiaGPU {
		opts = append(opts, huh.NewOption("NVIDIA GPU (NVENC)", "nvidia"))
	}
	if d.IntelGPU {
		opts = append(opts, huh.NewOption("Intel QuickSync (VAAPI)", "intel"))
	}
	if len(opts) > 0 {
		opts = append(opts, huh.NewOption("Software transcoding", "none"))
	}
	return opts
}

func stepTranscoding(s *Session) error {
	opts := transcodingOptions(s.Detection)
	if len(opts) == 0 {
		fmt.Fprintln(s.out, ui.Hint("No compatible GPU detected; software transcoding will be used."))
		s.Answers.Transcoding = "none"
		return nil
	}
	return s.form(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Hardware transcoding").
			Description("A compatible GPU was detected.").
			Options(opts...).
			Value(&s.Answers.Transcoding),
	))
}

func stepIdentity(s *Session) error {
	return s.form(huh.NewGroup(
		huh.NewInput().
			Title("Timezone").
			Description("IANA zone, e.g. America/New_York").
			Validate(notEmpty("timezone")).
			Value(&s.Answers.Timezone),
		huh.NewInput().
			Title("PUID").
			Description("Numeric user ID that owns the data directories").
			Validate(numeric("PUID")).
			Value(&s.Answers.PUID),
		huh.NewInput().
			Title("PGID").
			Description("Numeric group ID that owns the data directories").
			Validate(numeric("PGID")).
			Value(&s.Answers.PGID),
	))
}

func stepSummary(s *Session) error {
	confirmed := true
	err := s.form(huh.NewGroup(
		huh.NewConfirm().
			Title("Configuration summary").
			Description(Summary(s.Answers)).
			Affirmative("Deploy this configuration").
			Negative("Cancel").
			Value(&confirmed),
	))
	if err != nil {
		return err
	}
	if !confirmed {
		return ErrCancelled
	}
	return nil
}

// Summary renders the human-readable recap shown before confirmation.
func Summary(a Answers) string {
	onOff := func(b bool) string {
		if b {
			return "enabled"
		}
		return "disabled"
	}

	vpn := "disabled"
	if a.VPNEnabled {
		vpn = fmt.Sprintf("enabled (%s)", a.VPNProvider)
	}

	extras := "none"
	if len(a.Extras) > 0 {
		extras = strings.Join(a.Extras, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Media server:    %s\n", a.MediaServer)
	fmt.Fprintf(&b, "Request manager: %s\n", a.RequestManager)
	fmt.Fprintf(&b, "Gateway:         %s\n", a.Gateway)
	fmt.Fprintf(&b, "Dashboard:       %s\n", a.Dashboard)
	fmt.Fprintf(&b, "Torrents:        %s\n", onOff(a.Torrents))
	fmt.Fprintf(&b, "Usenet:          %s", onOff(a.Usenet))
	if a.Usenet {
		fmt.Fprintf(&b, " (%s)", a.UsenetClient)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "VPN:             %s\n", vpn)
	fmt.Fprintf(&b, "Transcoding:     %s\n", a.Transcoding)
	fmt.Fprintf(&b, "Extras:          %s\n", extras)
	fmt.Fprintf(&b, "Timezone:        %s\n", a.Timezone)
	fmt.Fprintf(&b, "PUID/PGID:       %s/%s\n", a.PUID, a.PGID)
	b.WriteString("\nAlways included: Radarr, Sonarr, Lidarr, Readarr, Prowlarr, Watchtower")
	return b.String()
}

func notEmpty(field string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}

func numeric(field string) func(string) error {
	return func(v string) error {
		if _, err := strconv.Atoi(v); err != nil {
			return fmt.Errorf("%s must be a number", field)
		}
		return nil
	}
}

func contains(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}
