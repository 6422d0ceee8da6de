package stack

import (
	"fmt"

	"github.com/UpstateNate/AstroMediaServer/internal/catalog"
	"github.com/UpstateNate/AstroMediaServer/internal/config"
	"github.com/UpstateNate/AstroMediaServer/internal/model"
)

// CheckConfig verifies every enumerated configuration field against
// the catalog's known sets. An empty result means the rules engine can
// run; anything else is a Configuration error.
func CheckConfig(cfg *config.Config) []ValidationError {
	var errs []ValidationError

	checkMember := func(field, value string, allowed []model.ServiceID) {
		if !catalog.Contains(allowed, model.ServiceID(value)) {
			errs = append(errs, ValidationError{
				Field:      field,
				Value:      value,
				Message:    fmt.Sprintf("unknown value %q", value),
				Suggestion: fmt.Sprintf("one of %s", joinIDs(allowed)),
			})
		}
	}

	checkMember("media_server", cfg.MediaServer, catalog.MediaServers())
	checkMember("gateway", cfg.Gateway, catalog.Gateways())
	checkMember("dashboard", cfg.Dashboard, catalog.Dashboards())

	if cfg.RequestManager != config.RequestManagerNone {
		checkMember("request_manager", cfg.RequestManager, catalog.RequestManagers())
	}

	if cfg.Downloads.Usenet {
		checkMember("downloads.usenet_client", cfg.Downloads.UsenetClient, catalog.UsenetClients())
	}

	for i, extra := range cfg.Extras {
		if !catalog.Contains(catalog.Extras(), model.ServiceID(extra)) {
			errs = append(errs, ValidationError{
				Field:      fmt.Sprintf("extras[%d]", i),
				Value:      extra,
				Message:    fmt.Sprintf("unknown value %q", extra),
				Suggestion: fmt.Sprintf("one of %s", joinIDs(catalog.Extras())),
			})
		}
	}

	switch cfg.Transcoding {
	case "", config.TranscodingNone, config.TranscodingNvidia, config.TranscodingIntel:
	default:
		errs = append(errs, ValidationError{
			Field:      "transcoding",
			Value:      cfg.Transcoding,
			Message:    fmt.Sprintf("unknown value %q", cfg.Transcoding),
			Suggestion: "one of none, nvidia, intel",
		})
	}

	if cfg.Timezone == "" {
		errs = append(errs, ValidationError{
			Field:      "timezone",
			Message:    "must not be empty",
			Suggestion: "an IANA zone like America/New_York",
		})
	}

	if cfg.VPN.Enabled && cfg.VPN.Provider == "" {
		errs = append(errs, ValidationError{
			Field:      "vpn.provider",
			Message:    "must be set when vpn is enabled",
			Suggestion: "the gluetun provider name, e.g. mullvad",
		})
	}

	return errs
}

func joinIDs(ids []model.ServiceID) string {
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += string(id)
	}
	return out
}
