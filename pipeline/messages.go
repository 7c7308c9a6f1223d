package pipeline

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/safeshift-health/safeshift-api/schema"
	"github.com/safeshift-health/safeshift-api/utils"
)

const defaultLang = "en"

// fallbackExplanation builds the non-AI explanation attached to a shift
// when the insight service is unavailable. Localized when a message for
// the language exists, with a hardcoded English last resort.
func fallbackExplanation(index int, zone schema.Zone) string {
	loc := utils.NewLocalizer(defaultLang)

	if text, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "fallback.explanation",
		TemplateData: map[string]interface{}{
			"Index": index,
			"Zone":  zoneName(loc, zone),
		},
	}); err == nil {
		return text
	}

	return fmt.Sprintf("Risk index %d (%s zone). Please prioritize rest.", index, zone)
}

func fallbackTips() string {
	loc := utils.NewLocalizer(defaultLang)

	if text, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: "fallback.tips",
	}); err == nil {
		return text
	}

	return "Rest and recover. Stay hydrated. Reach out for support."
}

func zoneName(loc *i18n.Localizer, zone schema.Zone) string {
	if name, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID: fmt.Sprintf("zones.%s.name", zone),
	}); err == nil {
		return name
	}
	return string(zone)
}
