package amount

import (
	"fmt"

	"golang.org/x/text/language"
)

// Languages whose common locales write the decimal point as a comma.
var commaLanguages = map[string]bool{
	"ca": true, "da": true, "de": true, "es": true, "fi": true, "fr": true,
	"id": true, "it": true, "nb": true, "nl": true, "pl": true, "pt": true,
	"ro": true, "ru": true, "sv": true, "tr": true, "uk": true,
}

// Regions that use the point even though their language usually does not.
var pointRegions = map[string]bool{
	"MX": true, "US": true, "PR": true, "CH": true, "LI": true,
}

// CommaDecimalForLocale reports whether a BCP 47 locale ("es-ES", "en-US",
// "de") formats amounts with a decimal comma.
func CommaDecimalForLocale(locale string) (bool, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return false, fmt.Errorf("parsing locale %q: %w", locale, err)
	}
	base, _ := tag.Base()
	if !commaLanguages[base.String()] {
		return false, nil
	}
	if region, conf := tag.Region(); conf == language.Exact && pointRegions[region.String()] {
		return false, nil
	}
	return true, nil
}
