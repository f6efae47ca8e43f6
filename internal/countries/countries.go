package countries

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var ErrUnknownCountry = errors.New("unknown country")

type Country struct {
	DialCode string
	ISO      string
	Name     string
}

// List is the dialing-code table offered by the enrollment form, sorted by
// name. The API expects the ISO code, not the dial code.
var List = []Country{
	{"+27", "ZA", "Afrique du Sud"},
	{"+213", "DZ", "Algérie"},
	{"+49", "DE", "Allemagne"},
	{"+244", "AO", "Angola"},
	{"+32", "BE", "Belgique"},
	{"+229", "BJ", "Bénin"},
	{"+267", "BW", "Botswana"},
	{"+226", "BF", "Burkina Faso"},
	{"+257", "BI", "Burundi"},
	{"+237", "CM", "Cameroun"},
	{"+1", "CA", "Canada"},
	{"+238", "CV", "Cap-Vert"},
	{"+86", "CN", "Chine"},
	{"+269", "KM", "Comores"},
	{"+225", "CI", "Côte d'Ivoire"},
	{"+253", "DJ", "Djibouti"},
	{"+20", "EG", "Égypte"},
	{"+34", "ES", "Espagne"},
	{"+1", "US", "États-Unis"},
	{"+251", "ET", "Éthiopie"},
	{"+33", "FR", "France"},
	{"+241", "GA", "Gabon"},
	{"+220", "GM", "Gambie"},
	{"+233", "GH", "Ghana"},
	{"+224", "GN", "Guinée"},
	{"+245", "GW", "Guinée-Bissau"},
	{"+240", "GQ", "Guinée équatoriale"},
	{"+91", "IN", "Inde"},
	{"+39", "IT", "Italie"},
	{"+254", "KE", "Kenya"},
	{"+266", "LS", "Lesotho"},
	{"+231", "LR", "Libéria"},
	{"+218", "LY", "Libye"},
	{"+352", "LU", "Luxembourg"},
	{"+261", "MG", "Madagascar"},
	{"+265", "MW", "Malawi"},
	{"+223", "ML", "Mali"},
	{"+212", "MA", "Maroc"},
	{"+230", "MU", "Maurice"},
	{"+222", "MR", "Mauritanie"},
	{"+258", "MZ", "Mozambique"},
	{"+264", "NA", "Namibie"},
	{"+227", "NE", "Niger"},
	{"+234", "NG", "Nigeria"},
	{"+256", "UG", "Ouganda"},
	{"+31", "NL", "Pays-Bas"},
	{"+351", "PT", "Portugal"},
	{"+242", "CG", "République du Congo"},
	{"+243", "CD", "République démocratique du Congo"},
	{"+236", "CF", "République centrafricaine"},
	{"+262", "RE", "Réunion"},
	{"+44", "GB", "Royaume-Uni"},
	{"+250", "RW", "Rwanda"},
	{"+239", "ST", "São Tomé-et-Príncipe"},
	{"+221", "SN", "Sénégal"},
	{"+248", "SC", "Seychelles"},
	{"+232", "SL", "Sierra Leone"},
	{"+252", "SO", "Somalie"},
	{"+249", "SD", "Soudan"},
	{"+46", "SE", "Suède"},
	{"+41", "CH", "Suisse"},
	{"+255", "TZ", "Tanzanie"},
	{"+235", "TD", "Tchad"},
	{"+228", "TG", "Togo"},
	{"+216", "TN", "Tunisie"},
	{"+260", "ZM", "Zambie"},
	{"+263", "ZW", "Zimbabwe"},
}

// Resolve maps user input (an ISO code, a country name or a dialing code)
// to the table entry. Dial codes shared by several countries (+1) resolve to
// the first entry, so ISO or name input is preferred by the forms.
func Resolve(input string) (Country, error) {

	needle := strings.TrimSpace(input)
	if needle == "" {
		return Country{}, ErrUnknownCountry
	}

	if country, found := lo.Find(List, func(c Country) bool {
		return strings.EqualFold(c.ISO, needle)
	}); found {
		return country, nil
	}

	if country, found := lo.Find(List, func(c Country) bool {
		return strings.EqualFold(c.Name, needle)
	}); found {
		return country, nil
	}

	if country, found := lo.Find(List, func(c Country) bool {
		return c.DialCode == needle
	}); found {
		return country, nil
	}

	return Country{}, errors.Wrap(ErrUnknownCountry, needle)
}
