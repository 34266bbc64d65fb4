// events.go
// ---------
// Declarative model of the Conversions API event payload. The bridge treats
// records as opaque: fields are validated by the type contract only and are
// never transformed on the way to the wire.
package adsbridge

// EventType enumerates the canonical conversion types accepted by the
// ingestion endpoint.
type EventType string

const (
	EventTypeAddToShoppingCart   EventType = "ADD_TO_SHOPPING_CART"
	EventTypeApplication         EventType = "APPLICATION"
	EventTypeCheckout            EventType = "CHECKOUT"
	EventTypeContact             EventType = "CONTACT"
	EventTypeLead                EventType = "LEAD"
	EventTypeOffAmazonPurchases  EventType = "OFF_AMAZON_PURCHASES"
	EventTypeMobileAppFirstStart EventType = "MOBILE_APP_FIRST_START"
	EventTypePageView            EventType = "PAGE_VIEW"
	EventTypeSearch              EventType = "SEARCH"
	EventTypeSignUp              EventType = "SIGN_UP"
	EventTypeSubscribe           EventType = "SUBSCRIBE"
	EventTypeOther               EventType = "OTHER"
)

// EventActionSource tells Amazon where the conversion originated.
type EventActionSource string

const (
	ActionSourceAndroid EventActionSource = "ANDROID"
	ActionSourceFireTV  EventActionSource = "FIRE_TV"
	ActionSourceIOS     EventActionSource = "IOS"
	ActionSourceOffline EventActionSource = "OFFLINE"
	ActionSourceWebsite EventActionSource = "WEBSITE"
)

// MatchKeyType enumerates the identifier kinds usable for attribution.
// PII-backed kinds (everything except MAID, RAMP_ID and MATCH_ID) must be
// normalized and SHA-256 hashed before transmission; see utils.SmartHash.
type MatchKeyType string

const (
	MatchKeyEmail     MatchKeyType = "EMAIL"
	MatchKeyPhone     MatchKeyType = "PHONE"
	MatchKeyFirstName MatchKeyType = "FIRST_NAME"
	MatchKeyLastName  MatchKeyType = "LAST_NAME"
	MatchKeyAddress   MatchKeyType = "ADDRESS"
	MatchKeyCity      MatchKeyType = "CITY"
	MatchKeyState     MatchKeyType = "STATE"
	MatchKeyPostal    MatchKeyType = "POSTAL"
	MatchKeyMAID      MatchKeyType = "MAID"
	MatchKeyRampID    MatchKeyType = "RAMP_ID"
	MatchKeyMatchID   MatchKeyType = "MATCH_ID"
)

// MatchKey is one typed hashed identifier attached to an event.
type MatchKey struct {
	Type   MatchKeyType `json:"type"`
	Values []string     `json:"values"`
}

// CurrencyCode enumerates the ISO currency codes the endpoint accepts for
// monetary event values.
type CurrencyCode string

const (
	CurrencyAED CurrencyCode = "AED"
	CurrencyAUD CurrencyCode = "AUD"
	CurrencyBRL CurrencyCode = "BRL"
	CurrencyCAD CurrencyCode = "CAD"
	CurrencyCNY CurrencyCode = "CNY"
	CurrencyDKK CurrencyCode = "DKK"
	CurrencyEUR CurrencyCode = "EUR"
	CurrencyGBP CurrencyCode = "GBP"
	CurrencyINR CurrencyCode = "INR"
	CurrencyJPY CurrencyCode = "JPY"
	CurrencyMXN CurrencyCode = "MXN"
	CurrencyNOK CurrencyCode = "NOK"
	CurrencyNZD CurrencyCode = "NZD"
	CurrencySAR CurrencyCode = "SAR"
	CurrencySEK CurrencyCode = "SEK"
	CurrencySGD CurrencyCode = "SGD"
	CurrencyTRY CurrencyCode = "TRY"
	CurrencyUSD CurrencyCode = "USD"
)

// Consent carries the privacy signals attached to an event.
type Consent struct {
	Geo           *GeoConsent    `json:"geo,omitempty"`
	AmazonConsent *AmazonConsent `json:"amazonConsent,omitempty"`
	TCF           string         `json:"tcf,omitempty"`
	GPP           string         `json:"gpp,omitempty"`
}

type GeoConsent struct {
	IPAddress string `json:"ipAddress,omitempty"`
}

// AmazonConsent values are "GRANTED" or "DENIED".
type AmazonConsent struct {
	AdStorage string `json:"amznAdStorage,omitempty"`
	UserData  string `json:"amznUserData,omitempty"`
}

// CustomAttribute is a free-form name/value pair forwarded with an event.
type CustomAttribute struct {
	Name     string `json:"name"`
	DataType string `json:"dataType,omitempty"`
	Value    string `json:"value"`
}

// EventRecord is one conversion event as produced by the upstream mapping
// layer. Timestamp is ISO-8601; internal.FormatTimestamp renders it.
type EventRecord struct {
	Name                  string            `json:"name"`
	EventType             EventType         `json:"eventType"`
	EventActionSource     EventActionSource `json:"eventActionSource"`
	CountryCode           string            `json:"countryCode"`
	Timestamp             string            `json:"timestamp"`
	Value                 *float64          `json:"value,omitempty"`
	CurrencyCode          CurrencyCode      `json:"currencyCode,omitempty"`
	UnitsSold             *int              `json:"unitsSold,omitempty"`
	ClientDedupeID        string            `json:"clientDedupeId,omitempty"`
	MatchKeys             []MatchKey        `json:"matchKeys,omitempty"`
	DataProcessingOptions []string          `json:"dataProcessingOptions,omitempty"`
	Consent               *Consent          `json:"consent,omitempty"`
	CustomAttributes      []CustomAttribute `json:"customAttributes,omitempty"`
}
