package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyVendorMarkers    = "vendor_markers"
	KeyTaxRate          = "tax_rate"
	KeySurchargeToken   = "surcharge.token"
	KeySurchargeAmount  = "surcharge.amount"
	KeyRates            = "rates"
	KeyCategorySynonyms = "categories.synonyms"
	KeyLocationRules    = "locations.rules"
	KeyLocationFallback = "locations.fallback"
	KeyInvoiceAgency    = "invoice.agency"
	KeyInvoiceCustomer  = "invoice.customer"
	KeyInvoicePayment   = "invoice.payment"
)

// Config is the single policy structure shared by the normalizer, the rate
// engine, and the report writers. Defaults reproduce the agreed tariff for
// the current client relationship; overrides live in the YAML config file.
type Config struct {
	VendorMarkers []string                 `mapstructure:"vendor_markers" validate:"required,min=1"`
	TaxRate       float64                  `mapstructure:"tax_rate" validate:"gte=0,lt=1"`
	Surcharge     Surcharge                `mapstructure:"surcharge"`
	Rates         map[string]CategoryRates `mapstructure:"rates" validate:"required"`
	Categories    Categories               `mapstructure:"categories"`
	Locations     Locations                `mapstructure:"locations"`
	Invoice       Invoice                  `mapstructure:"invoice"`
}

// Surcharge is the flat per-hour addition triggered by a marker token in the
// raw work-location text.
type Surcharge struct {
	Token  string `mapstructure:"token" validate:"required"`
	Amount int    `mapstructure:"amount" validate:"gte=0"`
}

// RateSlots holds the day/night hourly rates for one pricing context.
// Day applies when the shift starts before 15:00, night from 15:00 on.
type RateSlots struct {
	Day   int `mapstructure:"day"`
	Night int `mapstructure:"night"`
}

type CategoryRates struct {
	Holiday RateSlots `mapstructure:"holiday"`
	Weekend RateSlots `mapstructure:"weekend"`
	Weekday RateSlots `mapstructure:"weekday"`
}

// Categories maps cleaned free-text staff-group labels onto the canonical
// category identifiers used as rate table keys.
type Categories struct {
	Synonyms map[string]string `mapstructure:"synonyms"`
}

// LocationRule buckets free-text job locations: the first rule whose match
// string is contained in the lower-cased location wins. Respellings are
// plain entries mapping onto the primary bucket.
type LocationRule struct {
	Match  string `mapstructure:"match"`
	Bucket string `mapstructure:"bucket"`
}

type Locations struct {
	Rules    []LocationRule `mapstructure:"rules"`
	Fallback string         `mapstructure:"fallback" validate:"required"`
}

// Invoice carries the fixed party and payment blocks printed on the PDF.
type Invoice struct {
	Agency   Agency   `mapstructure:"agency"`
	Customer Customer `mapstructure:"customer"`
	Payment  Payment  `mapstructure:"payment"`
}

type Agency struct {
	Name    string `mapstructure:"name" validate:"required"`
	Address string `mapstructure:"address"`
	CVR     string `mapstructure:"cvr"`
	Phone   string `mapstructure:"phone"`
	Web     string `mapstructure:"web"`
}

type Customer struct {
	Name    string `mapstructure:"name" validate:"required"`
	CVR     string `mapstructure:"cvr"`
	Contact string `mapstructure:"contact"`
	Email   string `mapstructure:"email"`
}

type Payment struct {
	Bank  string `mapstructure:"bank"`
	IBAN  string `mapstructure:"iban"`
	BIC   string `mapstructure:"bic"`
	Terms string `mapstructure:"terms"`
}

// CanonicalCategories are the rate table keys every config must price.
var CanonicalCategories = []string{"unskilled", "helper", "assistant"}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// Default returns the built-in policy without reading any config file.
func Default() (*Config, error) {
	local := viper.New()
	setDefaults(local)
	return loadAndValidateFromViper(local)
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateRates(cfg.Rates); err != nil {
		return nil, err
	}
	if err := validateLocations(cfg.Locations); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validateRates(rates map[string]CategoryRates) error {
	for _, category := range CanonicalCategories {
		row, ok := rates[category]
		if !ok {
			return fmt.Errorf("validation failed: rates.%s is required", category)
		}
		contexts := []struct {
			name  string
			slots RateSlots
		}{
			{"holiday", row.Holiday},
			{"weekend", row.Weekend},
			{"weekday", row.Weekday},
		}
		for _, context := range contexts {
			if context.slots.Day <= 0 || context.slots.Night <= 0 {
				return fmt.Errorf("validation failed: rates.%s.%s requires day/night > 0", category, context.name)
			}
		}
	}
	return nil
}

func validateLocations(locations Locations) error {
	for i, rule := range locations.Rules {
		if strings.TrimSpace(rule.Match) == "" {
			return fmt.Errorf("validation failed: locations.rules[%d].match is required", i)
		}
		if strings.TrimSpace(rule.Bucket) == "" {
			return fmt.Errorf("validation failed: locations.rules[%d].bucket is required", i)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyVendorMarkers, []string{"ditvikar", "dit vikarbureau"})
	v.SetDefault(KeyTaxRate, 0.25)
	v.SetDefault(KeySurchargeToken, "kirsten")
	v.SetDefault(KeySurchargeAmount, 10)
	v.SetDefault(KeyRates, defaultRates())
	v.SetDefault(KeyCategorySynonyms, defaultSynonyms())
	v.SetDefault(KeyLocationRules, defaultLocationRules())
	v.SetDefault(KeyLocationFallback, "andet")
	v.SetDefault(KeyInvoiceAgency, map[string]any{
		"name":    "MR Rekruttering",
		"address": "Valbygårdsvej 1, 4. th, 2500 Valby",
		"cvr":     "45090965",
		"phone":   "71747290",
		"web":     "www.akutvikar.com",
	})
	v.SetDefault(KeyInvoiceCustomer, map[string]any{
		"name":    "Ajour Care ApS",
		"cvr":     "34478953",
		"contact": "Charlotte Bigum Christensen",
		"email":   "cbc@ajourcare.dk",
	})
	v.SetDefault(KeyInvoicePayment, map[string]any{
		"bank":  "Finseta",
		"iban":  "GB79TCCL04140404627601",
		"bic":   "TCCLGB3LXXX",
		"terms": "Bankoverførsel. Fakturanr. bedes angivet ved betaling.",
	})
}

func defaultRates() map[string]any {
	return map[string]any{
		"unskilled": map[string]any{
			"holiday": map[string]any{"day": 215, "night": 220},
			"weekend": map[string]any{"day": 215, "night": 220},
			"weekday": map[string]any{"day": 175, "night": 210},
		},
		"helper": map[string]any{
			"holiday": map[string]any{"day": 215, "night": 220},
			"weekend": map[string]any{"day": 215, "night": 220},
			"weekday": map[string]any{"day": 200, "night": 210},
		},
		"assistant": map[string]any{
			"holiday": map[string]any{"day": 230, "night": 240},
			"weekend": map[string]any{"day": 230, "night": 240},
			"weekday": map[string]any{"day": 220, "night": 225},
		},
	}
}

func defaultSynonyms() map[string]string {
	return map[string]string{
		"ufaglært":    "unskilled",
		"unskilled":   "unskilled",
		"hjælper":     "helper",
		"helper":      "helper",
		"assistent":   "assistant",
		"assistant":   "assistant",
		"assistent 2": "assistant",
		"assistant 2": "assistant",
	}
}

func defaultLocationRules() []map[string]any {
	rules := [][2]string{
		{"frederikssund", "frederiksund"},
		{"allerød", "allerød"},
		{"egedal", "egedal"},
		{"frederiksund", "frederiksund"},
		{"solrød", "solrød"},
		{"herlev", "herlev"},
		{"ringsted", "ringsted"},
	}
	out := make([]map[string]any, 0, len(rules))
	for _, rule := range rules {
		out = append(out, map[string]any{"match": rule[0], "bucket": rule[1]})
	}
	return out
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# vikarfaktura configuration
vendor_markers:
  - "ditvikar"
  - "dit vikarbureau"

tax_rate: 0.25

surcharge:
  token: "kirsten"
  amount: 10

rates:
  unskilled:
    holiday: { day: 215, night: 220 }
    weekend: { day: 215, night: 220 }
    weekday: { day: 175, night: 210 }
  helper:
    holiday: { day: 215, night: 220 }
    weekend: { day: 215, night: 220 }
    weekday: { day: 200, night: 210 }
  assistant:
    holiday: { day: 230, night: 240 }
    weekend: { day: 230, night: 240 }
    weekday: { day: 220, night: 225 }

categories:
  synonyms:
    "ufaglært": "unskilled"
    "hjælper": "helper"
    "assistent": "assistant"
    "assistent 2": "assistant"
    "assistant 2": "assistant"

locations:
  fallback: "andet"
  rules:
    - { match: "frederikssund", bucket: "frederiksund" }
    - { match: "allerød", bucket: "allerød" }
    - { match: "egedal", bucket: "egedal" }
    - { match: "frederiksund", bucket: "frederiksund" }
    - { match: "solrød", bucket: "solrød" }
    - { match: "herlev", bucket: "herlev" }
    - { match: "ringsted", bucket: "ringsted" }

invoice:
  agency:
    name: "MR Rekruttering"
    address: "Valbygårdsvej 1, 4. th, 2500 Valby"
    cvr: "45090965"
    phone: "71747290"
    web: "www.akutvikar.com"
  customer:
    name: "Ajour Care ApS"
    cvr: "34478953"
    contact: "Charlotte Bigum Christensen"
    email: "cbc@ajourcare.dk"
  payment:
    bank: "Finseta"
    iban: "GB79TCCL04140404627601"
    bic: "TCCLGB3LXXX"
    terms: "Bankoverførsel. Fakturanr. bedes angivet ved betaling."
`
}
